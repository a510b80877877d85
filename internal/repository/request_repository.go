package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/guest-services-api/internal/models"
	"github.com/noah-isme/guest-services-api/internal/validation"
)

const requestColumns = `id, floor, room, block, guest_name, phone_number, service, department, status, priority, created_on, file`

// RequestRepository persists guest-service requests.
type RequestRepository struct {
	db       *sqlx.DB
	validate *validation.Validator
}

// NewRequestRepository constructs the repository. Every write is checked
// against the shared request rules before it reaches SQL.
func NewRequestRepository(db *sqlx.DB, validate *validation.Validator) *RequestRepository {
	if validate == nil {
		validate = validation.New()
	}
	return &RequestRepository{db: db, validate: validate}
}

// Create inserts a new request, assigning its id and creation time.
func (r *RequestRepository) Create(ctx context.Context, req *models.Request) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.CreatedOn.IsZero() {
		req.CreatedOn = time.Now().UTC()
	}
	if req.Status == "" {
		req.Status = models.RequestStatusPending
	}
	if req.Priority == "" {
		req.Priority = models.RequestPriorityMedium
	}
	if err := r.validate.Request(req); err != nil {
		return err
	}
	const query = `INSERT INTO requests
	(id, floor, room, block, guest_name, phone_number, service, department, status, priority, created_on, file)
	VALUES (:id, :floor, :room, :block, :guest_name, :phone_number, :service, :department, :status, :priority, :created_on, :file)`
	if _, err := r.db.NamedExecContext(ctx, query, req); err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return nil
}

// List returns every stored request, oldest first.
func (r *RequestRepository) List(ctx context.Context) ([]models.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests ORDER BY created_on ASC`
	records := make([]models.Request, 0)
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return records, nil
}

// GetByID loads one request.
func (r *RequestRepository) GetByID(ctx context.Context, id string) (*models.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	var req models.Request
	if err := r.db.GetContext(ctx, &req, query, id); err != nil {
		return nil, err
	}
	return &req, nil
}

// Update applies the patch in a single statement and returns the stored document.
// sql.ErrNoRows signals an unknown id. An empty patch returns the current document.
func (r *RequestRepository) Update(ctx context.Context, id string, patch models.RequestPatch) (*models.Request, error) {
	if err := r.validate.Patch(patch); err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return r.GetByID(ctx, id)
	}

	type assignment struct {
		column string
		value  interface{}
	}
	assignments := make([]assignment, 0, len(patch))
	for field, value := range patch {
		column, _ := field.Column()
		var arg interface{}
		if value != nil {
			arg = *value
		}
		assignments = append(assignments, assignment{column: column, value: arg})
	}
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].column < assignments[j].column })

	sets := make([]string, 0, len(assignments))
	args := make([]interface{}, 0, len(assignments)+1)
	args = append(args, id)
	for _, a := range assignments {
		args = append(args, a.value)
		sets = append(sets, fmt.Sprintf("%s = $%d", a.column, len(args)))
	}

	query := `UPDATE requests SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING ` + requestColumns
	var updated models.Request
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("update request: %w", err)
	}
	return &updated, nil
}

// Delete removes a request permanently.
func (r *RequestRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM requests WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check request delete rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Ping checks the store connection for readiness probes.
func (r *RequestRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
