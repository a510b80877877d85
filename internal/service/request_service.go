package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/guest-services-api/internal/dto"
	"github.com/noah-isme/guest-services-api/internal/models"
	"github.com/noah-isme/guest-services-api/internal/validation"
	appErrors "github.com/noah-isme/guest-services-api/pkg/errors"
	"github.com/noah-isme/guest-services-api/pkg/storage"
)

const requestListCacheKey = "guest-requests:list"

type requestStore interface {
	Create(ctx context.Context, req *models.Request) error
	List(ctx context.Context) ([]models.Request, error)
	Update(ctx context.Context, id string, patch models.RequestPatch) (*models.Request, error)
	Delete(ctx context.Context, id string) error
}

type uploadStorage interface {
	SaveStream(filename string, r io.Reader) (string, error)
	Delete(filename string) error
}

type requestCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// RequestService implements the guest request lifecycle.
type RequestService struct {
	repo     requestStore
	uploads  uploadStorage
	cache    requestCache
	metrics  *MetricsService
	validate *validation.Validator
	logger   *zap.Logger
	cacheTTL time.Duration
	now      func() time.Time

	// listGen changes on every write so a list read that raced a write is not cached.
	listGen atomic.Uint64
}

// RequestServiceConfig tunes optional collaborators.
type RequestServiceConfig struct {
	CacheTTL time.Duration
}

// NewRequestService constructs the service. cache and metrics may be nil.
func NewRequestService(repo requestStore, uploads uploadStorage, cache requestCache, metrics *MetricsService, validate *validation.Validator, logger *zap.Logger, cfg RequestServiceConfig) *RequestService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestService{
		repo:     repo,
		uploads:  uploads,
		cache:    cache,
		metrics:  metrics,
		validate: validate,
		logger:   logger,
		cacheTTL: cfg.CacheTTL,
		now:      time.Now,
	}
}

// Create validates the form, stores the optional attachment and persists a new request.
// Nothing is written when validation fails.
func (s *RequestService) Create(ctx context.Context, form dto.CreateRequestForm, upload *dto.RequestUpload) (*models.Request, error) {
	req := &models.Request{
		Floor:       strings.TrimSpace(form.Floor),
		Room:        strings.TrimSpace(form.Room),
		Block:       strings.TrimSpace(form.Block),
		GuestName:   strings.TrimSpace(form.GuestName),
		PhoneNumber: strings.TrimSpace(form.PhoneNumber),
		Service:     strings.TrimSpace(form.Service),
		Department:  strings.TrimSpace(form.Department),
		Status:      models.RequestStatusPending,
		Priority:    models.RequestPriorityMedium,
	}
	if missing := missingFields(req); len(missing) > 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Missing required fields: "+strings.Join(missing, ", "))
	}
	if priority := strings.TrimSpace(form.Priority); priority != "" {
		if err := s.validate.Priority(priority); err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
		req.Priority = models.RequestPriority(priority)
	}

	now := s.now().UTC()
	req.CreatedOn = now

	var stored string
	if upload != nil && upload.Content != nil {
		name, err := s.uploads.SaveStream(storage.UploadName(upload.Filename, now), upload.Content)
		if err != nil {
			s.logger.Error("failed to store request attachment", zap.String("filename", upload.Filename), zap.Error(err))
			return nil, appErrors.Internal(err, "Failed to save uploaded file")
		}
		stored = name
		req.File = &stored
	}

	start := time.Now()
	err := s.repo.Create(ctx, req)
	s.metrics.ObserveDBQuery("requests.create", time.Since(start))
	if err != nil {
		if stored != "" {
			if delErr := s.uploads.Delete(stored); delErr != nil {
				s.logger.Warn("failed to remove orphaned attachment", zap.String("file", stored), zap.Error(delErr))
			}
		}
		s.metrics.RecordRequestOperation("create", "error")
		if validation.IsError(err) {
			return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
		s.logger.Error("failed to create request", zap.Error(err))
		return nil, appErrors.Internal(err, "Failed to create request")
	}

	s.metrics.RecordRequestOperation("create", "ok")
	s.invalidateList(ctx)
	return req, nil
}

// List returns every stored request.
func (s *RequestService) List(ctx context.Context) ([]models.Request, error) {
	if s.cache != nil {
		var cached []models.Request
		if hit, _ := s.cache.Get(ctx, requestListCacheKey, &cached); hit {
			if cached == nil {
				cached = []models.Request{}
			}
			return cached, nil
		}
	}

	gen := s.listGen.Load()
	start := time.Now()
	items, err := s.repo.List(ctx)
	s.metrics.ObserveDBQuery("requests.list", time.Since(start))
	if err != nil {
		s.logger.Error("failed to list requests", zap.Error(err))
		return nil, appErrors.Internal(err, "Failed to fetch requests")
	}
	if items == nil {
		items = []models.Request{}
	}

	if s.cache != nil && s.listGen.Load() == gen {
		_ = s.cache.Set(ctx, requestListCacheKey, items, s.cacheTTL)
		// A write that invalidated between the check and the Set must not leave the snapshot behind.
		if s.listGen.Load() != gen {
			_ = s.cache.Invalidate(ctx, requestListCacheKey)
		}
	}
	return items, nil
}

// Update applies an allow-listed partial update. Checks run in order: id format,
// unknown fields, priority, status, value types and required values.
func (s *RequestService) Update(ctx context.Context, id string, body dto.UpdateRequestBody) (*models.Request, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if unknown := unknownFields(body); len(unknown) > 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid field(s) in update: "+strings.Join(unknown, ", "))
	}
	if err := s.checkEnums(body); err != nil {
		return nil, err
	}
	patch, err := decodePatch(body)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Patch(patch); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	start := time.Now()
	updated, err := s.repo.Update(ctx, id, patch)
	s.metrics.ObserveDBQuery("requests.update", time.Since(start))
	if err != nil {
		s.metrics.RecordRequestOperation("update", "error")
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Request not found")
		case validation.IsError(err):
			return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
		default:
			s.logger.Error("failed to update request", zap.String("id", id), zap.Error(err))
			return nil, appErrors.Internal(err, "Failed to update request")
		}
	}

	s.metrics.RecordRequestOperation("update", "ok")
	s.invalidateList(ctx)
	return updated, nil
}

// Delete removes a request by id.
func (s *RequestService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	start := time.Now()
	err := s.repo.Delete(ctx, id)
	s.metrics.ObserveDBQuery("requests.delete", time.Since(start))
	if err != nil {
		s.metrics.RecordRequestOperation("delete", "error")
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "Request not found")
		}
		s.logger.Error("failed to delete request", zap.String("id", id), zap.Error(err))
		return appErrors.Internal(err, "Failed to delete request")
	}

	s.metrics.RecordRequestOperation("delete", "ok")
	s.invalidateList(ctx)
	return nil
}

func (s *RequestService) invalidateList(ctx context.Context) {
	s.listGen.Add(1)
	if s.cache == nil {
		return
	}
	_ = s.cache.Invalidate(ctx, requestListCacheKey)
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Invalid request ID")
	}
	return nil
}

func missingFields(req *models.Request) []string {
	required := []struct {
		field models.RequestField
		value string
	}{
		{models.RequestFieldFloor, req.Floor},
		{models.RequestFieldRoom, req.Room},
		{models.RequestFieldBlock, req.Block},
		{models.RequestFieldGuestName, req.GuestName},
		{models.RequestFieldPhoneNumber, req.PhoneNumber},
		{models.RequestFieldService, req.Service},
		{models.RequestFieldDepartment, req.Department},
	}
	missing := make([]string, 0)
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, string(r.field))
		}
	}
	return missing
}

func unknownFields(body dto.UpdateRequestBody) []string {
	unknown := make([]string, 0)
	for key := range body {
		if !models.RequestField(key).Updatable() {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// checkEnums validates priority then status before any other value is decoded.
// A value that is not a string can never be an enum member.
func (s *RequestService) checkEnums(body dto.UpdateRequestBody) error {
	for _, field := range []models.RequestField{models.RequestFieldPriority, models.RequestFieldStatus} {
		raw, ok := body[string(field)]
		if !ok {
			continue
		}
		value, err := decodeValue(raw)
		if err != nil {
			text := string(raw)
			value = &text
		}
		if err := s.validate.Patch(models.RequestPatch{field: value}); err != nil {
			return appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
	}
	return nil
}

var jsonNull = []byte("null")

func decodePatch(body dto.UpdateRequestBody) (models.RequestPatch, error) {
	keys := make([]string, 0, len(body))
	for key := range body {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	patch := make(models.RequestPatch, len(body))
	for _, key := range keys {
		field := models.RequestField(key)
		value, err := decodeValue(body[key])
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s: must be a string", key))
		}
		// A blank attachment reference means no attachment.
		if field == models.RequestFieldFile && value != nil && strings.TrimSpace(*value) == "" {
			value = nil
		}
		patch[field] = value
	}
	return patch, nil
}

func decodeValue(raw json.RawMessage) (*string, error) {
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, nil
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return &value, nil
}
