package models

import "time"

// RequestStatus tracks a service request through its lifecycle.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "PENDING"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusCompleted  RequestStatus = "COMPLETED"
)

// RequestStatuses lists every accepted status in lifecycle order.
var RequestStatuses = []RequestStatus{RequestStatusPending, RequestStatusInProgress, RequestStatusCompleted}

// Valid reports whether s is a known status.
func (s RequestStatus) Valid() bool {
	for _, known := range RequestStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// RequestPriority ranks how urgently staff should act.
type RequestPriority string

const (
	RequestPriorityHigh   RequestPriority = "HIGH"
	RequestPriorityMedium RequestPriority = "MEDIUM"
	RequestPriorityLow    RequestPriority = "LOW"
)

// RequestPriorities lists every accepted priority, most urgent first.
var RequestPriorities = []RequestPriority{RequestPriorityHigh, RequestPriorityMedium, RequestPriorityLow}

// Valid reports whether p is a known priority.
func (p RequestPriority) Valid() bool {
	for _, known := range RequestPriorities {
		if p == known {
			return true
		}
	}
	return false
}

// Request is a guest-services request tied to a room.
type Request struct {
	ID          string          `db:"id" json:"id"`
	Floor       string          `db:"floor" json:"floor" validate:"required,notblank"`
	Room        string          `db:"room" json:"room" validate:"required,notblank"`
	Block       string          `db:"block" json:"block" validate:"required,notblank"`
	GuestName   string          `db:"guest_name" json:"guestName" validate:"required,notblank"`
	PhoneNumber string          `db:"phone_number" json:"phoneNumber" validate:"required,notblank"`
	Service     string          `db:"service" json:"service" validate:"required,notblank"`
	Department  string          `db:"department" json:"department" validate:"required,notblank"`
	Status      RequestStatus   `db:"status" json:"status" validate:"request_status"`
	Priority    RequestPriority `db:"priority" json:"priority" validate:"request_priority"`
	CreatedOn   time.Time       `db:"created_on" json:"createdOn"`
	File        *string         `db:"file" json:"file,omitempty"`
}

// RequestField names a patchable attribute using its JSON key.
type RequestField string

const (
	RequestFieldFloor       RequestField = "floor"
	RequestFieldRoom        RequestField = "room"
	RequestFieldBlock       RequestField = "block"
	RequestFieldGuestName   RequestField = "guestName"
	RequestFieldPhoneNumber RequestField = "phoneNumber"
	RequestFieldService     RequestField = "service"
	RequestFieldDepartment  RequestField = "department"
	RequestFieldPriority    RequestField = "priority"
	RequestFieldStatus      RequestField = "status"
	RequestFieldFile        RequestField = "file"
)

// requestFieldColumns is the update allow-list; id and createdOn are absent on purpose.
var requestFieldColumns = map[RequestField]string{
	RequestFieldFloor:       "floor",
	RequestFieldRoom:        "room",
	RequestFieldBlock:       "block",
	RequestFieldGuestName:   "guest_name",
	RequestFieldPhoneNumber: "phone_number",
	RequestFieldService:     "service",
	RequestFieldDepartment:  "department",
	RequestFieldPriority:    "priority",
	RequestFieldStatus:      "status",
	RequestFieldFile:        "file",
}

// Column returns the storage column for an updatable field.
func (f RequestField) Column() (string, bool) {
	col, ok := requestFieldColumns[f]
	return col, ok
}

// Updatable reports whether the field is on the update allow-list.
func (f RequestField) Updatable() bool {
	_, ok := requestFieldColumns[f]
	return ok
}

// Required reports whether the field must stay non-empty.
func (f RequestField) Required() bool {
	switch f {
	case RequestFieldFloor, RequestFieldRoom, RequestFieldBlock, RequestFieldGuestName,
		RequestFieldPhoneNumber, RequestFieldService, RequestFieldDepartment:
		return true
	default:
		return false
	}
}

// RequestPatch maps fields to their new values. A nil value clears an optional field.
type RequestPatch map[RequestField]*string
