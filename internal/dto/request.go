package dto

import (
	"encoding/json"
	"io"

	"github.com/noah-isme/guest-services-api/internal/models"
)

// CreateRequestForm carries the multipart fields of a new guest request.
type CreateRequestForm struct {
	Floor       string `form:"floor"`
	Room        string `form:"room"`
	Block       string `form:"block"`
	GuestName   string `form:"guestName"`
	PhoneNumber string `form:"phoneNumber"`
	Service     string `form:"service"`
	Department  string `form:"department"`
	Priority    string `form:"priority"`
}

// RequestUpload is an attachment streamed from the create form.
type RequestUpload struct {
	Filename string
	Content  io.Reader
}

// UpdateRequestBody keeps raw values so unknown keys and non-string values can be rejected.
type UpdateRequestBody map[string]json.RawMessage

// CreateRequestResponse is returned by the create endpoint.
type CreateRequestResponse struct {
	Message string          `json:"message"`
	Request *models.Request `json:"request"`
}

// UpdateRequestResponse is returned by the update endpoint.
type UpdateRequestResponse struct {
	Message        string          `json:"message"`
	UpdatedRequest *models.Request `json:"updatedRequest"`
}

// ExportFile is a rendered request report.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
