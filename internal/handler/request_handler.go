package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/noah-isme/guest-services-api/internal/dto"
	"github.com/noah-isme/guest-services-api/internal/models"
	appErrors "github.com/noah-isme/guest-services-api/pkg/errors"
	"github.com/noah-isme/guest-services-api/pkg/response"
)

type requestService interface {
	Create(ctx context.Context, form dto.CreateRequestForm, upload *dto.RequestUpload) (*models.Request, error)
	List(ctx context.Context) ([]models.Request, error)
	Update(ctx context.Context, id string, body dto.UpdateRequestBody) (*models.Request, error)
	Delete(ctx context.Context, id string) error
}

type requestExporter interface {
	Export(ctx context.Context, format string) (*dto.ExportFile, error)
}

// RequestHandler exposes guest service request endpoints.
type RequestHandler struct {
	service  requestService
	exporter requestExporter
}

// NewRequestHandler constructs the handler. exporter may be nil to disable the report route.
func NewRequestHandler(service requestService, exporter requestExporter) *RequestHandler {
	return &RequestHandler{service: service, exporter: exporter}
}

// RegisterRoutes mounts the request endpoints under the given group.
func (h *RequestHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/requests", h.Create)
	api.GET("/capture", h.List)
	if h.exporter != nil {
		api.GET("/requests/export", h.Export)
	}
	api.PATCH("/requests/:id", h.Update)
	api.DELETE("/requests/:id", h.Delete)
}

// Create godoc
// @Summary Create guest service request
// @Tags Requests
// @Accept multipart/form-data
// @Produce json
// @Param floor formData string true "Floor"
// @Param room formData string true "Room"
// @Param block formData string true "Block"
// @Param guestName formData string true "Guest name"
// @Param phoneNumber formData string true "Phone number"
// @Param service formData string true "Requested service"
// @Param department formData string true "Handling department"
// @Param priority formData string false "HIGH, MEDIUM or LOW"
// @Param file formData file false "Attachment"
// @Success 201 {object} dto.CreateRequestResponse
// @Failure 400 {object} response.MessageBody
// @Failure 500 {object} response.MessageBody
// @Router /api/requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	var form dto.CreateRequestForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid form data"))
		return
	}

	var upload *dto.RequestUpload
	fileHeader, err := c.FormFile("file")
	switch {
	case err == nil:
		src, openErr := fileHeader.Open()
		if openErr != nil {
			response.Error(c, appErrors.Internal(openErr, "Failed to read uploaded file"))
			return
		}
		defer src.Close()
		upload = &dto.RequestUpload{Filename: fileHeader.Filename, Content: src}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid file upload"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), form, upload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, dto.CreateRequestResponse{Message: "Request created successfully", Request: created})
}

// List godoc
// @Summary List guest service requests
// @Tags Requests
// @Produce json
// @Success 200 {array} models.Request
// @Failure 500 {object} response.MessageBody
// @Router /api/capture [get]
func (h *RequestHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Update godoc
// @Summary Update guest service request
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param payload body object true "Fields to change"
// @Success 200 {object} dto.UpdateRequestResponse
// @Failure 400 {object} response.MessageBody
// @Failure 404 {object} response.MessageBody
// @Failure 500 {object} response.MessageBody
// @Router /api/requests/{id} [patch]
func (h *RequestHandler) Update(c *gin.Context) {
	var body dto.UpdateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Request body must be a JSON object"))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.UpdateRequestResponse{Message: "Request updated successfully", UpdatedRequest: updated})
}

// Delete godoc
// @Summary Delete guest service request
// @Tags Requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.MessageBody
// @Failure 400 {object} response.MessageBody
// @Failure 404 {object} response.MessageBody
// @Failure 500 {object} response.MessageBody
// @Router /api/requests/{id} [delete]
func (h *RequestHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Request deleted successfully")
}

// Export godoc
// @Summary Download request report
// @Tags Requests
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.MessageBody
// @Failure 500 {object} response.MessageBody
// @Router /api/requests/export [get]
func (h *RequestHandler) Export(c *gin.Context) {
	file, err := h.exporter.Export(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
