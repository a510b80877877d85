package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/guest-services-api/internal/dto"
	"github.com/noah-isme/guest-services-api/internal/models"
	appErrors "github.com/noah-isme/guest-services-api/pkg/errors"
	"github.com/noah-isme/guest-services-api/pkg/export"
)

// Export formats supported by the request report.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var exportHeaders = []string{"ID", "Created On", "Floor", "Room", "Block", "Guest", "Phone", "Service", "Department", "Priority", "Status", "File"}

type requestLister interface {
	List(ctx context.Context) ([]models.Request, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders the full request list as a downloadable report.
type ExportService struct {
	requests requestLister
	csv      csvRenderer
	pdf      pdfRenderer
	now      func() time.Time
}

// NewExportService constructs the service, defaulting the renderers.
func NewExportService(requests requestLister, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{requests: requests, csv: csv, pdf: pdf, now: time.Now}
}

// Export renders every request in the requested format.
func (s *ExportService) Export(ctx context.Context, format string) (*dto.ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	items, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	dataset := buildRequestDataset(items)
	stamp := s.now().UTC().Format("20060102-150405")

	switch format {
	case ExportFormatPDF:
		data, err := s.pdf.Render(dataset, "Guest service requests")
		if err != nil {
			return nil, appErrors.Internal(err, "Failed to export requests")
		}
		return &dto.ExportFile{Filename: fmt.Sprintf("requests-%s.pdf", stamp), ContentType: "application/pdf", Data: data}, nil
	default:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Internal(err, "Failed to export requests")
		}
		return &dto.ExportFile{Filename: fmt.Sprintf("requests-%s.csv", stamp), ContentType: "text/csv", Data: data}, nil
	}
}

func buildRequestDataset(items []models.Request) export.Dataset {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		file := ""
		if item.File != nil {
			file = *item.File
		}
		rows = append(rows, []string{
			item.ID,
			item.CreatedOn.UTC().Format(time.RFC3339),
			item.Floor,
			item.Room,
			item.Block,
			item.GuestName,
			item.PhoneNumber,
			item.Service,
			item.Department,
			string(item.Priority),
			string(item.Status),
			file,
		})
	}
	return export.Dataset{Headers: exportHeaders, Rows: rows}
}
