package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/guest-services-api/internal/models"
)

type listerStub struct {
	items []models.Request
	err   error
}

func (l listerStub) List(ctx context.Context) ([]models.Request, error) {
	return l.items, l.err
}

func exportFixture() []models.Request {
	file := "1718000000000-stain.jpg"
	return []models.Request{
		{
			ID:          "6f1c9a52-3f4e-4b8e-9a8d-2a7c1d0e5b11",
			Floor:       "5",
			Room:        "12",
			Block:       "A",
			GuestName:   "Jane Doe",
			PhoneNumber: "555-0100",
			Service:     "Towels",
			Department:  "Housekeeping",
			Status:      models.RequestStatusPending,
			Priority:    models.RequestPriorityMedium,
			CreatedOn:   time.Date(2024, 6, 10, 8, 30, 0, 0, time.UTC),
			File:        &file,
		},
	}
}

func newExportServiceForTest(lister requestLister) *ExportService {
	svc := NewExportService(lister, nil, nil)
	svc.now = func() time.Time { return time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestExportServiceCSV(t *testing.T) {
	svc := newExportServiceForTest(listerStub{items: exportFixture()})

	file, err := svc.Export(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "requests-20240610-090000.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, exportHeaders, records[0])
	assert.Equal(t, "Jane Doe", records[1][5])
	assert.Equal(t, "MEDIUM", records[1][9])
	assert.Equal(t, "1718000000000-stain.jpg", records[1][11])
}

func TestExportServicePDF(t *testing.T) {
	svc := newExportServiceForTest(listerStub{items: exportFixture()})

	file, err := svc.Export(context.Background(), "PDF")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := newExportServiceForTest(listerStub{})

	_, err := svc.Export(context.Background(), "xlsx")
	requireStatus(t, err, http.StatusBadRequest)
}

func TestExportServicePropagatesListError(t *testing.T) {
	listErr := errors.New("boom")
	svc := newExportServiceForTest(listerStub{err: listErr})

	_, err := svc.Export(context.Background(), "csv")
	assert.ErrorIs(t, err, listErr)
}

func TestBuildRequestDatasetEmpty(t *testing.T) {
	dataset := buildRequestDataset(nil)
	assert.Equal(t, exportHeaders, dataset.Headers)
	assert.Empty(t, dataset.Rows)
}
