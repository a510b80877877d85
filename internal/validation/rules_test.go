package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/guest-services-api/internal/models"
)

func strPtr(v string) *string { return &v }

func validRequest() *models.Request {
	return &models.Request{
		Floor:       "5",
		Room:        "12",
		Block:       "A",
		GuestName:   "Jane Doe",
		PhoneNumber: "555-0100",
		Service:     "Towels",
		Department:  "Housekeeping",
		Status:      models.RequestStatusPending,
		Priority:    models.RequestPriorityMedium,
		CreatedOn:   time.Now(),
	}
}

func TestRequestAcceptsValidDocument(t *testing.T) {
	require.NoError(t, New().Request(validRequest()))
}

func TestRequestRejectsBlankRequiredField(t *testing.T) {
	req := validRequest()
	req.GuestName = "   "

	err := New().Request(req)
	require.Error(t, err)
	assert.True(t, IsError(err))
	assert.Equal(t, "guestName: is required", err.Error())
}

func TestRequestRejectsUnknownEnums(t *testing.T) {
	v := New()

	req := validRequest()
	req.Status = "DONE"
	err := v.Request(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")

	req = validRequest()
	req.Priority = "URGENT"
	err = v.Request(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority")

	require.Error(t, v.Request(nil))
}

func TestPatchRules(t *testing.T) {
	v := New()

	cases := []struct {
		name    string
		patch   models.RequestPatch
		wantErr string
	}{
		{name: "status ok", patch: models.RequestPatch{models.RequestFieldStatus: strPtr("IN_PROGRESS")}},
		{name: "clear file", patch: models.RequestPatch{models.RequestFieldFile: nil}},
		{name: "unknown field", patch: models.RequestPatch{"createdOn": strPtr("x"), models.RequestFieldStatus: strPtr("DONE")}, wantErr: "createdOn: field cannot be updated"},
		{name: "bad status", patch: models.RequestPatch{models.RequestFieldStatus: strPtr("DONE")}, wantErr: "status: must be one of PENDING, IN_PROGRESS, COMPLETED"},
		{name: "priority before status", patch: models.RequestPatch{models.RequestFieldStatus: strPtr("DONE"), models.RequestFieldPriority: strPtr("URGENT")}, wantErr: "priority: must be one of HIGH, MEDIUM, LOW"},
		{name: "blank required", patch: models.RequestPatch{models.RequestFieldRoom: strPtr("")}, wantErr: "room: is required"},
		{name: "null required", patch: models.RequestPatch{models.RequestFieldRoom: nil}, wantErr: "room: cannot be null"},
		{name: "null status", patch: models.RequestPatch{models.RequestFieldStatus: nil}, wantErr: "status: cannot be null"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Patch(tc.patch)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}
}
