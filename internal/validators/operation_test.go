package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staffly/offline-sync/models"
)

func TestValidateOperation(t *testing.T) {
	tests := []struct {
		name    string
		op      models.PendingOperation
		wantErr error
	}{
		{
			name: "valid time punch",
			op:   models.PendingOperation{Type: models.OperationTimePunch, Data: []byte(`{"latitude":40.7}`)},
		},
		{
			name: "valid correction",
			op:   models.PendingOperation{Type: models.OperationCorrectionRequest, Data: []byte(`{"entry_id":5}`)},
		},
		{
			name: "valid generic api",
			op:   models.PendingOperation{Type: models.OperationGenericAPI, Method: "post", Endpoint: "/api/custom"},
		},
		{
			name:    "unknown type",
			op:      models.PendingOperation{Type: "DELETE_EVERYTHING", Data: []byte(`{}`)},
			wantErr: ErrUnknownOperationType,
		},
		{
			name:    "punch without payload",
			op:      models.PendingOperation{Type: models.OperationTimePunch},
			wantErr: ErrEmptyPayload,
		},
		{
			name:    "generic without endpoint",
			op:      models.PendingOperation{Type: models.OperationGenericAPI, Method: "POST"},
			wantErr: ErrMissingEndpoint,
		},
		{
			name:    "generic with bad method",
			op:      models.PendingOperation{Type: models.OperationGenericAPI, Method: "TRACE", Endpoint: "/x"},
			wantErr: ErrInvalidMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOperation(tt.op)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
