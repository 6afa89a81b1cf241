package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/talkifydocs/ingest-backend/pkg/mock"
	"github.com/talkifydocs/ingest-backend/pkg/types"

	errorsx "github.com/instill-ai/x/errors"
	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

func TestUpdateFileStatusActivity(t *testing.T) {
	ctx := context.Background()
	fileUID := uuid.Must(uuid.NewV4())

	tests := []struct {
		name      string
		param     *UpdateFileStatusActivityParam
		finishErr error

		wantPageCount int
		wantRunErrMsg string
		wantErr       bool
		wantRetryable bool
		wantMessage   string
	}{
		{
			name:          "success",
			param:         &UpdateFileStatusActivityParam{FileUID: fileUID, PageCount: 4},
			wantPageCount: 4,
		},
		{
			name:          "failure carries its message",
			param:         &UpdateFileStatusActivityParam{FileUID: fileUID, Failed: true, Message: "The file is not a readable PDF."},
			wantRunErrMsg: "The file is not a readable PDF.",
		},
		{
			name:          "terminal record",
			param:         &UpdateFileStatusActivityParam{FileUID: fileUID, PageCount: 1},
			finishErr:     fmt.Errorf("%w: file is FAILED", errdomain.ErrStatusConflict),
			wantPageCount: 1,
			wantErr:       true,
			wantMessage:   "File status can't be updated.",
		},
		{
			name:          "missing record",
			param:         &UpdateFileStatusActivityParam{FileUID: fileUID, PageCount: 1},
			finishErr:     errdomain.ErrNotFound,
			wantPageCount: 1,
			wantErr:       true,
			wantMessage:   "File status can't be updated.",
		},
		{
			name:          "transient write failure",
			param:         &UpdateFileStatusActivityParam{FileUID: fileUID, PageCount: 1},
			finishErr:     errors.New("connection reset"),
			wantPageCount: 1,
			wantErr:       true,
			wantRetryable: true,
			wantMessage:   "Unable to update file status. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc := minimock.NewController(t)
			svc := mock.NewServiceMock(mc).
				FinishMock.Set(func(_ context.Context, gotUID types.FileUIDType, pageCount int, runErr error) error {
					assert.Equal(t, fileUID, gotUID)
					assert.Equal(t, tt.wantPageCount, pageCount)
					if tt.wantRunErrMsg == "" {
						assert.NoError(t, runErr)
					} else {
						require.Error(t, runErr)
						assert.Equal(t, tt.wantRunErrMsg, errorsx.Message(runErr))
					}
					return tt.finishErr
				})

			w, err := New(Config{Service: svc}, zap.NewNop())
			require.NoError(t, err)

			err = w.UpdateFileStatusActivity(ctx, tt.param)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var appErr *temporal.ApplicationError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, updateFileStatusActivityError, appErr.Type())
			assert.Equal(t, tt.wantMessage, appErr.Message())
			assert.Equal(t, !tt.wantRetryable, appErr.NonRetryable())
		})
	}
}
