package stores

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"device-telemetry/internal/models"
	"device-telemetry/internal/shared/filestorages"
	"device-telemetry/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSnapshot(sessionID string) *models.SessionSnapshot {
	ts := time.Date(2024, 11, 26, 0, 0, 0, 0, time.UTC)
	return &models.SessionSnapshot{
		SessionID:   sessionID,
		CreatedAt:   ts.Add(22 * time.Hour),
		Seed:        42,
		StepMinutes: 15,
		GridStart:   ts,
		GridEnd:     ts,
		SampleCount: 1,
		Series: []*models.DeviceTelemetrySeries{
			{
				Profile: models.NewDeviceProfile("Amazon Echo", 20000, 15000),
				Samples: []models.TelemetrySample{
					{Timestamp: ts, PacketsSent: 181, PacketsReceived: 179, RequestsSent: 97, RequestsReceived: 96, Failures: 1},
				},
			},
		},
	}
}

func TestSessionSnapshotStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionSnapshotStore(mockFileStorage)

	ctx := context.Background()
	snapshot := newTestSnapshot("01JDQ7ZP8W6X3Y0T4M2N5K9ABC")
	expectedJSON, _ := json.Marshal(snapshot)

	mockFileStorage.EXPECT().
		Put(ctx, "session-snapshots/01JDQ7ZP8W6X3Y0T4M2N5K9ABC.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	assert.NoError(t, store.Put(ctx, snapshot))
}

func TestSessionSnapshotStore_Put_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		storageErr    error
		expectedIs    error
		expectedInMsg string
	}{
		{
			name:       "already exists",
			storageErr: filestorages.ErrFileAlreadyExists,
			expectedIs: ErrSessionSnapshotAlreadyExist,
		},
		{
			name:          "storage failure",
			storageErr:    errors.New("disk full"),
			expectedInMsg: "failed to put session snapshot: disk full",
		},
		{
			name:          "invalid key",
			storageErr:    filestorages.ErrInvalidKey,
			expectedIs:    filestorages.ErrInvalidKey,
			expectedInMsg: "failed to put session snapshot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFileStorage := mocks.NewMockFileStorage(ctrl)
			store := NewSessionSnapshotStore(mockFileStorage)

			mockFileStorage.EXPECT().
				Put(gomock.Any(), "session-snapshots/ses-1.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
				Return(nil, tt.storageErr)

			err := store.Put(context.Background(), newTestSnapshot("ses-1"))
			require.Error(t, err)
			if tt.expectedIs != nil {
				assert.ErrorIs(t, err, tt.expectedIs)
			}
			if tt.expectedInMsg != "" {
				assert.Contains(t, err.Error(), tt.expectedInMsg)
				assert.NotErrorIs(t, err, ErrSessionSnapshotAlreadyExist)
			}
		})
	}
}

func TestSessionSnapshotStore_Open(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionSnapshotStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), "session-snapshots/ses-1.json").
		Return(io.NopCloser(strings.NewReader(`{"sessionId":"ses-1"}`)), nil)

	readCloser, err := store.Open(context.Background(), "ses-1")
	require.NoError(t, err)
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"sessionId":"ses-1"}`, string(data))
}

func TestSessionSnapshotStore_Open_Errors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSessionSnapshotStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), "session-snapshots/missing.json").
		Return(nil, filestorages.ErrFileNotFound)
	mockFileStorage.EXPECT().
		Get(gomock.Any(), "session-snapshots/broken.json").
		Return(nil, errors.New("permission denied"))

	_, err := store.Open(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionSnapshotNotFound)

	_, err = store.Open(context.Background(), "broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open session snapshot: permission denied")
}

func TestSessionSnapshotStore_RoundTripOnDisk(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := NewSessionSnapshotStore(fileStorage)
	ctx := context.Background()

	snapshot := newTestSnapshot("ses-disk")
	require.NoError(t, store.Put(ctx, snapshot))
	assert.ErrorIs(t, store.Put(ctx, snapshot), ErrSessionSnapshotAlreadyExist)

	readCloser, err := store.Open(ctx, "ses-disk")
	require.NoError(t, err)
	defer readCloser.Close()

	var decoded models.SessionSnapshot
	require.NoError(t, json.NewDecoder(readCloser).Decode(&decoded))
	assert.Equal(t, snapshot.SessionID, decoded.SessionID)
	assert.Equal(t, snapshot.SampleCount, decoded.SampleCount)
	require.Len(t, decoded.Series, 1)
	assert.Equal(t, snapshot.Series[0].Samples, decoded.Series[0].Samples)
}
