package report_test

import (
	"context"
	"errors"
	"testing"

	"hr-sync/core/storage/mocks"
	"hr-sync/feature/integration/models"
	"hr-sync/feature/report"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubSink counts deliveries and optionally fails.
type stubSink struct {
	calls int
	err   error
}

func (s *stubSink) Write(ctx context.Context, r *models.RunReport) error {
	s.calls++
	return s.err
}

func TestS3Sink_Write(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "hr-sync-reports").Return(true, nil)
	client.On("PutObject", mock.Anything, "hr-sync-reports",
		mock.MatchedBy(func(name string) bool {
			return len(name) > len("reports/integration-")
		}),
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	sink := report.NewS3Sink(client, "hr-sync-reports", zap.NewNop())
	require.NoError(t, sink.Write(context.Background(), finishedReport()))

	client.AssertExpectations(t)
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestS3Sink_CreatesMissingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "hr-sync-reports").Return(false, nil)
	client.On("MakeBucket", mock.Anything, "hr-sync-reports", mock.Anything).Return(nil)
	client.On("PutObject", mock.Anything, "hr-sync-reports", mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	sink := report.NewS3Sink(client, "hr-sync-reports", zap.NewNop())
	require.NoError(t, sink.Write(context.Background(), finishedReport()))

	client.AssertExpectations(t)
}

func TestS3Sink_UploadFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "hr-sync-reports").Return(true, nil)
	client.On("PutObject", mock.Anything, "hr-sync-reports", mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	sink := report.NewS3Sink(client, "hr-sync-reports", zap.NewNop())
	err := sink.Write(context.Background(), finishedReport())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestMultiSink_AllSinksReceiveReport(t *testing.T) {
	first := &stubSink{}
	second := &stubSink{err: errors.New("second failed")}
	third := &stubSink{}

	multi := report.MultiSink{first, second, third}
	err := multi.Write(context.Background(), finishedReport())

	// Later sinks still receive the report; the failure is surfaced.
	require.Error(t, err)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 1, third.calls)
}
