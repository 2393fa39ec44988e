package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"tableorders/internal/core/application/usecases/queries"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockOrdersCreatedSinceHandler struct {
	mock.Mock
}

func (m *mockOrdersCreatedSinceHandler) Handle(ctx context.Context, query queries.GetOrdersCreatedSinceQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderResponse), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDailySummaryJob_QueriesFromLocalMidnight(t *testing.T) {
	handler := &mockOrdersCreatedSinceHandler{}
	now := time.Date(2026, time.March, 14, 23, 59, 0, 0, time.Local)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(query queries.GetOrdersCreatedSinceQuery) bool {
		return query.Since().Equal(time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local))
	})).Return([]queries.OrderResponse{
		{ID: kernel.NewUUID(), TableID: "T1", Status: order.Pending, CreatedAt: now},
		{ID: kernel.NewUUID(), TableID: "T2", Status: order.Completed, CreatedAt: now},
	}, nil)

	job := NewDailySummaryJob(handler, discardLogger())
	job.now = func() time.Time { return now }

	job.run(context.Background())

	handler.AssertExpectations(t)
}

func TestDailySummaryJob_QueryFailureOnlyLogs(t *testing.T) {
	handler := &mockOrdersCreatedSinceHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errors.New("read failed"))

	job := NewDailySummaryJob(handler, discardLogger())

	assert.NotPanics(t, func() {
		job.run(context.Background())
	})
	handler.AssertExpectations(t)
}

func TestJobManager_StartAndStop(t *testing.T) {
	handler := &mockOrdersCreatedSinceHandler{}
	manager := NewJobManager(handler, discardLogger())

	assert.NoError(t, manager.StartAll())
	manager.StopAll()
}
