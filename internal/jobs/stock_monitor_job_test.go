package jobs_test

import (
	"context"
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/jobs"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLowStockFinder struct{ mock.Mock }

func (m *MockLowStockFinder) Handle(
	ctx context.Context,
	query queries.GetLowStockProductsQuery,
) ([]queries.ProductQueryResponse, error) {
	args := m.Called(ctx, query)
	found, _ := args.Get(0).([]queries.ProductQueryResponse)
	return found, args.Error(1)
}

type MockLowStockGauge struct{ mock.Mock }

func (m *MockLowStockGauge) SetLowStockProducts(count int) {
	m.Called(count)
}

func TestStockMonitorJob_RunOnce(t *testing.T) {
	ctx := t.Context()
	logger, hook := test.NewNullLogger()

	low := []queries.ProductQueryResponse{
		{ID: kernel.NewUUID(), Name: "Cable", Quantity: 0},
		{ID: kernel.NewUUID(), Name: "Mouse", Quantity: 2},
	}
	finder := new(MockLowStockFinder)
	finder.On("Handle", ctx, mock.MatchedBy(func(q queries.GetLowStockProductsQuery) bool {
		return q.Threshold() == 2
	})).Return(low, nil).Once()
	gauge := new(MockLowStockGauge)
	gauge.On("SetLowStockProducts", 2).Return().Once()

	job, err := jobs.NewStockMonitorJob(finder, gauge, 2, "", log.NewEntry(logger))
	require.NoError(t, err)

	got, err := job.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, low, got)
	finder.AssertExpectations(t)
	gauge.AssertExpectations(t)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, log.WarnLevel, entries[0].Level)
	assert.Equal(t, "Cable", entries[0].Data["name"])
	assert.Equal(t, "stock_monitor_job", entries[0].Data["component"])
	assert.Equal(t, log.InfoLevel, entries[1].Level)
	assert.Equal(t, 2, entries[1].Data["quantity"])
}

func TestStockMonitorJob_RunOnce_Error(t *testing.T) {
	ctx := t.Context()
	logger, _ := test.NewNullLogger()

	finder := new(MockLowStockFinder)
	finder.On("Handle", ctx, mock.Anything).Return(nil, errors.New("db down")).Once()
	gauge := new(MockLowStockGauge)

	job, err := jobs.NewStockMonitorJob(finder, gauge, 5, "", log.NewEntry(logger))
	require.NoError(t, err)

	_, err = job.RunOnce(ctx)
	require.EqualError(t, err, "db down")
	gauge.AssertNotCalled(t, "SetLowStockProducts", mock.Anything)
}

func TestStockMonitorJob_NilGauge(t *testing.T) {
	ctx := t.Context()
	finder := new(MockLowStockFinder)
	finder.On("Handle", ctx, mock.Anything).Return([]queries.ProductQueryResponse{}, nil).Once()

	job, err := jobs.NewStockMonitorJob(finder, nil, 5, "", nil)
	require.NoError(t, err)

	_, err = job.RunOnce(ctx)
	require.NoError(t, err)
}

func TestNewStockMonitorJob_NegativeThreshold(t *testing.T) {
	_, err := jobs.NewStockMonitorJob(new(MockLowStockFinder), nil, -1, "", nil)
	require.Error(t, err)
}

func TestStockMonitorJob_StartRejectsBadSchedule(t *testing.T) {
	logger, _ := test.NewNullLogger()
	job, err := jobs.NewStockMonitorJob(new(MockLowStockFinder), nil, 1, "not a schedule", log.NewEntry(logger))
	require.NoError(t, err)

	require.Error(t, job.Start())
}

func TestStockMonitorJob_StartStop(t *testing.T) {
	logger, hook := test.NewNullLogger()
	job, err := jobs.NewStockMonitorJob(new(MockLowStockFinder), nil, 1, "0 0 0 1 1 *", log.NewEntry(logger))
	require.NoError(t, err)

	require.NoError(t, job.Start())
	job.Stop()

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Stock monitor job stopped", hook.LastEntry().Message)
}
