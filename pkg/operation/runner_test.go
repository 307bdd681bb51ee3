package operation_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/docsmith/translaterc/pkg/operation"
)

// 🚗 funcOperation wraps a function as an Operation
type funcOperation func(ctx context.Context) error

func (f funcOperation) Execute(ctx context.Context) error { return f(ctx) }

// 🧪 TestRunnerSync tests sequential execution order
func TestRunnerSync(t *testing.T) {
	var order []int
	ops := []operation.Operation{
		funcOperation(func(ctx context.Context) error { order = append(order, 1); return nil }),
		funcOperation(func(ctx context.Context) error { order = append(order, 2); return nil }),
	}

	r := operation.NewRunner(false)
	require.NoError(t, r.Run(context.Background(), ops...))
	assert.Equal(t, []int{1, 2}, order)
}

// 🧪 TestRunnerSyncStopsOnError tests that a failure halts the sequence
func TestRunnerSyncStopsOnError(t *testing.T) {
	var ran atomic.Int32
	ops := []operation.Operation{
		funcOperation(func(ctx context.Context) error { return errors.New("boom") }),
		funcOperation(func(ctx context.Context) error { ran.Add(1); return nil }),
	}

	r := operation.NewRunner(false)
	err := r.Run(context.Background(), ops...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, int32(0), ran.Load())
}

// 🧪 TestRunnerAsync tests concurrent execution
func TestRunnerAsync(t *testing.T) {
	var ran atomic.Int32
	ops := []operation.Operation{
		funcOperation(func(ctx context.Context) error { ran.Add(1); return nil }),
		funcOperation(func(ctx context.Context) error { ran.Add(1); return nil }),
		funcOperation(func(ctx context.Context) error { ran.Add(1); return nil }),
	}

	r := operation.NewRunner(true)
	require.NoError(t, r.Run(context.Background(), ops...))
	assert.Equal(t, int32(3), ran.Load())
}

// 🧪 TestRunnerAsyncError tests error collection in async mode
func TestRunnerAsyncError(t *testing.T) {
	ops := []operation.Operation{
		funcOperation(func(ctx context.Context) error { return nil }),
		funcOperation(func(ctx context.Context) error { return errors.New("boom") }),
	}

	r := operation.NewRunner(true)
	err := r.Run(context.Background(), ops...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

// 🧪 TestRunnerCancelledContext tests cancellation before execution
func TestRunnerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int32
	ops := []operation.Operation{
		funcOperation(func(ctx context.Context) error { ran.Add(1); return nil }),
	}

	r := operation.NewRunner(false)
	err := r.Run(ctx, ops...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
	assert.Equal(t, int32(0), ran.Load())
}
