package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func TestFetchPlanExecuteCollectsAllResults(t *testing.T) {
	plan := NewFetchPlan(planLogger())
	plan.Add("a", func(ctx context.Context) (interface{}, error) { return 1, nil })
	plan.Add("b", func(ctx context.Context) (interface{}, error) { return "two", nil })
	plan.AddBestEffort("c", func(ctx context.Context) (interface{}, error) { return 3.0, nil })

	results, err := plan.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, results["a"])
	assert.Equal(t, "two", results["b"])
	assert.Equal(t, 3.0, results["c"])
}

func TestFetchPlanRequiredFailureFailsPlan(t *testing.T) {
	boom := errors.New("boom")
	plan := NewFetchPlan(planLogger())
	plan.Add("ok", func(ctx context.Context) (interface{}, error) { return 1, nil })
	plan.Add("bad", func(ctx context.Context) (interface{}, error) { return nil, boom })

	results, err := plan.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad")
	assert.Nil(t, results)
}

func TestFetchPlanBestEffortFailureIsDefaulted(t *testing.T) {
	plan := NewFetchPlan(planLogger())
	plan.Add("required", func(ctx context.Context) (interface{}, error) { return "ok", nil })
	plan.AddBestEffort("flaky", func(ctx context.Context) (interface{}, error) {
		return nil, errors.New("upstream down")
	})

	results, err := plan.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", results["required"])

	_, present := results["flaky"]
	assert.False(t, present, "failed best-effort task leaves no entry")
}

func TestFetchPlanExecuteSequentialPreservesOrder(t *testing.T) {
	var order []string
	plan := NewFetchPlan(planLogger())
	for _, name := range []string{"first", "second", "third"} {
		name := name
		plan.Add(name, func(ctx context.Context) (interface{}, error) {
			order = append(order, name)
			return name, nil
		})
	}

	results, err := plan.ExecuteSequential(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Len(t, results, 3)
}

func TestFetchPlanExecuteSequentialStopsOnRequiredFailure(t *testing.T) {
	var ran []string
	plan := NewFetchPlan(planLogger())
	plan.Add("first", func(ctx context.Context) (interface{}, error) {
		ran = append(ran, "first")
		return nil, errors.New("boom")
	})
	plan.Add("second", func(ctx context.Context) (interface{}, error) {
		ran = append(ran, "second")
		return 2, nil
	})

	_, err := plan.ExecuteSequential(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"first"}, ran)
}

func TestFetchPlanEmptyPlan(t *testing.T) {
	plan := NewFetchPlan(planLogger())
	results, err := plan.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
}
