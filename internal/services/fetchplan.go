package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// FetchTask is one outbound call in an operation's fetch plan. A
// required task failing fails the whole plan; a best-effort task
// failing is logged and its result left nil for the handler to
// default.
type FetchTask struct {
	Name     string
	Required bool
	Run      func(ctx context.Context) (interface{}, error)
}

// FetchResult carries one settled task.
type FetchResult struct {
	Name  string
	Value interface{}
	Err   error
}

// FetchPlan is the explicit task graph one operation issues: a fixed
// set of independent calls joined with a fan-out. There is no
// cross-request state; every execution builds its own results.
type FetchPlan struct {
	logger *logrus.Logger
	tasks  []FetchTask
}

func NewFetchPlan(logger *logrus.Logger) *FetchPlan {
	return &FetchPlan{logger: logger}
}

func (p *FetchPlan) Add(name string, run func(ctx context.Context) (interface{}, error)) *FetchPlan {
	p.tasks = append(p.tasks, FetchTask{Name: name, Required: true, Run: run})
	return p
}

func (p *FetchPlan) AddBestEffort(name string, run func(ctx context.Context) (interface{}, error)) *FetchPlan {
	p.tasks = append(p.tasks, FetchTask{Name: name, Required: false, Run: run})
	return p
}

// Execute fans out all tasks concurrently and waits for every one to
// settle. The first required failure fails the plan. Best-effort
// failures leave a nil entry in the result map.
func (p *FetchPlan) Execute(ctx context.Context) (map[string]interface{}, error) {
	var wg sync.WaitGroup
	results := make(chan FetchResult, len(p.tasks))

	for _, task := range p.tasks {
		wg.Add(1)
		go func(task FetchTask) {
			defer wg.Done()
			value, err := task.Run(ctx)
			results <- FetchResult{Name: task.Name, Value: value, Err: err}
		}(task)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	required := make(map[string]bool, len(p.tasks))
	for _, task := range p.tasks {
		required[task.Name] = task.Required
	}

	out := make(map[string]interface{}, len(p.tasks))
	var firstErr error
	for result := range results {
		if result.Err != nil {
			if required[result.Name] {
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", result.Name, result.Err)
				}
			} else {
				p.logger.Warnf("Best-effort fetch %s failed: %v", result.Name, result.Err)
			}
			continue
		}
		out[result.Name] = result.Value
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// ExecuteSequential runs tasks one at a time in insertion order, for
// plans that bound concurrent upstream load. Failure semantics match
// Execute.
func (p *FetchPlan) ExecuteSequential(ctx context.Context) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(p.tasks))
	for _, task := range p.tasks {
		value, err := task.Run(ctx)
		if err != nil {
			if task.Required {
				return nil, fmt.Errorf("%s: %w", task.Name, err)
			}
			p.logger.Warnf("Best-effort fetch %s failed: %v", task.Name, err)
			continue
		}
		out[task.Name] = value
	}
	return out, nil
}
