// Package registry declares the callable operations: key, description,
// input contract, price, and handler. Dispatch itself is delegated to
// the HTTP router; this package only owns the catalog.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
)

// Param documents one input parameter of an operation.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Default     string `json:"default,omitempty"`
}

// Operation is one priced, callable endpoint.
type Operation struct {
	Key         string  `json:"key"`
	Description string  `json:"description"`
	Method      string  `json:"method"`
	Path        string  `json:"path"`
	Price       int64   `json:"price"`
	Params      []Param `json:"params,omitempty"`
	Handler     gin.HandlerFunc `json:"-"`
}

// Registry is the operation catalog.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

func New() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register adds an operation. Duplicate keys are a programming error.
func (r *Registry) Register(op Operation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ops[op.Key]; exists {
		return fmt.Errorf("operation %q already registered", op.Key)
	}
	r.ops[op.Key] = op
	return nil
}

// MustRegister panics on duplicate registration; used at startup.
func (r *Registry) MustRegister(op Operation) {
	if err := r.Register(op); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(key string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[key]
	return op, ok
}

// All returns the catalog sorted by key.
func (r *Registry) All() []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Operation, 0, len(r.ops))
	for _, op := range r.ops {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
