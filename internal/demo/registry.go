// Package demo wires the oop value objects into named, runnable demonstrations.
//
// Each demo reproduces one original example program: it builds its objects from
// config.Inputs and writes their report to an io.Writer. Demos are kept in a
// Registry and run by name.
package demo

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sghaida/oop/internal/config"
)

// Runner writes one demo's output for the given inputs.
type Runner func(w io.Writer, in config.Inputs) error

// ErrDemoPanic is returned if a runner panics.
var ErrDemoPanic = errors.New("demo: panic during run")

// ErrNilRunner is returned when a registered runner is nil.
var ErrNilRunner = errors.New("demo: nil runner")

// UnknownDemoError is returned when a demo name is not registered.
type UnknownDemoError struct{ Name string }

// Error implements the error interface.
func (e UnknownDemoError) Error() string {
	// Example: demo: unknown demo "warp-drive"
	return "demo: unknown demo " + strconv.Quote(e.Name)
}

// Registry is an ordered, in-memory set of named demos.
//
// Names keeps registration order so that running "all" replays the demos in a
// stable sequence. Providing an existing name replaces its runner in place.
type Registry struct {
	items map[string]Runner
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[string]Runner{}}
}

// Provide stores a runner under name and returns the registry for chaining.
func (r *Registry) Provide(name string, run Runner) *Registry {
	if _, exists := r.items[name]; !exists {
		r.order = append(r.order, name)
	}
	r.items[name] = run
	return r
}

// Get returns the runner if present (no panic).
func (r *Registry) Get(name string) (Runner, bool) {
	run, ok := r.items[name]
	return run, ok
}

// Names returns the registered demo names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Run executes a single demo and converts panics into ErrDemoPanic.
func (r *Registry) Run(w io.Writer, in config.Inputs, name string) (err error) {
	run, ok := r.Get(name)
	if !ok {
		return UnknownDemoError{Name: name}
	}
	if run == nil {
		return ErrNilRunner
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrDemoPanic, rec)
		}
	}()

	return run(w, in)
}

// RunAll executes the named demos in order, or every demo when names is empty.
//
// Every name is checked before anything runs. Execution stops at the first error.
func (r *Registry) RunAll(w io.Writer, in config.Inputs, names ...string) error {
	if len(names) == 0 {
		names = r.order
	}
	for _, name := range names {
		if _, ok := r.Get(name); !ok {
			return UnknownDemoError{Name: name}
		}
	}
	for _, name := range names {
		if err := r.Run(w, in, name); err != nil {
			return err
		}
	}
	return nil
}
