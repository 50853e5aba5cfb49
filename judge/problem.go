package judge

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrUnknownProblem is returned by Registry.Lookup for an unregistered name.
var ErrUnknownProblem = errors.New("judge: unknown problem")

// Problem is one judge solution: it reads an instance (or a stream of
// instances) from in and writes the answers to out.
type Problem interface {
	Name() string
	Solve(in io.Reader, out io.Writer) error
}

// Registry maps problem names to solutions.
type Registry struct {
	problems map[string]Problem
}

// NewRegistry registers every problem given.
func NewRegistry(problems ...Problem) *Registry {
	r := &Registry{problems: make(map[string]Problem, len(problems))}
	for _, p := range problems {
		r.Register(p)
	}
	return r
}

// Register adds p, replacing a problem of the same name.
func (r *Registry) Register(p Problem) {
	r.problems[p.Name()] = p
}

// Lookup returns the problem called name.
func (r *Registry) Lookup(name string) (Problem, error) {
	p, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProblem, name)
	}
	return p, nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
