// Package registry holds the list of test cases selectable at runtime.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"testhelper/internal/reporter"
)

// Func is the body of a test case. It performs comparisons on r.
type Func func(r *reporter.Reporter)

// Case is a registered test case
type Case struct {
	Name        string
	Description string
	Func        Func
}

// ErrDuplicateCase is returned when a case name is registered twice.
var ErrDuplicateCase = errors.New("duplicate test case")

// Registry keeps cases in registration order
type Registry struct {
	cases []Case
	index map[string]int
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds c. Names must be non-empty and unique.
func (r *Registry) Register(c Case) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return errors.New("test case name is empty")
	}
	if c.Func == nil {
		return fmt.Errorf("test case %s has no function", name)
	}
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCase, name)
	}
	c.Name = name
	r.index[name] = len(r.cases)
	r.cases = append(r.cases, c)
	return nil
}

// MustRegister is like Register but panics on error
func (r *Registry) MustRegister(c Case) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Len returns the number of registered cases
func (r *Registry) Len() int {
	return len(r.cases)
}

// Lookup returns the case registered under name
func (r *Registry) Lookup(name string) (Case, bool) {
	i, ok := r.index[name]
	if !ok {
		return Case{}, false
	}
	return r.cases[i], true
}

// Cases returns every case in registration order
func (r *Registry) Cases() []Case {
	out := make([]Case, len(r.cases))
	copy(out, r.cases)
	return out
}

// Select returns the cases matching pattern that are not named in skip,
// in registration order. An empty pattern matches every case.
func (r *Registry) Select(pattern string, skip []string) []Case {
	skipped := make(map[string]bool, len(skip))
	for _, name := range skip {
		if name = strings.TrimSpace(name); name != "" {
			skipped[name] = true
		}
	}

	var selected []Case
	for _, c := range r.cases {
		if skipped[c.Name] {
			continue
		}
		if MatchName(c.Name, pattern) {
			selected = append(selected, c)
		}
	}
	return selected
}
