// Package suite maps ci-report subcommands to the test suites whose results
// they publish.
package suite

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"cireport/internal/report"
)

// Publisher is what a suite hands its report to.
type Publisher interface {
	Publish(ctx context.Context, workerID, buildID string, verdict bool, html string) (report.Publication, error)
}

// Invocation is one parsed command line.
type Invocation struct {
	Command string
	BuildID string
	Verdict string
	// Args holds the suite's own flags by name.
	Args map[string]string
}

// String renders the invocation with keys sorted, e.g.
// "build_id=1234 cmd=lte url=http://x verdict=success".
func (inv Invocation) String() string {
	kv := map[string]string{
		"build_id": inv.BuildID,
		"verdict":  inv.Verdict,
		"cmd":      inv.Command,
	}
	for k, v := range inv.Args {
		kv[k] = v
	}
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+kv[k])
	}
	return strings.Join(parts, " ")
}

type Flag struct {
	Name     string
	Usage    string
	Required bool
}

type Suite struct {
	// Name is the subcommand.
	Name  string
	Short string
	// WorkerID partitions the suite's reports in the database.
	WorkerID string
	Flags    []Flag
	Run      func(ctx context.Context, out io.Writer, inv Invocation, p Publisher) error
}

// reservedArgs are the invocation keys suite flags may not reuse.
var reservedArgs = map[string]bool{"build_id": true, "verdict": true, "cmd": true}

type Registry struct {
	suites map[string]Suite
}

func NewRegistry(suites ...Suite) (*Registry, error) {
	r := &Registry{suites: make(map[string]Suite)}
	for _, s := range suites {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Default returns the registry of every suite ci-report knows.
func Default() *Registry {
	r, err := NewRegistry(LTE())
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Register(s Suite) error {
	if s.Name == "" || s.Run == nil {
		return fmt.Errorf("suite %q: name and run are required", s.Name)
	}
	for _, f := range s.Flags {
		if reservedArgs[f.Name] {
			return fmt.Errorf("suite %q: flag name %q is reserved", s.Name, f.Name)
		}
	}
	if _, ok := r.suites[s.Name]; ok {
		return fmt.Errorf("suite %q already registered", s.Name)
	}
	r.suites[s.Name] = s
	return nil
}

func (r *Registry) Get(name string) (Suite, bool) {
	s, ok := r.suites[name]
	return s, ok
}

// All returns the suites ordered by name.
func (r *Registry) All() []Suite {
	out := make([]Suite, 0, len(r.suites))
	for _, s := range r.suites {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
