package command

import (
	"context"
	"sync"
)

// Recorder is a Runner for tests. It records every spec it receives
// and replies from a scripted table keyed by program name.
type Recorder struct {
	mu    sync.Mutex
	specs []Spec

	// Outputs maps program name to the stdout to return.
	Outputs map[string]string

	// Errors maps program name to the error to return.
	Errors map[string]error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Outputs: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

// Run records the spec and returns the scripted reply.
func (r *Recorder) Run(_ context.Context, spec Spec) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.specs = append(r.specs, spec)
	if err, ok := r.Errors[spec.Program]; ok {
		return "", err
	}
	return r.Outputs[spec.Program], nil
}

// Specs returns a copy of every recorded spec.
func (r *Recorder) Specs() []Spec {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

// ByProgram returns the recorded specs for one program.
func (r *Recorder) ByProgram(program string) []Spec {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Spec
	for _, s := range r.specs {
		if s.Program == program {
			out = append(out, s)
		}
	}
	return out
}

var _ Runner = (*Recorder)(nil)
