package sweep

import (
	"iter"

	"github.com/google/uuid"
)

// Record is one emitted point of a Run.
type Record struct {
	RunID  string         `json:"run_id"`
	Sweep  string         `json:"sweep,omitempty"`
	Index  int            `json:"index"`
	Values map[string]any `json:"values"`
}

// Run tags the points of a filtered space with a run identifier.
type Run struct {
	ID     string
	Name   string
	space  *Space
	filter *Filter
}

// NewRun creates a run with a fresh random UUID.
func NewRun(name string, space *Space, filter *Filter) *Run {
	return &Run{ID: uuid.NewString(), Name: name, space: space, filter: filter}
}

// WithID replaces the run identifier, e.g. to resume tagging under an
// existing id. An empty id keeps the generated one.
func (r *Run) WithID(id string) *Run {
	if id != "" {
		r.ID = id
	}
	return r
}

// Record wraps p in a Record of this run.
func (r *Run) Record(p Point) Record {
	return Record{RunID: r.ID, Sweep: r.Name, Index: p.Index(), Values: p.Map()}
}

// Records yields a Record per accepted point, in enumeration order.
func (r *Run) Records() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for p, err := range r.space.Points(r.filter) {
			if err != nil {
				yield(Record{}, err)
				return
			}
			if !yield(r.Record(p), nil) {
				return
			}
		}
	}
}
