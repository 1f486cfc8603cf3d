// Package jobio reads and writes job sets as YAML or JSON documents.
//
// Two document forms are accepted. The record form lists jobs:
//
//	jobs:
//	  - {start: 1, end: 3, profit: 50}
//	  - {start: 3, end: 6, profit: 70}
//
// The column form mirrors scheduler.MaxProfit's parallel slices:
//
//	start:  [1, 2, 3, 3]
//	end:    [3, 4, 5, 6]
//	profit: [50, 10, 40, 70]
//
// JSON documents are valid YAML and decode the same way. Unknown keys are
// rejected, and so is a stream holding more than one document. Encode always
// writes the record form.
package jobio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jobsched/scheduler"
)

var (
	// ErrEmptyDocument is returned when the input holds no YAML document.
	ErrEmptyDocument = errors.New("jobio: empty document")

	// ErrMixedForms is returned when a document uses both the record and the column form.
	ErrMixedForms = errors.New("jobio: document mixes jobs list and start/end/profit columns")

	// ErrMissingField is returned when a job record lacks start, end or profit.
	ErrMissingField = errors.New("jobio: job record is missing a field")

	// ErrMultipleDocuments is returned when the input holds a second document after "---".
	ErrMultipleDocuments = errors.New("jobio: input holds more than one document")
)

// document is the on-disk shape shared by both forms.
type document struct {
	Jobs   []record `yaml:"jobs,omitempty"`
	Start  []int    `yaml:"start,omitempty"`
	End    []int    `yaml:"end,omitempty"`
	Profit []int    `yaml:"profit,omitempty"`
}

// record uses pointers so that absent keys can be told apart from zero.
type record struct {
	Start  *int `yaml:"start"`
	End    *int `yaml:"end"`
	Profit *int `yaml:"profit"`
}

// Decode reads exactly one document from r. Intervals are not validated
// here; scheduler.Schedule does that.
//
// Complexity: O(size of input) time and space.
func Decode(r io.Reader) ([]scheduler.Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("jobio: decode: %w", err)
	}
	// a second document is rejected
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMultipleDocuments, err)
		}
		return nil, ErrMultipleDocuments
	}

	columns := doc.Start != nil || doc.End != nil || doc.Profit != nil
	if columns && doc.Jobs != nil {
		return nil, ErrMixedForms
	}
	if columns {
		return scheduler.FromSlices(doc.Start, doc.End, doc.Profit)
	}

	jobs := make([]scheduler.Job, len(doc.Jobs))
	for i, rec := range doc.Jobs {
		if rec.Start == nil || rec.End == nil || rec.Profit == nil {
			return nil, fmt.Errorf("%w: jobs[%d]", ErrMissingField, i)
		}
		jobs[i] = scheduler.Job{Start: *rec.Start, End: *rec.End, Profit: *rec.Profit}
	}

	return jobs, nil
}

// Load opens path and decodes it.
func Load(path string) ([]scheduler.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("jobio: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes jobs to w in the record form.
func Encode(w io.Writer, jobs []scheduler.Job) error {
	doc := document{Jobs: make([]record, len(jobs))}
	for i := range jobs {
		j := jobs[i]
		doc.Jobs[i] = record{Start: &j.Start, End: &j.End, Profit: &j.Profit}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("jobio: encode: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("jobio: encode: %w", err)
	}

	return nil
}
