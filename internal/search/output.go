package search

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Params are the settings a report was made with.
type Params struct {
	Iterations int   `json:"iterations,omitempty" yaml:"iterations,omitempty"`
	Depth      int   `json:"depth,omitempty" yaml:"depth,omitempty"`
	Edits      int   `json:"edits,omitempty" yaml:"edits,omitempty"`
	Seed       int64 `json:"seed" yaml:"seed"`
	Trials     int   `json:"trials" yaml:"trials"`
}

// TrialReport summarizes one trial.
type TrialReport struct {
	Seed int64 `json:"seed" yaml:"seed"`

	// Count of strands discovered (simulate) or valid strands found (search)
	Count int `json:"count" yaml:"count"`

	// Aborted searches had no initial signature
	Aborted bool `json:"aborted,omitempty" yaml:"aborted,omitempty"`

	// Seen is the number of distinct edited strands a search evaluated
	Seen int `json:"seen,omitempty" yaml:"seen,omitempty"`
}

// Report is the output of a simulate or search command.
type Report struct {
	// ID is unique per run
	ID string `json:"id" yaml:"id"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time" yaml:"time"`

	// Command is "simulate" or "search"
	Command string `json:"command" yaml:"command"`

	// Init is the initial strand
	Init string `json:"init" yaml:"init"`

	// Apply is the strand signatures are taken against (search only)
	Apply string `json:"apply,omitempty" yaml:"apply,omitempty"`

	// Signature of the initial strand (search only)
	Signature string `json:"signature,omitempty" yaml:"signature,omitempty"`

	Params Params `json:"params" yaml:"params"`

	Trials []TrialReport `json:"trials" yaml:"trials"`

	// Total is the number of distinct strands across all trials
	Total int `json:"total" yaml:"total"`

	// Strands lists the distinct strands, when asked for
	Strands []string `json:"strands,omitempty" yaml:"strands,omitempty"`
}

// NewSimulateReport summarizes simulation trials.
func NewSimulateReport(initial string, params Params, results []*SimulateResult, listStrands bool) *Report {
	r := newReport("simulate", initial, params)
	for i, res := range results {
		r.Trials = append(r.Trials, TrialReport{Seed: params.Seed + int64(i), Count: len(res.Strands)})
	}

	unique := UniqueStrands(results)
	r.Total = len(unique)
	if listStrands {
		r.Strands = unique
	}
	return r
}

// NewSearchReport summarizes search trials.
func NewSearchReport(initial, apply string, params Params, results []*SearchResult, listStrands bool) *Report {
	r := newReport("search", initial, params)
	r.Apply = apply
	for i, res := range results {
		if !res.Aborted && r.Signature == "" {
			r.Signature = res.Signature.String()
		}
		r.Trials = append(r.Trials, TrialReport{
			Seed:    params.Seed + int64(i),
			Count:   len(res.Valid),
			Aborted: res.Aborted,
			Seen:    res.Seen,
		})
	}

	unique := UniqueValid(results)
	r.Total = len(unique)
	if listStrands {
		r.Strands = unique
	}
	return r
}

func newReport(command, initial string, params Params) *Report {
	// same format as log.Println
	t := time.Now()
	return &Report{
		ID: uuid.NewString(),
		Time: fmt.Sprintf(
			"%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		),
		Command: command,
		Init:    initial,
		Params:  params,
	}
}

// Summary is the one line description of the report printed after a run.
func (r *Report) Summary() string {
	if r.Command == "search" {
		return fmt.Sprintf(
			"Discovered %d valid strands while searching until depth %d and branching factor %d",
			r.Total, r.Params.Depth, r.Params.Edits,
		)
	}
	return fmt.Sprintf(
		"Discovered %d unique strands while simulating for %d iterations",
		r.Total, r.Params.Iterations,
	)
}

// WriteReport serializes the report to filename, as YAML for .yaml and .yml files
// and as JSON otherwise.
func WriteReport(filename string, r *Report) (output []byte, err error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		output, err = yaml.Marshal(r)
	default:
		output, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return output, fmt.Errorf("failed to serialize output: %w", err)
	}

	if err = os.WriteFile(filename, output, 0644); err != nil {
		return output, fmt.Errorf("failed to write the output: %w", err)
	}
	return output, nil
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
