// SPDX-License-Identifier: MIT

package graphio

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ftcenters/cluster"
)

// Report is the YAML document written after a solve.
type Report struct {
	Feasible bool          `yaml:"feasible"`
	Error    string        `yaml:"error,omitempty"`
	Plan     *cluster.Plan `yaml:"plan,omitempty"`
}

// NewReport pairs the outcome of cluster.Solve into a Report.
func NewReport(plan *cluster.Plan, err error) Report {
	r := Report{Feasible: err == nil && plan != nil, Plan: plan}
	if err != nil {
		r.Error = err.Error()
	}

	return r
}

// EncodePlan writes the report for (plan, err) to w.
func EncodePlan(w io.Writer, plan *cluster.Plan, err error) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if encErr := enc.Encode(NewReport(plan, err)); encErr != nil {
		return encErr
	}

	return enc.Close()
}

// DecodeReport reads a report written by EncodePlan.
func DecodeReport(r io.Reader) (Report, error) {
	var rep Report
	err := yaml.NewDecoder(r).Decode(&rep)

	return rep, err
}
