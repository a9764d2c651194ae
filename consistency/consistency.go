// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

// Package consistency audits a predicted annotation instance for internally
// contradictory values. Each check emits a typed Issue naming the fields it
// implicates; the penalty step discounts exactly those fields' scores. Issues
// are findings, never errors: a contradictory record still scores.
package consistency

import (
	"fmt"

	"github.com/DaneshjouLab/AutoGKB-sub000/annotation"
	"github.com/DaneshjouLab/AutoGKB-sub000/fieldeval"
	"github.com/DaneshjouLab/AutoGKB-sub000/pairscore"
)

// Code identifies the class of a detected inconsistency.
type Code int

const (
	// CodeReferentialIntegrity: a cross-reference identifier does not appear
	// among any related instance.
	CodeReferentialIntegrity Code = iota
	// CodeStatisticalSign: a significant p-value paired with a no-effect
	// ratio statistic.
	CodeStatisticalSign
	// CodeIntervalOrder: a confidence interval whose start is not strictly
	// below its stop.
	CodeIntervalOrder
	// CodeIntervalContainment: a ratio statistic outside its own confidence
	// interval.
	CodeIntervalContainment
	// CodeBoundedFraction: a frequency outside [0, 1].
	CodeBoundedFraction
)

// String returns the issue class identifier.
func (c Code) String() string {
	switch c {
	case CodeReferentialIntegrity:
		return "referential_integrity"
	case CodeStatisticalSign:
		return "statistical_sign"
	case CodeIntervalOrder:
		return "interval_order"
	case CodeIntervalContainment:
		return "interval_containment"
	case CodeBoundedFraction:
		return "bounded_fraction"
	default:
		return "unknown"
	}
}

// Issue is one detected contradiction. Fields lists the field names the issue
// implicates; an empty list implicates every field of the instance.
type Issue struct {
	Code    Code
	Message string
	Fields  []string
}

// FieldMap names the fields the checks read. Zero-value entries disable the
// corresponding check.
type FieldMap struct {
	// CrossReference is the identifier field checked against related instances.
	CrossReference string
	// PValue is the significance field.
	PValue string
	// RatioStat and RatioStatType describe the effect-size statistic.
	RatioStat     string
	RatioStatType string
	// IntervalStart and IntervalStop bound the confidence interval.
	IntervalStart string
	IntervalStop  string
	// Fractions are frequency-type fields constrained to [0, 1].
	Fractions []string
	// SampleSizes are the count fields penalized together with fractions.
	SampleSizes []string
}

// StudyParameterFields returns the field map for the study-parameter schema.
func StudyParameterFields() FieldMap {
	return FieldMap{
		CrossReference: "Variant Annotation ID",
		PValue:         "P Value",
		RatioStat:      "Ratio Stat",
		RatioStatType:  "Ratio Stat Type",
		IntervalStart:  "Confidence Interval Start",
		IntervalStop:   "Confidence Interval Stop",
		Fractions:      []string{"Frequency in Cases", "Frequency in Controls"},
		SampleSizes:    []string{"Study Cases", "Study Controls"},
	}
}

// Validator runs the consistency checks. A configured Validator is immutable
// and safe for concurrent use.
type Validator struct {
	fields            FieldMap
	significanceLevel float64
	penaltyPerIssue   float64
	maxPenalty        float64
}

// Option configures a Validator.
type Option func(*Validator)

// WithFieldMap overrides the fields the checks read.
func WithFieldMap(fields FieldMap) Option {
	return func(v *Validator) {
		v.fields = fields
	}
}

// WithSignificanceLevel overrides the p-value significance cutoff.
func WithSignificanceLevel(alpha float64) Option {
	return func(v *Validator) {
		v.significanceLevel = alpha
	}
}

// New returns a validator with the study-parameter field map, a 0.05
// significance level, and the 5%-per-issue penalty capped at 30%.
func New(opt ...Option) *Validator {
	v := &Validator{
		fields:            StudyParameterFields(),
		significanceLevel: 0.05,
		penaltyPerIssue:   0.05,
		maxPenalty:        0.3,
	}
	for _, o := range opt {
		o(v)
	}
	return v
}

// Validate audits one predicted instance. The related slice supplies the
// instances sharing a cross-reference key for the referential check; passing
// nil skips that check.
func (v *Validator) Validate(inst *annotation.Instance, related []*annotation.Instance) []Issue {
	var issues []Issue
	if issue, ok := v.checkReferential(inst, related); ok {
		issues = append(issues, issue)
	}
	if issue, ok := v.checkStatisticalSign(inst); ok {
		issues = append(issues, issue)
	}
	if issue, ok := v.checkIntervalOrder(inst); ok {
		issues = append(issues, issue)
	}
	if issue, ok := v.checkIntervalContainment(inst); ok {
		issues = append(issues, issue)
	}
	issues = append(issues, v.checkBoundedFractions(inst)...)
	return issues
}

func (v *Validator) checkReferential(inst *annotation.Instance, related []*annotation.Instance) (Issue, bool) {
	field := v.fields.CrossReference
	if field == "" || len(related) == 0 {
		return Issue{}, false
	}
	id := inst.Get(field)
	if id.Empty() {
		return Issue{}, false
	}
	for _, rel := range related {
		if fieldeval.ExactMatch(id, rel.Get(field)) == 1.0 {
			return Issue{}, false
		}
	}
	return Issue{
		Code:    CodeReferentialIntegrity,
		Message: fmt.Sprintf("%s %q not found among related instances", field, id.Text()),
		Fields:  []string{field},
	}, true
}

func (v *Validator) checkStatisticalSign(inst *annotation.Instance) (Issue, bool) {
	if v.fields.PValue == "" || v.fields.RatioStat == "" {
		return Issue{}, false
	}
	_, pMag, pOK, _ := fieldeval.ParseInequality(inst.Get(v.fields.PValue))
	ratio, ratioOK := fieldeval.ParseNumeric(inst.Get(v.fields.RatioStat))
	if !pOK || !ratioOK {
		return Issue{}, false
	}
	if pMag < v.significanceLevel && ratio == 1.0 {
		return Issue{
			Code: CodeStatisticalSign,
			Message: fmt.Sprintf("significant p-value %v with no-effect ratio statistic 1.0",
				inst.Get(v.fields.PValue).Text()),
			Fields: []string{v.fields.PValue, v.fields.RatioStat, v.fields.RatioStatType},
		}, true
	}
	return Issue{}, false
}

func (v *Validator) checkIntervalOrder(inst *annotation.Instance) (Issue, bool) {
	if v.fields.IntervalStart == "" || v.fields.IntervalStop == "" {
		return Issue{}, false
	}
	start, startOK := fieldeval.ParseNumeric(inst.Get(v.fields.IntervalStart))
	stop, stopOK := fieldeval.ParseNumeric(inst.Get(v.fields.IntervalStop))
	if !startOK || !stopOK {
		return Issue{}, false
	}
	if start >= stop {
		return Issue{
			Code:    CodeIntervalOrder,
			Message: fmt.Sprintf("confidence interval start %v not below stop %v", start, stop),
			Fields:  []string{v.fields.IntervalStart, v.fields.IntervalStop, v.fields.RatioStat},
		}, true
	}
	return Issue{}, false
}

func (v *Validator) checkIntervalContainment(inst *annotation.Instance) (Issue, bool) {
	if v.fields.RatioStat == "" || v.fields.IntervalStart == "" || v.fields.IntervalStop == "" {
		return Issue{}, false
	}
	ratio, ratioOK := fieldeval.ParseNumeric(inst.Get(v.fields.RatioStat))
	start, startOK := fieldeval.ParseNumeric(inst.Get(v.fields.IntervalStart))
	stop, stopOK := fieldeval.ParseNumeric(inst.Get(v.fields.IntervalStop))
	if !ratioOK || !startOK || !stopOK || start >= stop {
		return Issue{}, false
	}
	if ratio < start || ratio > stop {
		return Issue{
			Code:    CodeIntervalContainment,
			Message: fmt.Sprintf("ratio statistic %v outside confidence interval [%v, %v]", ratio, start, stop),
			Fields:  []string{v.fields.IntervalStart, v.fields.IntervalStop, v.fields.RatioStat},
		}, true
	}
	return Issue{}, false
}

func (v *Validator) checkBoundedFractions(inst *annotation.Instance) []Issue {
	var issues []Issue
	for _, field := range v.fields.Fractions {
		freq, ok := fieldeval.ParseNumeric(inst.Get(field))
		if !ok {
			continue
		}
		if freq < 0 || freq > 1 {
			fields := append([]string{field}, v.fields.SampleSizes...)
			issues = append(issues, Issue{
				Code:    CodeBoundedFraction,
				Message: fmt.Sprintf("%s %v outside [0, 1]", field, freq),
				Fields:  fields,
			})
		}
	}
	return issues
}

// Penalty returns the score discount for the given issue count: 5% per issue,
// capped at 30%.
func (v *Validator) Penalty(issueCount int) float64 {
	penalty := v.penaltyPerIssue * float64(issueCount)
	if penalty > v.maxPenalty {
		return v.maxPenalty
	}
	return penalty
}

// Penalize discounts the pair's field scores for the detected issues. The
// total penalty derives from the issue count; every field implicated by at
// least one issue (or every field, for an issue with an empty field list) is
// multiplied once by 1 - penalty. The aggregate is left to the caller to
// recompute so penalties flow into both field-level means and the overall
// weighted score.
func (v *Validator) Penalize(ps *pairscore.PairScore, issues []Issue) {
	if len(issues) == 0 {
		return
	}
	penalty := v.Penalty(len(issues))
	targets := make(map[string]struct{})
	for _, issue := range issues {
		if len(issue.Fields) == 0 {
			for field := range ps.FieldScores {
				targets[field] = struct{}{}
			}
			continue
		}
		for _, field := range issue.Fields {
			if field == "" {
				continue
			}
			targets[field] = struct{}{}
		}
	}
	for field := range targets {
		if score, ok := ps.FieldScores[field]; ok {
			ps.FieldScores[field] = score * (1 - penalty)
		}
	}
}

// Messages extracts the issue messages in detection order.
func Messages(issues []Issue) []string {
	if len(issues) == 0 {
		return nil
	}
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.Message
	}
	return out
}
