// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

// Package report reduces a matched pair set into the serializable score
// report: per-field statistics, run-level statistics, an error taxonomy and
// the fixed-bucket score distribution.
package report

// ScoreReport is the complete output of one evaluation call. It is
// JSON-serializable and self-contained; no engine state survives the call
// that produced it.
type ScoreReport struct {
	// ReportID uniquely identifies this report.
	ReportID string `json:"report_id,omitempty"`
	// TotalSamples is the matched pair count.
	TotalSamples int `json:"total_samples"`
	// FieldScores holds the per-field mean and raw score list across matched
	// pairs, keyed by field name.
	FieldScores map[string]*FieldScore `json:"field_scores"`
	// OverallScore is the weighted mean of the field-level mean scores.
	OverallScore float64 `json:"overall_score"`
	// DetailedResults carries one entry per matched pair.
	DetailedResults []*SampleResult `json:"detailed_results"`
	// Summary holds the extended run statistics.
	Summary *RunSummary `json:"summary,omitempty"`
}

// FieldScore is the per-field view across all matched pairs.
type FieldScore struct {
	MeanScore float64   `json:"mean_score"`
	Scores    []float64 `json:"scores"`
}

// SampleResult is the per-pair detail, including any applied consistency
// issues. Field scores here are post-penalty.
type SampleResult struct {
	SampleID         int                `json:"sample_id"`
	FieldScores      map[string]float64 `json:"field_scores"`
	DependencyIssues []string           `json:"dependency_issues"`
}

// RunSummary is the run-level statistics block.
type RunSummary struct {
	MeanOverallScore  float64                     `json:"mean_overall_score"`
	MeanWeightedScore float64                     `json:"mean_weighted_score"`
	MinScore          float64                     `json:"min_score"`
	MaxScore          float64                     `json:"max_score"`
	ScoreDistribution Distribution                `json:"score_distribution"`
	FieldStatistics   map[string]*FieldStatistics `json:"field_statistics"`
	DifficultSamples  []*DifficultSample          `json:"difficult_samples,omitempty"`
	// UnmatchedPredictions and UnmatchedGroundTruths count the instances the
	// matcher left unassigned. They are reported, not scored.
	UnmatchedPredictions  int `json:"unmatched_predictions"`
	UnmatchedGroundTruths int `json:"unmatched_ground_truths"`
}

// Distribution is the fixed-bucket score histogram.
type Distribution struct {
	// Excellent counts pairs scoring >= 0.9.
	Excellent int `json:"excellent"`
	// Good counts pairs scoring in [0.7, 0.9).
	Good int `json:"good"`
	// Fair counts pairs scoring in [0.5, 0.7).
	Fair int `json:"fair"`
	// Poor counts pairs scoring < 0.5.
	Poor int `json:"poor"`
}

// Add places one overall score into its bucket.
func (d *Distribution) Add(score float64) {
	switch {
	case score >= 0.9:
		d.Excellent++
	case score >= 0.7:
		d.Good++
	case score >= 0.5:
		d.Fair++
	default:
		d.Poor++
	}
}

// FieldStatistics is the extended per-field view.
type FieldStatistics struct {
	MeanScore        float64        `json:"mean_score"`
	ExactMatchCount  int            `json:"exact_match_count"`
	ExactMatchRate   float64        `json:"exact_match_rate"`
	TotalPredictions int            `json:"total_predictions"`
	ErrorTypes       map[string]int `json:"error_types,omitempty"`
}

// DifficultSample describes one low-scoring matched pair.
type DifficultSample struct {
	SampleID     int      `json:"sample_id"`
	OverallScore float64  `json:"overall_score"`
	MainIssues   []string `json:"main_issues"`
}
