// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaneshjouLab/AutoGKB-sub000/annotation"
)

// TestDistribution_Add verifies the fixed bucket boundaries.
func TestDistribution_Add(t *testing.T) {
	var d Distribution
	for _, s := range []float64{1.0, 0.9, 0.89, 0.7, 0.69, 0.5, 0.49, 0.0} {
		d.Add(s)
	}
	assert.Equal(t, 2, d.Excellent)
	assert.Equal(t, 2, d.Good)
	assert.Equal(t, 2, d.Fair)
	assert.Equal(t, 2, d.Poor)
}

// TestClassifyError_Precedence verifies the taxonomy rules in order.
func TestClassifyError_Precedence(t *testing.T) {
	present := annotation.String("increased risk of bleeding")
	absent := annotation.Absent()

	assert.Equal(t, "", ClassifyError(present, present, 1.0))
	assert.Equal(t, ErrorMissingPrediction, ClassifyError(absent, present, 0.0))
	assert.Equal(t, ErrorUnexpectedPrediction, ClassifyError(present, absent, 0.0))
	// Prediction shorter than half of expected.
	assert.Equal(t, ErrorIncompleteExtraction,
		ClassifyError(annotation.String("risk"), present, 0.3))
	// Prediction more than twice the expected length.
	assert.Equal(t, ErrorOverExtraction,
		ClassifyError(present, annotation.String("bleeding"), 0.3))
	assert.Equal(t, ErrorContentMismatch,
		ClassifyError(annotation.String("reduced clearance"), annotation.String("increased exposure"), 0.2))
}

// TestClassifyError_WhitespaceIsAbsent verifies that whitespace-only values
// classify as absence.
func TestClassifyError_WhitespaceIsAbsent(t *testing.T) {
	assert.Equal(t, ErrorMissingPrediction,
		ClassifyError(annotation.String("  "), annotation.String("x"), 0.0))
}

// TestScoreReport_JSONShape verifies the serialized field names.
func TestScoreReport_JSONShape(t *testing.T) {
	rep := &ScoreReport{
		ReportID:     "r1",
		TotalSamples: 1,
		FieldScores: map[string]*FieldScore{
			"Gene": {MeanScore: 0.8, Scores: []float64{0.8}},
		},
		OverallScore: 0.8,
		DetailedResults: []*SampleResult{{
			SampleID:         0,
			FieldScores:      map[string]float64{"Gene": 0.8},
			DependencyIssues: []string{},
		}},
	}
	raw, err := json.Marshal(rep)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{
		"report_id", "total_samples", "field_scores", "overall_score", "detailed_results",
	} {
		assert.Contains(t, decoded, key)
	}
	detail := decoded["detailed_results"].([]any)[0].(map[string]any)
	assert.Contains(t, detail, "sample_id")
	assert.Contains(t, detail, "field_scores")
	assert.Contains(t, detail, "dependency_issues")

	fs := decoded["field_scores"].(map[string]any)["Gene"].(map[string]any)
	assert.Contains(t, fs, "mean_score")
	assert.Contains(t, fs, "scores")
}
