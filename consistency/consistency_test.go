// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

package consistency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaneshjouLab/AutoGKB-sub000/annotation"
	"github.com/DaneshjouLab/AutoGKB-sub000/pairscore"
)

// TestValidate_CleanInstance verifies that a coherent record raises no issues.
func TestValidate_CleanInstance(t *testing.T) {
	inst := annotation.New().
		SetText("P Value", "0.01").
		SetText("Ratio Stat", "2.3").
		SetText("Confidence Interval Start", "1.2").
		SetText("Confidence Interval Stop", "4.1").
		SetText("Frequency in Cases", "0.35")
	issues := New().Validate(inst, nil)
	assert.Empty(t, issues)
}

// TestValidate_StatisticalSign verifies detection of a significant p-value
// paired with a no-effect ratio statistic.
func TestValidate_StatisticalSign(t *testing.T) {
	inst := annotation.New().
		SetText("P Value", "0.01").
		SetText("Ratio Stat", "1.0")
	issues := New().Validate(inst, nil)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeStatisticalSign, issues[0].Code)
	assert.ElementsMatch(t, []string{"P Value", "Ratio Stat", "Ratio Stat Type"}, issues[0].Fields)

	// A non-significant p-value with the same ratio is fine.
	inst.SetText("P Value", "0.32")
	assert.Empty(t, New().Validate(inst, nil))
}

// TestValidate_StatisticalSign_Inequality verifies that inequality-qualified
// p-values are read by magnitude.
func TestValidate_StatisticalSign_Inequality(t *testing.T) {
	inst := annotation.New().
		SetText("P Value", "<0.001").
		SetText("Ratio Stat", "1.0")
	issues := New().Validate(inst, nil)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeStatisticalSign, issues[0].Code)
}

// TestValidate_IntervalOrder verifies detection of an inverted confidence
// interval.
func TestValidate_IntervalOrder(t *testing.T) {
	inst := annotation.New().
		SetText("Confidence Interval Start", "4.1").
		SetText("Confidence Interval Stop", "1.2")
	issues := New().Validate(inst, nil)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeIntervalOrder, issues[0].Code)
}

// TestValidate_IntervalContainment verifies detection of a ratio statistic
// outside its own interval.
func TestValidate_IntervalContainment(t *testing.T) {
	inst := annotation.New().
		SetText("Ratio Stat", "5.0").
		SetText("Confidence Interval Start", "1.2").
		SetText("Confidence Interval Stop", "4.1")
	issues := New().Validate(inst, nil)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeIntervalContainment, issues[0].Code)

	// Containment is only judged against a well-ordered interval.
	inst.SetText("Confidence Interval Start", "4.1")
	inst.SetText("Confidence Interval Stop", "1.2")
	issues = New().Validate(inst, nil)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeIntervalOrder, issues[0].Code)
}

// TestValidate_BoundedFraction verifies detection of frequencies outside
// [0, 1], one issue per offending field.
func TestValidate_BoundedFraction(t *testing.T) {
	inst := annotation.New().
		SetText("Frequency in Cases", "1.35").
		SetText("Frequency in Controls", "-0.1")
	issues := New().Validate(inst, nil)
	require.Len(t, issues, 2)
	for _, issue := range issues {
		assert.Equal(t, CodeBoundedFraction, issue.Code)
		assert.Contains(t, issue.Fields, "Study Cases")
		assert.Contains(t, issue.Fields, "Study Controls")
	}
}

// TestValidate_Referential verifies the cross-reference check against related
// instances.
func TestValidate_Referential(t *testing.T) {
	inst := annotation.New().SetText("Variant Annotation ID", "981755803")
	related := []*annotation.Instance{
		annotation.New().SetText("Variant Annotation ID", "1448102933"),
	}
	issues := New().Validate(inst, related)
	require.Len(t, issues, 1)
	assert.Equal(t, CodeReferentialIntegrity, issues[0].Code)
	assert.Contains(t, issues[0].Message, "981755803")

	// A matching related instance clears the issue.
	related = append(related, annotation.New().SetText("Variant Annotation ID", "981755803"))
	assert.Empty(t, New().Validate(inst, related))

	// No related set means the check is skipped, not failed.
	assert.Empty(t, New().Validate(inst, nil))
}

// TestPenalty verifies the per-issue discount and its cap.
func TestPenalty(t *testing.T) {
	v := New()
	assert.InDelta(t, 0.0, v.Penalty(0), 1e-12)
	assert.InDelta(t, 0.05, v.Penalty(1), 1e-12)
	assert.InDelta(t, 0.15, v.Penalty(3), 1e-12)
	assert.InDelta(t, 0.3, v.Penalty(6), 1e-12)
	assert.InDelta(t, 0.3, v.Penalty(100), 1e-12)
}

// TestPenalize verifies that exactly the implicated fields are discounted,
// each at most once.
func TestPenalize(t *testing.T) {
	ps := &pairscore.PairScore{
		FieldScores: map[string]float64{
			"P Value":         1.0,
			"Ratio Stat":      1.0,
			"Ratio Stat Type": 0.8,
			"Study Type":      1.0,
		},
	}
	v := New()
	issues := []Issue{{
		Code:   CodeStatisticalSign,
		Fields: []string{"P Value", "Ratio Stat", "Ratio Stat Type"},
	}}
	v.Penalize(ps, issues)
	assert.InDelta(t, 0.95, ps.FieldScores["P Value"], 1e-12)
	assert.InDelta(t, 0.95, ps.FieldScores["Ratio Stat"], 1e-12)
	assert.InDelta(t, 0.8*0.95, ps.FieldScores["Ratio Stat Type"], 1e-12)
	assert.InDelta(t, 1.0, ps.FieldScores["Study Type"], 1e-12)
}

// TestPenalize_OverlappingIssues verifies that a field named by several issues
// is still discounted only once, at the combined penalty.
func TestPenalize_OverlappingIssues(t *testing.T) {
	ps := &pairscore.PairScore{
		FieldScores: map[string]float64{"Ratio Stat": 1.0, "Study Type": 1.0},
	}
	issues := []Issue{
		{Code: CodeIntervalOrder, Fields: []string{"Ratio Stat"}},
		{Code: CodeIntervalContainment, Fields: []string{"Ratio Stat"}},
	}
	New().Penalize(ps, issues)
	assert.InDelta(t, 0.9, ps.FieldScores["Ratio Stat"], 1e-12)
	assert.InDelta(t, 1.0, ps.FieldScores["Study Type"], 1e-12)
}

// TestPenalize_EmptyFieldListHitsEverything verifies the all-fields
// convention for issues with no field list.
func TestPenalize_EmptyFieldListHitsEverything(t *testing.T) {
	ps := &pairscore.PairScore{
		FieldScores: map[string]float64{"a": 1.0, "b": 0.5},
	}
	New().Penalize(ps, []Issue{{Code: CodeReferentialIntegrity}})
	assert.InDelta(t, 0.95, ps.FieldScores["a"], 1e-12)
	assert.InDelta(t, 0.5*0.95, ps.FieldScores["b"], 1e-12)
}

// TestMessages verifies message extraction in detection order.
func TestMessages(t *testing.T) {
	assert.Nil(t, Messages(nil))
	msgs := Messages([]Issue{{Message: "first"}, {Message: "second"}})
	assert.Equal(t, []string{"first", "second"}, msgs)
}

// TestCode_String verifies the issue class identifiers.
func TestCode_String(t *testing.T) {
	assert.Equal(t, "referential_integrity", CodeReferentialIntegrity.String())
	assert.Equal(t, "statistical_sign", CodeStatisticalSign.String())
	assert.Equal(t, "bounded_fraction", CodeBoundedFraction.String())
	assert.Equal(t, "unknown", Code(99).String())
}
