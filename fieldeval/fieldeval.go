// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

// Package fieldeval implements the per-field similarity metrics. Every
// evaluator is a pure function (predicted, expected) -> score in [0, 1] with a
// shared absence contract: both values absent scores 1.0 and exactly one
// absent scores 0.0. Unparseable content in a numeric position is treated as
// absent, never as an error.
package fieldeval

import (
	"github.com/DaneshjouLab/AutoGKB-sub000/annotation"
	"github.com/DaneshjouLab/AutoGKB-sub000/internal/textutil"
	"github.com/DaneshjouLab/AutoGKB-sub000/schema"
)

// Evaluate dispatches to the evaluator selected by kind. Unknown kinds score
// with ExactMatch, the most conservative metric.
func Evaluate(kind schema.Kind, predicted, expected annotation.Value) float64 {
	switch kind {
	case schema.KindExact:
		return ExactMatch(predicted, expected)
	case schema.KindCategory:
		return CategoryEqual(predicted, expected)
	case schema.KindFuzzyEntity:
		return FuzzyEntityMatch(predicted, expected)
	case schema.KindSemanticSet:
		return SemanticSetMatch(predicted, expected)
	case schema.KindNumericTolerance:
		return NumericToleranceMatch(predicted, expected, DefaultTolerance())
	case schema.KindCompoundStatistic:
		return CompoundStatisticMatch(predicted, expected)
	case schema.KindVariantIdentity:
		return VariantIdentityMatch(predicted, expected)
	default:
		return ExactMatch(predicted, expected)
	}
}

// ExactMatch scores 1.0 on trimmed, case-folded equality and 0.0 otherwise.
func ExactMatch(predicted, expected annotation.Value) float64 {
	if predicted.Empty() && expected.Empty() {
		return 1.0
	}
	if predicted.Empty() || expected.Empty() {
		return 0.0
	}
	if textutil.FoldEqual(predicted.Text(), expected.Text()) {
		return 1.0
	}
	return 0.0
}

// CategoryEqual scores controlled-vocabulary fields. It behaves like
// ExactMatch but additionally collapses internal whitespace, since enumerated
// labels are multi-word ("Associated with", "case/control").
func CategoryEqual(predicted, expected annotation.Value) float64 {
	if predicted.Empty() && expected.Empty() {
		return 1.0
	}
	if predicted.Empty() || expected.Empty() {
		return 0.0
	}
	if textutil.NormalizeSpace(predicted.Text()) == textutil.NormalizeSpace(expected.Text()) {
		return 1.0
	}
	return 0.0
}

// FuzzyEntityMatch scores entity names by character-sequence similarity after
// entity normalization, bucketed to partial credit.
func FuzzyEntityMatch(predicted, expected annotation.Value) float64 {
	if predicted.Empty() && expected.Empty() {
		return 1.0
	}
	if predicted.Empty() || expected.Empty() {
		return 0.0
	}
	ratio := textutil.Ratio(
		textutil.NormalizeEntity(predicted.Text()),
		textutil.NormalizeEntity(expected.Text()),
	)
	return bucketRatio(ratio)
}

// bucketRatio maps a raw similarity ratio to the partial-credit buckets.
func bucketRatio(ratio float64) float64 {
	switch {
	case ratio >= 0.9:
		return 1.0
	case ratio >= 0.7:
		return 0.8
	case ratio >= 0.5:
		return 0.5
	default:
		return 0.0
	}
}

// SemanticSetMatch scores free text by Jaccard similarity over stop-word
// filtered word tokens.
func SemanticSetMatch(predicted, expected annotation.Value) float64 {
	if predicted.Empty() && expected.Empty() {
		return 1.0
	}
	if predicted.Empty() || expected.Empty() {
		return 0.0
	}
	return textutil.Jaccard(
		textutil.Tokens(predicted.Text()),
		textutil.Tokens(expected.Text()),
	)
}
