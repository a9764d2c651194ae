// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

// Package pairscore scores one (prediction, ground truth) pair against a
// schema. Scoring is a pure function of its inputs.
package pairscore

import (
	"sort"

	"github.com/DaneshjouLab/AutoGKB-sub000/annotation"
	"github.com/DaneshjouLab/AutoGKB-sub000/fieldeval"
	"github.com/DaneshjouLab/AutoGKB-sub000/schema"
)

// PairScore holds the per-field and aggregate similarity of one candidate
// pairing. FieldScores always contains exactly the schema's field names;
// missing values score, they are never omitted.
type PairScore struct {
	Prediction  *annotation.Instance
	GroundTruth *annotation.Instance
	// PredIndex and GTIndex locate the pair in the caller's input slices.
	PredIndex int
	GTIndex   int
	// FieldScores maps field name to a score in [0, 1].
	FieldScores map[string]float64
	// Aggregate is the weighted mean of FieldScores.
	Aggregate float64
}

// Score evaluates every schema field of the pair and aggregates with the
// given weights (nil weights resolve to the schema defaults).
func Score(pred, gt *annotation.Instance, s *schema.Schema, weights map[string]float64) *PairScore {
	if weights == nil {
		weights = s.Weights(nil)
	}
	fieldScores := make(map[string]float64, s.Len())
	for _, f := range s.Fields() {
		fieldScores[f.Name] = fieldeval.Evaluate(f.Kind, pred.Get(f.Name), gt.Get(f.Name))
	}
	return &PairScore{
		Prediction:  pred,
		GroundTruth: gt,
		FieldScores: fieldScores,
		Aggregate:   WeightedMean(fieldScores, weights),
	}
}

// WeightedMean computes the weighted mean of the field scores. Fields absent
// from weights get weight 1; a zero total weight yields 0.0 rather than a
// division by zero. With uniform weights the result equals the unweighted
// mean. Accumulation runs in sorted field order so identical inputs always
// sum to the identical float.
func WeightedMean(scores map[string]float64, weights map[string]float64) float64 {
	fields := make([]string, 0, len(scores))
	for field := range scores {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	var weightedSum, totalWeight float64
	for _, field := range fields {
		w := 1.0
		if weights != nil {
			if ww, ok := weights[field]; ok {
				w = ww
			}
		}
		weightedSum += scores[field] * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0.0
	}
	return weightedSum / totalWeight
}

// Rescore recomputes the aggregate from the (possibly penalized) field scores.
func (p *PairScore) Rescore(weights map[string]float64) {
	p.Aggregate = WeightedMean(p.FieldScores, weights)
}
