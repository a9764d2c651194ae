// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

// Package matcher pairs predicted annotation instances with ground-truth
// instances. No stable shared identifier exists, so every (prediction, ground
// truth) combination is scored and a greedy assignment resolves the matching:
// best score first, at most one assignment per prediction, many predictions
// may legally map to one ground truth (a model may split one true fact into
// several predicted rows).
package matcher

import (
	"sort"

	"github.com/DaneshjouLab/AutoGKB-sub000/annotation"
	"github.com/DaneshjouLab/AutoGKB-sub000/pairscore"
	"github.com/DaneshjouLab/AutoGKB-sub000/schema"
)

// DefaultThreshold is the minimum aggregate score for a candidate pair to be
// eligible for assignment.
const DefaultThreshold = 0.7

// MatchSet is the resolved matching. Each prediction index appears in at most
// one pair; ground-truth indexes may repeat. Unmatched indexes are reported,
// not scored.
type MatchSet struct {
	Pairs                 []*pairscore.PairScore
	UnmatchedPredictions  []int
	UnmatchedGroundTruths []int
}

// Matcher resolves matchings for one schema. A configured Matcher is
// immutable and safe for concurrent use.
type Matcher struct {
	schema    *schema.Schema
	threshold float64
	weights   map[string]float64
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThreshold overrides the matching threshold.
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.threshold = threshold
	}
}

// WithWeights overrides field weights used for the aggregate pair score.
func WithWeights(weights map[string]float64) Option {
	return func(m *Matcher) {
		m.weights = weights
	}
}

// New returns a matcher for the given schema.
func New(s *schema.Schema, opt ...Option) *Matcher {
	m := &Matcher{
		schema:    s,
		threshold: DefaultThreshold,
	}
	for _, o := range opt {
		o(m)
	}
	if m.weights == nil {
		m.weights = s.Weights(nil)
	}
	return m
}

// Threshold returns the configured matching threshold.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Match scores every (prediction, ground truth) combination, keeps candidates
// at or above the threshold and greedily assigns them in score-descending
// order (ties broken by original prediction order). When either side is empty
// the pair set is empty and every present instance is reported unmatched; the
// caller decides the degenerate overall score.
func (m *Matcher) Match(predictions, groundTruths []*annotation.Instance) *MatchSet {
	set := &MatchSet{}
	if len(predictions) == 0 || len(groundTruths) == 0 {
		set.UnmatchedPredictions = indexRange(len(predictions))
		set.UnmatchedGroundTruths = indexRange(len(groundTruths))
		return set
	}

	candidates := make([]*pairscore.PairScore, 0, len(predictions)*len(groundTruths))
	for predIdx, pred := range predictions {
		for gtIdx, gt := range groundTruths {
			ps := pairscore.Score(pred, gt, m.schema, m.weights)
			ps.PredIndex = predIdx
			ps.GTIndex = gtIdx
			if ps.Aggregate >= m.threshold {
				candidates = append(candidates, ps)
			}
		}
	}
	// Candidates are generated in prediction order, so the stable sort keeps
	// the earliest prediction first among equal scores.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Aggregate > candidates[j].Aggregate
	})

	assigned := make(map[int]struct{}, len(predictions))
	matchedGTs := make(map[int]struct{}, len(groundTruths))
	for _, cand := range candidates {
		if _, ok := assigned[cand.PredIndex]; ok {
			continue
		}
		assigned[cand.PredIndex] = struct{}{}
		matchedGTs[cand.GTIndex] = struct{}{}
		set.Pairs = append(set.Pairs, cand)
	}
	for i := range predictions {
		if _, ok := assigned[i]; !ok {
			set.UnmatchedPredictions = append(set.UnmatchedPredictions, i)
		}
	}
	for i := range groundTruths {
		if _, ok := matchedGTs[i]; !ok {
			set.UnmatchedGroundTruths = append(set.UnmatchedGroundTruths, i)
		}
	}
	return set
}

func indexRange(n int) []int {
	if n == 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
