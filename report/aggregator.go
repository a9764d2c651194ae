// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"sort"

	"github.com/google/uuid"

	"github.com/DaneshjouLab/AutoGKB-sub000/pairscore"
	"github.com/DaneshjouLab/AutoGKB-sub000/schema"
)

// difficultSampleCap bounds the most-difficult list.
const difficultSampleCap = 10

// mainIssueCutoff marks a field as a main issue of a difficult pair.
const mainIssueCutoff = 0.3

// difficultScoreCutoff admits a pair into the most-difficult list.
const difficultScoreCutoff = 0.5

// ScoredPair couples a (possibly penalized) pair score with the messages of
// the consistency issues applied to it.
type ScoredPair struct {
	Pair   *pairscore.PairScore
	Issues []string
	// RawFieldScores holds the field scores before consistency penalties.
	// Exact-match statistics and error classification read these; nil means
	// no penalty was applied and Pair.FieldScores are already raw.
	RawFieldScores map[string]float64
}

// rawScore returns the pre-penalty score for the field.
func (sp *ScoredPair) rawScore(field string) float64 {
	if sp.RawFieldScores != nil {
		return sp.RawFieldScores[field]
	}
	return sp.Pair.FieldScores[field]
}

// Aggregator reduces matched pairs to a ScoreReport for one schema. A
// configured Aggregator is immutable and safe for concurrent use.
type Aggregator struct {
	schema  *schema.Schema
	weights map[string]float64
}

// NewAggregator returns an aggregator using the given field weights (nil
// resolves to the schema defaults).
func NewAggregator(s *schema.Schema, weights map[string]float64) *Aggregator {
	if weights == nil {
		weights = s.Weights(nil)
	}
	return &Aggregator{schema: s, weights: weights}
}

// Aggregate builds the report for the matched pairs. Field scores are read
// post-penalty, so issue discounts flow into both the field means and the
// overall weighted score; exact-match counts and error labels read the
// pre-penalty scores. unmatchedPreds and unmatchedGTs are reported in the
// summary but never scored.
func (a *Aggregator) Aggregate(pairs []*ScoredPair, unmatchedPreds, unmatchedGTs int) *ScoreReport {
	rep := &ScoreReport{
		ReportID:        uuid.NewString(),
		TotalSamples:    len(pairs),
		FieldScores:     make(map[string]*FieldScore, a.schema.Len()),
		DetailedResults: make([]*SampleResult, 0, len(pairs)),
		Summary: &RunSummary{
			FieldStatistics:       make(map[string]*FieldStatistics, a.schema.Len()),
			UnmatchedPredictions:  unmatchedPreds,
			UnmatchedGroundTruths: unmatchedGTs,
		},
	}

	fieldNames := a.schema.FieldNames()
	for _, field := range fieldNames {
		rep.FieldScores[field] = &FieldScore{Scores: make([]float64, 0, len(pairs))}
		rep.Summary.FieldStatistics[field] = &FieldStatistics{ErrorTypes: make(map[string]int)}
	}

	var overallSum float64
	var minScore, maxScore float64
	overallScores := make([]float64, len(pairs))
	for i, sp := range pairs {
		detail := &SampleResult{
			SampleID:         i,
			FieldScores:      make(map[string]float64, len(fieldNames)),
			DependencyIssues: sp.Issues,
		}
		if detail.DependencyIssues == nil {
			detail.DependencyIssues = []string{}
		}
		for _, field := range fieldNames {
			score := sp.Pair.FieldScores[field]
			detail.FieldScores[field] = score
			fs := rep.FieldScores[field]
			fs.Scores = append(fs.Scores, score)
			stats := rep.Summary.FieldStatistics[field]
			stats.TotalPredictions++
			// Exactness and error labels judge the extraction itself, so they
			// read the pre-penalty score.
			raw := sp.rawScore(field)
			if raw >= 1.0 {
				stats.ExactMatchCount++
			}
			if label := ClassifyError(sp.Pair.Prediction.Get(field), sp.Pair.GroundTruth.Get(field), raw); label != "" {
				stats.ErrorTypes[label]++
			}
		}
		overall := pairscore.WeightedMean(detail.FieldScores, a.weights)
		overallScores[i] = overall
		overallSum += overall
		if i == 0 || overall < minScore {
			minScore = overall
		}
		if i == 0 || overall > maxScore {
			maxScore = overall
		}
		rep.Summary.ScoreDistribution.Add(overall)
		rep.DetailedResults = append(rep.DetailedResults, detail)
	}

	fieldMeans := make(map[string]float64, len(fieldNames))
	for _, field := range fieldNames {
		fs := rep.FieldScores[field]
		fs.MeanScore = mean(fs.Scores)
		fieldMeans[field] = fs.MeanScore
		stats := rep.Summary.FieldStatistics[field]
		stats.MeanScore = fs.MeanScore
		if stats.TotalPredictions > 0 {
			stats.ExactMatchRate = float64(stats.ExactMatchCount) / float64(stats.TotalPredictions)
		}
	}

	if len(pairs) > 0 {
		rep.OverallScore = pairscore.WeightedMean(fieldMeans, a.weights)
		rep.Summary.MeanOverallScore = overallSum / float64(len(pairs))
		rep.Summary.MeanWeightedScore = rep.OverallScore
		rep.Summary.MinScore = minScore
		rep.Summary.MaxScore = maxScore
	}
	rep.Summary.DifficultSamples = a.difficultSamples(rep.DetailedResults, overallScores)
	return rep
}

// difficultSamples lists the lowest-scoring matched pairs (< 0.5), ascending,
// capped, each annotated with its weakest fields.
func (a *Aggregator) difficultSamples(details []*SampleResult, overallScores []float64) []*DifficultSample {
	var out []*DifficultSample
	for i, detail := range details {
		if overallScores[i] >= difficultScoreCutoff {
			continue
		}
		issues := make([]string, 0, len(detail.FieldScores))
		for _, field := range a.schema.FieldNames() {
			if detail.FieldScores[field] < mainIssueCutoff {
				issues = append(issues, field)
			}
		}
		out = append(out, &DifficultSample{
			SampleID:     detail.SampleID,
			OverallScore: overallScores[i],
			MainIssues:   issues,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OverallScore < out[j].OverallScore
	})
	if len(out) > difficultSampleCap {
		out = out[:difficultSampleCap]
	}
	return out
}

func mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
