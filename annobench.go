// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

// Package annobench scores predicted annotations against ground truth.
//
// An Engine is bound to one annotation schema. Evaluate pairs the
// prediction set with the ground-truth set, scores every matched pair
// field by field, applies cross-field consistency penalties, and
// reduces the result to a ScoreReport. EvaluatePair scores a single
// known correspondence without running the matcher.
package annobench

import (
	"context"
	"errors"
	"fmt"

	"github.com/DaneshjouLab/AutoGKB-sub000/annotation"
	"github.com/DaneshjouLab/AutoGKB-sub000/consistency"
	"github.com/DaneshjouLab/AutoGKB-sub000/log"
	"github.com/DaneshjouLab/AutoGKB-sub000/matcher"
	"github.com/DaneshjouLab/AutoGKB-sub000/pairscore"
	"github.com/DaneshjouLab/AutoGKB-sub000/report"
	"github.com/DaneshjouLab/AutoGKB-sub000/schema"
)

// Engine evaluates predicted annotation instances against ground truth
// under a fixed schema. An Engine is stateless across calls and safe
// for concurrent use.
type Engine struct {
	schema    *schema.Schema
	threshold float64
	weights   map[string]float64
	related   []*annotation.Instance
	validator *consistency.Validator
	logger    log.Logger
}

// New creates an evaluation engine for the given schema. The study
// parameter schema gets a consistency validator by default; other
// schemas run without one unless WithValidator installs it.
func New(s *schema.Schema, opt ...Option) (*Engine, error) {
	if s == nil {
		return nil, errors.New("annobench: schema is required")
	}
	eng := &Engine{
		schema:    s,
		threshold: matcher.DefaultThreshold,
		logger:    log.Default,
	}
	if s.Name() == schema.StudyParameters().Name() {
		eng.validator = consistency.New()
	}
	for _, o := range opt {
		o(eng)
	}
	if eng.threshold < 0 || eng.threshold > 1 {
		return nil, fmt.Errorf("annobench: threshold %v out of range [0, 1]", eng.threshold)
	}
	// Resolve partial overrides against the schema once so every
	// downstream consumer sees the same complete weight map.
	eng.weights = s.Weights(eng.weights)
	return eng, nil
}

// Schema returns the schema the engine evaluates against.
func (e *Engine) Schema() *schema.Schema {
	return e.schema
}

// WithRelated returns a copy of the engine whose referential-integrity
// checks consult the given related set. The receiver is unchanged.
func (e *Engine) WithRelated(related ...*annotation.Instance) *Engine {
	clone := *e
	clone.related = related
	return &clone
}

// Evaluate matches the prediction set against the ground-truth set and
// scores every assigned pair. Instances left unassigned count toward
// the summary but contribute no field scores.
//
// Two empty sets score a perfect 1.0 with zero samples. A one-sided
// empty set scores 0.0 with zero samples.
func (e *Engine) Evaluate(ctx context.Context, groundTruths, predictions []*annotation.Instance) (*report.ScoreReport, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	agg := report.NewAggregator(e.schema, e.weights)
	if len(groundTruths) == 0 && len(predictions) == 0 {
		rep := agg.Aggregate(nil, 0, 0)
		rep.OverallScore = 1.0
		if rep.Summary != nil {
			rep.Summary.MeanOverallScore = 1.0
			rep.Summary.MeanWeightedScore = 1.0
		}
		return rep, nil
	}
	if len(groundTruths) == 0 || len(predictions) == 0 {
		return agg.Aggregate(nil, len(predictions), len(groundTruths)), nil
	}

	m := matcher.New(e.schema, matcher.WithThreshold(e.threshold), matcher.WithWeights(e.weights))
	set := m.Match(predictions, groundTruths)
	e.logger.Debugf("matched %d of %d predictions against %d ground truths (%s)",
		len(set.Pairs), len(predictions), len(groundTruths), e.schema.Name())

	scored := make([]*report.ScoredPair, 0, len(set.Pairs))
	for _, pair := range set.Pairs {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}
		scored = append(scored, e.finishPair(pair))
	}
	return agg.Aggregate(scored, len(set.UnmatchedPredictions), len(set.UnmatchedGroundTruths)), nil
}

// EvaluatePair scores one prediction against one ground truth directly.
// The matching threshold does not apply: the pair is scored even when
// its aggregate falls below it.
func (e *Engine) EvaluatePair(ctx context.Context, groundTruth, prediction *annotation.Instance) (*report.ScoreReport, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if groundTruth == nil || prediction == nil {
		return nil, errors.New("annobench: ground truth and prediction are required")
	}
	pair := pairscore.Score(prediction, groundTruth, e.schema, e.weights)
	agg := report.NewAggregator(e.schema, e.weights)
	return agg.Aggregate([]*report.ScoredPair{e.finishPair(pair)}, 0, 0), nil
}

// finishPair applies consistency penalties and reweights the aggregate.
func (e *Engine) finishPair(pair *pairscore.PairScore) *report.ScoredPair {
	var messages []string
	var raw map[string]float64
	if e.validator != nil {
		issues := e.validator.Validate(pair.Prediction, e.related)
		if len(issues) > 0 {
			// Keep the pre-penalty scores so exact-match statistics and error
			// classification judge the extraction itself, not the discount.
			raw = make(map[string]float64, len(pair.FieldScores))
			for field, score := range pair.FieldScores {
				raw[field] = score
			}
			e.validator.Penalize(pair, issues)
			messages = consistency.Messages(issues)
			e.logger.Debugf("applied %.0f%% penalty for %d consistency issue(s) on prediction %d",
				e.validator.Penalty(len(issues))*100, len(issues), pair.PredIndex)
		}
	}
	pair.Rescore(e.weights)
	return &report.ScoredPair{Pair: pair, Issues: messages, RawFieldScores: raw}
}

func checkContext(ctx context.Context) error {
	if ctx == nil {
		return errors.New("annobench: nil context")
	}
	return ctx.Err()
}
