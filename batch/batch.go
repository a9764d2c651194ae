// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

// Package batch evaluates many annotation cases with one engine,
// optionally in parallel. A failing case never aborts the run; its
// result carries the error message and the remaining cases still run.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/panjf2000/ants/v2"

	annobench "github.com/DaneshjouLab/AutoGKB-sub000"
	"github.com/DaneshjouLab/AutoGKB-sub000/annotation"
	"github.com/DaneshjouLab/AutoGKB-sub000/log"
	"github.com/DaneshjouLab/AutoGKB-sub000/report"
)

// Case is one evaluation unit: the ground truths and predictions of a
// single article or record, plus the related annotations its
// referential-integrity checks may consult.
type Case struct {
	ID           string
	GroundTruths []*annotation.Instance
	Predictions  []*annotation.Instance
	Related      []*annotation.Instance
}

// CaseResult is the outcome of one case. Exactly one of Report and
// ErrorMessage is meaningful.
type CaseResult struct {
	CaseID       string
	Report       *report.ScoreReport
	ErrorMessage string
}

// Runner evaluates batches of cases against a shared engine.
type Runner struct {
	engine      *annobench.Engine
	parallelism int
	pool        *ants.PoolWithFunc
	logger      log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithParallelism sets the number of cases evaluated concurrently.
// Values below 2 keep the runner sequential.
func WithParallelism(n int) Option {
	return func(r *Runner) {
		r.parallelism = n
	}
}

// WithLogger overrides the runner's logger.
func WithLogger(logger log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner returns a runner backed by the given engine.
func NewRunner(engine *annobench.Engine, opt ...Option) (*Runner, error) {
	if engine == nil {
		return nil, errors.New("batch: engine is nil")
	}
	r := &Runner{
		engine:      engine,
		parallelism: 1,
		logger:      log.Default,
	}
	for _, o := range opt {
		o(r)
	}
	if r.parallelism > 1 {
		pool, err := createCasePool(r.parallelism)
		if err != nil {
			return nil, fmt.Errorf("batch: %w", err)
		}
		r.pool = pool
	}
	return r, nil
}

// Close releases the runner's worker pool.
func (r *Runner) Close() error {
	if r.pool != nil {
		r.pool.Release()
	}
	return nil
}

// Run evaluates every case and returns the results in input order. Case
// failures are recorded on their CaseResult and accumulated into the
// returned error; they never stop the remaining cases.
func (r *Runner) Run(ctx context.Context, cases []*Case) ([]*CaseResult, error) {
	if ctx == nil {
		return nil, errors.New("batch: nil context")
	}
	results := make([]*CaseResult, len(cases))
	if r.pool != nil {
		var wg sync.WaitGroup
		for i, c := range cases {
			wg.Add(1)
			param := caseParamPool.Get().(*caseParam)
			param.idx = i
			param.ctx = ctx
			param.c = c
			param.runner = r
			param.results = results
			param.wg = &wg
			if err := r.pool.Invoke(param); err != nil {
				wg.Done()
				param.reset()
				caseParamPool.Put(param)
				results[i] = &CaseResult{ErrorMessage: fmt.Sprintf("invoke case pool: %v", err)}
				if c != nil {
					results[i].CaseID = c.ID
				}
			}
		}
		wg.Wait()
	} else {
		for i, c := range cases {
			results[i] = r.runCase(ctx, c)
		}
	}

	var merr *multierror.Error
	for _, res := range results {
		if res.ErrorMessage != "" {
			merr = multierror.Append(merr, fmt.Errorf("case %q: %s", res.CaseID, res.ErrorMessage))
		}
	}
	return results, merr.ErrorOrNil()
}

func (r *Runner) runCase(ctx context.Context, c *Case) *CaseResult {
	if c == nil {
		return &CaseResult{ErrorMessage: "case is nil"}
	}
	res := &CaseResult{CaseID: c.ID}
	eng := r.engine
	if len(c.Related) > 0 {
		eng = eng.WithRelated(c.Related...)
	}
	rep, err := eng.Evaluate(ctx, c.GroundTruths, c.Predictions)
	if err != nil {
		r.logger.Errorf("evaluate case %q: %v", c.ID, err)
		res.ErrorMessage = err.Error()
		return res
	}
	r.logger.Debugf("evaluated case %q: overall %.4f over %d samples",
		c.ID, rep.OverallScore, rep.TotalSamples)
	res.Report = rep
	return res
}
