// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

type caseParam struct {
	idx     int
	ctx     context.Context
	c       *Case
	runner  *Runner
	results []*CaseResult
	wg      *sync.WaitGroup
}

func (p *caseParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.c = nil
	p.runner = nil
	p.results = nil
	p.wg = nil
}

var caseParamPool = &sync.Pool{
	New: func() any { return new(caseParam) },
}

func createCasePool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*caseParam)
		if !ok {
			panic("batch case pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			caseParamPool.Put(param)
		}()
		param.results[param.idx] = param.runner.runCase(param.ctx, param.c)
	})
	if err != nil {
		return nil, fmt.Errorf("create batch case pool: %w", err)
	}
	return pool, nil
}
