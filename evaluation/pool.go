//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package evaluation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/trpc-eval-go/dataset"
	"trpc.group/trpc-go/trpc-eval-go/evalresult"
)

type rowEvalParam struct {
	idx     int
	ctx     context.Context
	record  dataset.Record
	run     *run
	results []*evalresult.RowResult
	wg      *sync.WaitGroup
}

func (p *rowEvalParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.record = nil
	p.run = nil
	p.results = nil
	p.wg = nil
}

var rowEvalParamPool = &sync.Pool{
	New: func() any { return new(rowEvalParam) },
}

func createRowEvalPool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*rowEvalParam)
		if !ok {
			panic("row eval pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			rowEvalParamPool.Put(param)
		}()
		param.results[param.idx] = param.run.evaluateRow(param.ctx, param.idx, param.record)
	})
	if err != nil {
		return nil, fmt.Errorf("create row eval pool: %w", err)
	}
	return pool, nil
}
