//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package evaluation orchestrates dataset evaluation runs and aggregates their results.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"

	"trpc.group/trpc-go/trpc-eval-go/dataset"
	"trpc.group/trpc-go/trpc-eval-go/epochtime"
	"trpc.group/trpc-go/trpc-eval-go/evalresult"
	evalresultlocal "trpc.group/trpc-go/trpc-eval-go/evalresult/local"
	"trpc.group/trpc-go/trpc-eval-go/evaluation/internal/summary"
	"trpc.group/trpc-go/trpc-eval-go/evaluator/registry"
	"trpc.group/trpc-go/trpc-eval-go/log"
	"trpc.group/trpc-go/trpc-eval-go/metric"
	"trpc.group/trpc-go/trpc-eval-go/status"
)

// run holds the resolved configuration for one evaluation run.
type run struct {
	registry   registry.Registry
	names      []string
	mappings   map[string]dataset.ColumnMapping
	thresholds map[string]float64
}

// Evaluate scores every record of the JSONL dataset at dataPath on the
// configured metrics, aggregates the outcomes, persists the result and writes
// the detailed JSON report to the configured output path.
func Evaluate(ctx context.Context, dataPath string, opt ...Option) (*evalresult.EvalResult, error) {
	if dataPath == "" {
		return nil, errors.New("data path is empty")
	}
	opts := newOptions(opt...)
	r, err := newRun(opts)
	if err != nil {
		return nil, err
	}
	records, err := dataset.Load(dataPath)
	if err != nil {
		return nil, err
	}
	rows, err := r.evaluateRows(ctx, records, opts.parallelism)
	if err != nil {
		return nil, err
	}
	result, err := buildResult(dataPath, rows, r.thresholds)
	if err != nil {
		return nil, err
	}
	if opts.resultManager != nil {
		if _, err := opts.resultManager.Save(ctx, result); err != nil {
			return nil, fmt.Errorf("save eval result: %w", err)
		}
	}
	if opts.outputPath != "" {
		if err := evalresultlocal.WriteFile(opts.outputPath, result); err != nil {
			return nil, fmt.Errorf("write report %s: %w", opts.outputPath, err)
		}
	}
	return result, nil
}

// newRun validates options and resolves per-metric mappings and thresholds.
func newRun(opts *options) (*run, error) {
	if opts.registry == nil {
		return nil, errors.New("registry is nil")
	}
	for name, e := range opts.evaluators {
		if err := opts.registry.Register(name, e); err != nil {
			return nil, fmt.Errorf("register evaluator %q: %w", name, err)
		}
	}
	names := opts.registry.List()
	if len(names) == 0 {
		return nil, errors.New("no evaluators configured")
	}
	r := &run{
		registry:   opts.registry,
		names:      names,
		mappings:   make(map[string]dataset.ColumnMapping, len(names)),
		thresholds: make(map[string]float64, len(names)),
	}
	for _, name := range names {
		e, err := opts.registry.Get(name)
		if err != nil {
			return nil, err
		}
		mapping, ok := opts.mappings[name]
		if !ok {
			mapping = dataset.DefaultColumnMapping(e.InputColumns())
		}
		r.mappings[name] = mapping
		threshold, ok := opts.thresholds[name]
		if !ok {
			threshold = metric.DefaultThreshold
		}
		r.thresholds[name] = threshold
	}
	return r, nil
}

// evaluateRows scores all records, sequentially or over a worker pool.
func (r *run) evaluateRows(ctx context.Context, records []dataset.Record,
	parallelism int) ([]*evalresult.RowResult, error) {
	results := make([]*evalresult.RowResult, len(records))
	if parallelism <= 1 {
		for idx, record := range records {
			results[idx] = r.evaluateRow(ctx, idx, record)
		}
		return results, nil
	}
	pool, err := createRowEvalPool(parallelism)
	if err != nil {
		return nil, err
	}
	defer pool.Release()
	var wg sync.WaitGroup
	for idx, record := range records {
		param := rowEvalParamPool.Get().(*rowEvalParam)
		param.idx = idx
		param.ctx = ctx
		param.record = record
		param.run = r
		param.results = results
		param.wg = &wg
		wg.Add(1)
		if err := pool.Invoke(param); err != nil {
			wg.Done()
			param.reset()
			rowEvalParamPool.Put(param)
			return nil, fmt.Errorf("invoke row eval pool: %w", err)
		}
	}
	wg.Wait()
	return results, nil
}

// evaluateRow scores one record on every metric. Judge failures mark the
// affected metrics not-evaluated and are recorded on the row instead of
// aborting the run.
func (r *run) evaluateRow(ctx context.Context, idx int, record dataset.Record) *evalresult.RowResult {
	var errs *multierror.Error
	metricResults := make([]*evalresult.EvalMetricResult, 0, len(r.names))
	statuses := make([]status.EvalStatus, 0, len(r.names))
	for _, name := range r.names {
		metricResult := r.evaluateMetric(ctx, name, record)
		if metricResult.err != nil {
			errs = multierror.Append(errs, fmt.Errorf("metric %s: %w", name, metricResult.err))
			log.Warnf("row %d metric %s: %v", idx, name, metricResult.err)
		}
		metricResults = append(metricResults, metricResult.result)
		statuses = append(statuses, metricResult.result.EvalStatus)
	}
	rowStatus, err := summary.Summarize(statuses)
	if err != nil {
		rowStatus = status.EvalStatusFailed
	}
	row := &evalresult.RowResult{
		RowIndex:      idx,
		Status:        rowStatus,
		MetricResults: metricResults,
	}
	if errs != nil {
		row.ErrorMessage = errs.Error()
	}
	return row
}

// metricOutcome pairs a metric result with the error that produced it, if any.
type metricOutcome struct {
	result *evalresult.EvalMetricResult
	err    error
}

func (r *run) evaluateMetric(ctx context.Context, name string, record dataset.Record) metricOutcome {
	threshold := r.thresholds[name]
	notEvaluated := &evalresult.EvalMetricResult{
		MetricName: name,
		EvalStatus: status.EvalStatusNotEvaluated,
		Threshold:  threshold,
	}
	e, err := r.registry.Get(name)
	if err != nil {
		return metricOutcome{result: notEvaluated, err: err}
	}
	inputs, err := r.mappings[name].Resolve(record)
	if err != nil {
		return metricOutcome{result: notEvaluated, err: err}
	}
	score, err := e.EvaluateRow(ctx, inputs)
	if err != nil {
		return metricOutcome{result: notEvaluated, err: err}
	}
	evalStatus := status.EvalStatusPassed
	if score.Score < threshold {
		evalStatus = status.EvalStatusFailed
	}
	return metricOutcome{result: &evalresult.EvalMetricResult{
		MetricName: name,
		Score:      score.Score,
		EvalStatus: evalStatus,
		Threshold:  threshold,
		Reason:     score.Reason,
	}}
}

// buildResult assembles the eval result from per-row outcomes.
func buildResult(dataPath string, rows []*evalresult.RowResult,
	thresholds map[string]float64) (*evalresult.EvalResult, error) {
	metricSummaries, metrics := summary.BuildMetricSummaries(rows, thresholds)
	statuses := make([]status.EvalStatus, 0, len(rows))
	counts := &evalresult.EvalStatusCounts{}
	for _, row := range rows {
		statuses = append(statuses, row.Status)
		counts.Add(row.Status)
	}
	overall, err := summary.Summarize(statuses)
	if err != nil {
		return nil, fmt.Errorf("summarize row statuses: %w", err)
	}
	return &evalresult.EvalResult{
		DatasetPath:       dataPath,
		Metrics:           metrics,
		OverallStatus:     overall,
		StatusCounts:      counts,
		MetricSummaries:   metricSummaries,
		RowResults:        rows,
		CreationTimestamp: epochtime.Now(),
	}, nil
}
