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
	"trpc.group/trpc-go/trpc-eval-go/dataset"
	"trpc.group/trpc-go/trpc-eval-go/evalresult"
	evalresultinmemory "trpc.group/trpc-go/trpc-eval-go/evalresult/inmemory"
	"trpc.group/trpc-go/trpc-eval-go/evaluator"
	"trpc.group/trpc-go/trpc-eval-go/evaluator/registry"
)

type options struct {
	evaluators    map[string]evaluator.Evaluator
	mappings      map[string]dataset.ColumnMapping
	thresholds    map[string]float64
	registry      registry.Registry
	resultManager evalresult.Manager
	outputPath    string
	parallelism   int
}

func newOptions(opt ...Option) *options {
	opts := &options{
		evaluators:    make(map[string]evaluator.Evaluator),
		mappings:      make(map[string]dataset.ColumnMapping),
		thresholds:    make(map[string]float64),
		registry:      registry.New(),
		resultManager: evalresultinmemory.NewManager(),
		parallelism:   1,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures an evaluation run.
type Option func(*options)

// WithEvaluator registers an evaluator under the given metric name.
// An empty name falls back to the evaluator's own name.
func WithEvaluator(name string, e evaluator.Evaluator) Option {
	return func(o *options) {
		if name == "" && e != nil {
			name = e.Name()
		}
		o.evaluators[name] = e
	}
}

// WithColumnMapping sets the column mapping for a metric.
// Metrics without an explicit mapping default to ${data.<input>} per input column.
func WithColumnMapping(name string, mapping dataset.ColumnMapping) Option {
	return func(o *options) {
		o.mappings[name] = mapping
	}
}

// WithThreshold sets the pass threshold for a metric.
func WithThreshold(name string, threshold float64) Option {
	return func(o *options) {
		o.thresholds[name] = threshold
	}
}

// WithRegistry replaces the evaluator registry.
func WithRegistry(r registry.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithResultManager replaces the result manager used to persist results.
func WithResultManager(m evalresult.Manager) Option {
	return func(o *options) {
		o.resultManager = m
	}
}

// WithOutputPath sets the file path the detailed JSON report is written to.
func WithOutputPath(path string) Option {
	return func(o *options) {
		o.outputPath = path
	}
}

// WithParallelism sets how many rows are evaluated concurrently.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}
