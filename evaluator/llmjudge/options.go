//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package llmjudge

import "trpc.group/trpc-go/trpc-eval-go/model"

// options holds the configuration for the judge.
type options struct {
	judgeModel model.Model
}

func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures the judge.
type Option func(*options)

// WithJudgeModel overrides the judge model instance built from configuration.
func WithJudgeModel(m model.Model) Option {
	return func(o *options) {
		o.judgeModel = m
	}
}
