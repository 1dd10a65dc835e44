//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package evalresult

// Options holds the configuration for result managers.
type Options struct {
	BaseDir string
}

// NewOptions applies options over the defaults.
func NewOptions(opt ...Option) *Options {
	opts := &Options{
		BaseDir: "eval_results",
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures a result manager.
type Option func(*Options)

// WithBaseDir overrides the default base directory used to store results.
func WithBaseDir(dir string) Option {
	return func(o *Options) {
		o.BaseDir = dir
	}
}
