//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package openai

// options holds configuration for the OpenAI-compatible model.
type options struct {
	apiKey       string
	baseURL      string
	extraHeaders map[string]string
}

func newOptions(opt ...Option) *options {
	opts := &options{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures the OpenAI-compatible model.
type Option func(*options)

// WithAPIKey sets the API key.
func WithAPIKey(apiKey string) Option {
	return func(o *options) {
		o.apiKey = apiKey
	}
}

// WithBaseURL sets a custom API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithExtraHeaders sets additional HTTP headers sent with every request.
func WithExtraHeaders(headers map[string]string) Option {
	return func(o *options) {
		o.extraHeaders = headers
	}
}
