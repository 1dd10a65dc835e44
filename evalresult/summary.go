//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package evalresult

import "trpc.group/trpc-go/trpc-eval-go/status"

// EvalMetricSummary summarizes metric results across all evaluated rows.
type EvalMetricSummary struct {
	// MetricName identifies the metric.
	MetricName string `json:"metricName,omitempty"`
	// MeanScore is the averaged score across rows that were evaluated.
	MeanScore float64 `json:"meanScore,omitempty"`
	// PassRate is the fraction of evaluated rows that passed the threshold.
	PassRate float64 `json:"passRate,omitempty"`
	// Threshold is the threshold that was used.
	Threshold float64 `json:"threshold,omitempty"`
	// EvalStatus is the aggregated status derived from the mean score and threshold.
	EvalStatus status.EvalStatus `json:"evalStatus,omitempty"`
	// StatusCounts counts metric statuses across rows.
	StatusCounts *EvalStatusCounts `json:"statusCounts,omitempty"`
}

// EvalStatusCounts records a simple histogram of evaluation statuses.
type EvalStatusCounts struct {
	// Passed is the count of passed statuses.
	Passed int `json:"passed,omitempty"`
	// Failed is the count of failed statuses.
	Failed int `json:"failed,omitempty"`
	// NotEvaluated is the count of not evaluated statuses.
	NotEvaluated int `json:"notEvaluated,omitempty"`
}

// Add counts one status into the histogram.
func (c *EvalStatusCounts) Add(s status.EvalStatus) {
	switch s {
	case status.EvalStatusPassed:
		c.Passed++
	case status.EvalStatusFailed:
		c.Failed++
	default:
		c.NotEvaluated++
	}
}
