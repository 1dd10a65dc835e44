//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package evalresult provides evaluation result types and persistence.
package evalresult

import (
	"context"

	"trpc.group/trpc-go/trpc-eval-go/epochtime"
	"trpc.group/trpc-go/trpc-eval-go/status"
)

// EvalResult represents the evaluation result for an entire dataset.
type EvalResult struct {
	// EvalResultID uniquely identifies this result.
	EvalResultID string `json:"evalResultId,omitempty"`
	// DatasetPath is the path of the evaluated dataset.
	DatasetPath string `json:"datasetPath,omitempty"`
	// Metrics contains the flat aggregate metrics for printing and reporting.
	Metrics map[string]float64 `json:"metrics,omitempty"`
	// OverallStatus summarizes the evaluation status across all rows and metrics.
	OverallStatus status.EvalStatus `json:"overallStatus,omitempty"`
	// StatusCounts counts the final status of each row.
	StatusCounts *EvalStatusCounts `json:"statusCounts,omitempty"`
	// MetricSummaries contains aggregated outcomes for each metric.
	MetricSummaries []*EvalMetricSummary `json:"metricSummaries,omitempty"`
	// RowResults contains results for each dataset row.
	RowResults []*RowResult `json:"rowResults,omitempty"`
	// CreationTimestamp when this result was created.
	CreationTimestamp *epochtime.EpochTime `json:"creationTimestamp,omitempty"`
}

// RowResult represents the result of a single dataset row.
type RowResult struct {
	// RowIndex is the zero-based index of the row in the dataset.
	RowIndex int `json:"rowIndex"`
	// Status is the final eval status for this row.
	Status status.EvalStatus `json:"status,omitempty"`
	// ErrorMessage contains the error message when evaluation of this row failed.
	ErrorMessage string `json:"errorMessage,omitempty"`
	// MetricResults contains results for each metric for this row.
	MetricResults []*EvalMetricResult `json:"metricResults,omitempty"`
}

// EvalMetricResult represents the result of a single metric evaluation on one row.
type EvalMetricResult struct {
	// MetricName identifies the metric.
	MetricName string `json:"metricName,omitempty"`
	// Score obtained for this metric.
	Score float64 `json:"score,omitempty"`
	// EvalStatus of this metric evaluation.
	EvalStatus status.EvalStatus `json:"evalStatus,omitempty"`
	// Threshold that was used.
	Threshold float64 `json:"threshold,omitempty"`
	// Reason is the judge's reasoning for the score.
	Reason string `json:"reason,omitempty"`
}

// Manager defines the interface for managing evaluation results.
type Manager interface {
	// Save stores an evaluation result and returns its ID.
	Save(ctx context.Context, result *EvalResult) (string, error)
	// Get retrieves an evaluation result by ID.
	Get(ctx context.Context, evalResultID string) (*EvalResult, error)
	// List returns the IDs of all stored evaluation results.
	List(ctx context.Context) ([]string, error)
}
