//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package evaluator provides evaluator contracts for evaluation.
package evaluator

import "context"

// Evaluator scores a single dataset record on one metric.
type Evaluator interface {
	// Name returns the evaluator name.
	Name() string
	// Description describes the evaluator.
	Description() string
	// InputColumns returns the input names the evaluator requires.
	InputColumns() []string
	// EvaluateRow scores one record given its resolved inputs.
	EvaluateRow(ctx context.Context, inputs map[string]string) (*ScoreResult, error)
}

// ScoreResult is the outcome of judging a single row.
type ScoreResult struct {
	// Score is the judged score.
	Score float64 `json:"score"`
	// Reason is the judge's reasoning for the score.
	Reason string `json:"reason,omitempty"`
}
