//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Command eval scores a JSONL query/response dataset on relevance and
// coherence using a hosted judge model and writes a JSON report.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/joho/godotenv"

	"trpc.group/trpc-go/trpc-eval-go/dataset"
	"trpc.group/trpc-go/trpc-eval-go/evalresult"
	"trpc.group/trpc-go/trpc-eval-go/evaluation"
	"trpc.group/trpc-go/trpc-eval-go/evaluator/coherence"
	"trpc.group/trpc-go/trpc-eval-go/evaluator/relevance"
	"trpc.group/trpc-go/trpc-eval-go/metric"
)

const (
	apiKeyEnv      = "OPENAI_API_KEY"
	judgeModelName = "gpt-4o-mini"
	openAIBaseURL  = "https://api.openai.com/v1"
	datasetPath    = "data/evaluation_dataset.jsonl"
	outputPath     = "evaluation_results.json"
)

// evaluateFunc matches evaluation.Evaluate, injectable for tests.
type evaluateFunc func(ctx context.Context, dataPath string, opt ...evaluation.Option) (*evalresult.EvalResult, error)

func main() {
	// Best effort, matching the dotenv behavior of the original harness.
	_ = godotenv.Load()
	run(context.Background(), os.Stdout, os.Getenv, evaluation.Evaluate)
}

// newJudgeModelConfig builds the single judge configuration shared by both evaluators.
func newJudgeModelConfig(apiKey string) *metric.JudgeModelConfig {
	return &metric.JudgeModelConfig{
		Type:      metric.JudgeModelTypeOpenAI,
		ModelName: judgeModelName,
		APIKey:    apiKey,
		BaseURL:   openAIBaseURL,
	}
}

func run(ctx context.Context, out io.Writer, getenv func(string) string, evaluate evaluateFunc) {
	apiKey := getenv(apiKeyEnv)
	if apiKey == "" {
		fmt.Fprintln(out, "Error: OPENAI_API_KEY not found in environment variables.")
		fmt.Fprintln(out, "Please set OPENAI_API_KEY in your .env file or environment.")
		return
	}

	cfg := newJudgeModelConfig(apiKey)
	relevanceEval, err := relevance.New(cfg)
	if err != nil {
		fmt.Fprintf(out, "Evaluation failed: %v\n", err)
		return
	}
	coherenceEval, err := coherence.New(cfg)
	if err != nil {
		fmt.Fprintf(out, "Evaluation failed: %v\n", err)
		return
	}

	columnMapping := dataset.ColumnMapping{
		"query":    dataset.DataReference("query"),
		"response": dataset.DataReference("response"),
	}

	fmt.Fprintln(out, "Starting evaluation...")

	result, err := evaluate(ctx, datasetPath,
		evaluation.WithEvaluator(relevance.MetricName, relevanceEval),
		evaluation.WithEvaluator(coherence.MetricName, coherenceEval),
		evaluation.WithColumnMapping(relevance.MetricName, columnMapping),
		evaluation.WithColumnMapping(coherence.MetricName, columnMapping),
		evaluation.WithOutputPath(outputPath),
	)
	if err != nil {
		fmt.Fprintf(out, "Evaluation failed: %v\n", err)
		return
	}

	fmt.Fprintln(out, "Evaluation complete!")
	fmt.Fprintln(out, "Aggregate Results:")
	printMetrics(out, result.Metrics)
	fmt.Fprintf(out, "Detailed results saved to %s\n", outputPath)
}

// printMetrics prints the flat metrics map in deterministic order.
func printMetrics(out io.Writer, metrics map[string]float64) {
	keys := make([]string, 0, len(metrics))
	for key := range metrics {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(out, "  %s: %.2f\n", key, metrics[key])
	}
}
