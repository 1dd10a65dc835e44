//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package llmjudge provides the shared orchestration for LLM-backed evaluators.
package llmjudge

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"trpc.group/trpc-go/trpc-eval-go/evaluator"
	"trpc.group/trpc-go/trpc-eval-go/metric"
	"trpc.group/trpc-go/trpc-eval-go/model"
	openaimodel "trpc.group/trpc-go/trpc-eval-go/model/openai"
)

// Judge is an LLM-backed evaluator driven by a prompt template and the
// fixed-format judge output contract.
type Judge struct {
	name         string
	description  string
	inputColumns []string
	tmpl         *template.Template
	judgeModel   model.Model
	numSamples   int
	generation   model.GenerationConfig
}

// New constructs a judge for the given metric prompt and judge model configuration.
func New(name, description string, inputColumns []string, promptTemplate *template.Template,
	cfg *metric.JudgeModelConfig, opt ...Option) (*Judge, error) {
	if name == "" {
		return nil, fmt.Errorf("judge name is empty")
	}
	if promptTemplate == nil {
		return nil, fmt.Errorf("prompt template is nil")
	}
	if len(inputColumns) == 0 {
		return nil, fmt.Errorf("input columns are empty")
	}
	opts := newOptions(opt...)
	j := &Judge{
		name:         name,
		description:  description,
		inputColumns: inputColumns,
		tmpl:         promptTemplate,
		judgeModel:   opts.judgeModel,
		numSamples:   metric.DefaultNumSamples,
		generation:   defaultGeneration(),
	}
	if cfg != nil {
		if cfg.NumSamples != nil {
			j.numSamples = *cfg.NumSamples
		}
		if cfg.Generation != nil {
			j.generation = *cfg.Generation
		}
	}
	if j.numSamples <= 0 {
		return nil, fmt.Errorf("num samples must be greater than 0")
	}
	if j.judgeModel == nil {
		judgeModel, err := buildJudgeModel(cfg)
		if err != nil {
			return nil, err
		}
		j.judgeModel = judgeModel
	}
	return j, nil
}

// Name returns the evaluator name.
func (j *Judge) Name() string {
	return j.name
}

// Description describes the evaluator.
func (j *Judge) Description() string {
	return j.description
}

// InputColumns returns the input names the judge prompt requires.
func (j *Judge) InputColumns() []string {
	return j.inputColumns
}

// EvaluateRow renders the judge prompt, samples the judge model and averages
// the sampled scores.
func (j *Judge) EvaluateRow(ctx context.Context, inputs map[string]string) (*evaluator.ScoreResult, error) {
	for _, column := range j.inputColumns {
		if _, ok := inputs[column]; !ok {
			return nil, fmt.Errorf("missing input %q", column)
		}
	}
	var buf bytes.Buffer
	if err := j.tmpl.Execute(&buf, inputs); err != nil {
		return nil, fmt.Errorf("execute judge prompt template: %w", err)
	}
	req := &model.Request{
		Messages:         []model.Message{model.NewUserMessage(buf.String())},
		GenerationConfig: j.generation,
	}
	samples := make([]*evaluator.ScoreResult, 0, j.numSamples)
	for i := 0; i < j.numSamples; i++ {
		response, err := j.judgeModel.GenerateContent(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("judge model response: %w", err)
		}
		score, err := ScoreBasedOnResponse(response)
		if err != nil {
			return nil, fmt.Errorf("score based on response: %w", err)
		}
		samples = append(samples, score)
	}
	return aggregateSamples(samples), nil
}

// aggregateSamples averages sample scores, keeping the first sample's reasoning.
func aggregateSamples(samples []*evaluator.ScoreResult) *evaluator.ScoreResult {
	sum := 0.0
	for _, sample := range samples {
		sum += sample.Score
	}
	return &evaluator.ScoreResult{
		Score:  sum / float64(len(samples)),
		Reason: samples[0].Reason,
	}
}

// buildJudgeModel constructs the judge model instance from configuration.
func buildJudgeModel(cfg *metric.JudgeModelConfig) (model.Model, error) {
	if cfg == nil {
		return nil, fmt.Errorf("judge model config is nil")
	}
	if cfg.Type != metric.JudgeModelTypeOpenAI {
		return nil, fmt.Errorf("unsupported judge model type %q", cfg.Type)
	}
	judgeModel, err := openaimodel.New(
		cfg.ModelName,
		openaimodel.WithAPIKey(cfg.APIKey),
		openaimodel.WithBaseURL(cfg.BaseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("create judge model: %w", err)
	}
	return judgeModel, nil
}

// defaultGeneration returns deterministic generation settings for judging.
func defaultGeneration() model.GenerationConfig {
	temperature := 0.0
	maxTokens := 1024
	return model.GenerationConfig{
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}
}
