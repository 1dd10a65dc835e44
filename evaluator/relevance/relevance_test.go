//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package relevance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-eval-go/evaluator/llmjudge"
	"trpc.group/trpc-go/trpc-eval-go/metric"
	"trpc.group/trpc-go/trpc-eval-go/model"
)

type capturingModel struct {
	prompt string
}

func (c *capturingModel) Info() model.Info { return model.Info{Name: "capturing"} }

func (c *capturingModel) GenerateContent(ctx context.Context, req *model.Request) (*model.Response, error) {
	c.prompt = req.Messages[0].Content
	return &model.Response{
		Choices: []model.Choice{{Message: model.Message{
			Role:    model.RoleAssistant,
			Content: "reasoning: directly answers the question\nscore: 5",
		}}},
	}, nil
}

func TestNew(t *testing.T) {
	e, err := New(&metric.JudgeModelConfig{
		Type:      metric.JudgeModelTypeOpenAI,
		ModelName: "gpt-4o-mini",
		APIKey:    "sk-test",
		BaseURL:   "https://api.openai.com/v1",
	})
	require.NoError(t, err)
	assert.Equal(t, MetricName, e.Name())
	assert.Equal(t, []string{"query", "response"}, e.InputColumns())
	assert.NotEmpty(t, e.Description())
}

func TestEvaluateRowPromptContainsInputs(t *testing.T) {
	m := &capturingModel{}
	e, err := New(nil, llmjudge.WithJudgeModel(m))
	require.NoError(t, err)

	result, err := e.EvaluateRow(context.Background(), map[string]string{
		"query":    "What is the capital of France?",
		"response": "Paris is the capital of France.",
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.Score)

	assert.Contains(t, m.prompt, "Query: What is the capital of France?")
	assert.Contains(t, m.prompt, "Response: Paris is the capital of France.")
	assert.Contains(t, m.prompt, "relevant")
	assert.Contains(t, m.prompt, "score: [1-5]")
}
