//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-eval-go/model"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestNewRequiresModelName(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestGenerateContentValidatesRequest(t *testing.T) {
	m, err := New("gpt-4o-mini", WithAPIKey("test-key"))
	require.NoError(t, err)

	_, err = m.GenerateContent(context.Background(), nil)
	assert.Error(t, err)

	_, err = m.GenerateContent(context.Background(), &model.Request{})
	assert.Error(t, err)
}

func TestGenerateContent(t *testing.T) {
	var gotBody map[string]any
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-123",
			"model": "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": "reasoning: clear and direct\nscore: 4",
					},
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     42,
				"completion_tokens": 12,
				"total_tokens":      54,
			},
		})
	})

	m, err := New("gpt-4o-mini", WithAPIKey("test-key"), WithBaseURL(server.URL))
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", m.Info().Name)

	temperature := 0.0
	maxTokens := 256
	resp, err := m.GenerateContent(context.Background(), &model.Request{
		Messages: []model.Message{
			model.NewSystemMessage("You are a strict grader."),
			model.NewUserMessage("grade this"),
		},
		GenerationConfig: model.GenerationConfig{
			Temperature: &temperature,
			MaxTokens:   &maxTokens,
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Choices, 1)
	assert.Equal(t, "reasoning: clear and direct\nscore: 4", resp.Choices[0].Message.Content)
	assert.Equal(t, model.RoleAssistant, resp.Choices[0].Message.Role)
	assert.Equal(t, "stop", resp.Choices[0].FinishReason)
	require.NotNil(t, resp.Usage)
	assert.Equal(t, 42, resp.Usage.PromptTokens)
	assert.Equal(t, 12, resp.Usage.CompletionTokens)

	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	assert.Equal(t, float64(256), gotBody["max_completion_tokens"])
	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 2)
}

func TestGenerateContentEmptyChoices(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-123","model":"gpt-4o-mini","choices":[]}`))
	})

	m, err := New("gpt-4o-mini", WithAPIKey("test-key"), WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = m.GenerateContent(context.Background(), &model.Request{
		Messages: []model.Message{model.NewUserMessage("grade this")},
	})
	assert.ErrorContains(t, err, "no choices")
}

func TestGenerateContentAPIError(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad key"}}`, http.StatusUnauthorized)
	})

	m, err := New("gpt-4o-mini", WithAPIKey("bad-key"), WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = m.GenerateContent(context.Background(), &model.Request{
		Messages: []model.Message{model.NewUserMessage("grade this")},
	})
	assert.Error(t, err)
}
