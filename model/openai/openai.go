//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package openai provides an OpenAI-compatible judge model implementation.
package openai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"

	"trpc.group/trpc-go/trpc-eval-go/model"
)

// Model is an OpenAI-compatible model backed by the Chat Completions API.
// It works with OpenAI and any endpoint speaking the same protocol.
type Model struct {
	name   string
	client openai.Client
}

// New creates an OpenAI-compatible model with the given name and options.
func New(name string, opt ...Option) (*Model, error) {
	if name == "" {
		return nil, errors.New("model name is empty")
	}
	opts := newOptions(opt...)
	clientOpts := make([]openaiopt.RequestOption, 0, len(opts.extraHeaders)+2)
	if opts.apiKey != "" {
		clientOpts = append(clientOpts, openaiopt.WithAPIKey(opts.apiKey))
	}
	if opts.baseURL != "" {
		clientOpts = append(clientOpts, openaiopt.WithBaseURL(opts.baseURL))
	}
	for k, v := range opts.extraHeaders {
		clientOpts = append(clientOpts, openaiopt.WithHeader(k, v))
	}
	return &Model{
		name:   name,
		client: openai.NewClient(clientOpts...),
	}, nil
}

// Info returns basic information about the model.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.name}
}

// GenerateContent sends a non-streaming chat completion request.
func (m *Model) GenerateContent(ctx context.Context, req *model.Request) (*model.Response, error) {
	if req == nil {
		return nil, errors.New("request is nil")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("request has no messages")
	}
	params := openai.ChatCompletionNewParams{
		Model:    m.name,
		Messages: convertMessages(req.Messages),
	}
	if req.GenerationConfig.Temperature != nil {
		params.Temperature = openai.Float(*req.GenerationConfig.Temperature)
	}
	if req.GenerationConfig.MaxTokens != nil {
		params.MaxCompletionTokens = openai.Int(int64(*req.GenerationConfig.MaxTokens))
	}
	if req.GenerationConfig.TopP != nil {
		params.TopP = openai.Float(*req.GenerationConfig.TopP)
	}
	completion, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}
	return convertResponse(completion), nil
}

// convertMessages converts internal messages to openai-go message params.
func convertMessages(messages []model.Message) []openai.ChatCompletionMessageParamUnion {
	converted := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, message := range messages {
		switch message.Role {
		case model.RoleSystem:
			converted = append(converted, openai.SystemMessage(message.Content))
		case model.RoleAssistant:
			converted = append(converted, openai.AssistantMessage(message.Content))
		default:
			converted = append(converted, openai.UserMessage(message.Content))
		}
	}
	return converted
}

// convertResponse converts an openai-go completion to the internal response.
func convertResponse(completion *openai.ChatCompletion) *model.Response {
	response := &model.Response{
		ID:    completion.ID,
		Model: completion.Model,
		Usage: &model.Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}
	for _, choice := range completion.Choices {
		response.Choices = append(response.Choices, model.Choice{
			Index: int(choice.Index),
			Message: model.Message{
				Role:    model.RoleAssistant,
				Content: choice.Message.Content,
			},
			FinishReason: string(choice.FinishReason),
		})
	}
	return response
}
