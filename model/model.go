//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package model defines the judge model abstraction used by evaluators.
package model

import "context"

// Role defines the role of a message author.
type Role string

const (
	// RoleSystem is the system role.
	RoleSystem Role = "system"
	// RoleUser is the user role.
	RoleUser Role = "user"
	// RoleAssistant is the assistant role.
	RoleAssistant Role = "assistant"
)

// Message represents a single conversation message.
type Message struct {
	// Role is the role of the message author.
	Role Role `json:"role"`
	// Content is the message content.
	Content string `json:"content"`
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// GenerationConfig holds generation parameters for a model request.
type GenerationConfig struct {
	// Temperature controls sampling randomness.
	Temperature *float64 `json:"temperature,omitempty"`
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens *int `json:"max_tokens,omitempty"`
	// TopP controls nucleus sampling.
	TopP *float64 `json:"top_p,omitempty"`
}

// Request is a generation request sent to a model.
type Request struct {
	// Messages is the conversation so far.
	Messages []Message `json:"messages"`
	// GenerationConfig holds generation parameters.
	GenerationConfig GenerationConfig `json:"generation_config"`
}

// Choice is a single completion choice in a response.
type Choice struct {
	// Index is the choice index.
	Index int `json:"index"`
	// Message is the generated message.
	Message Message `json:"message"`
	// FinishReason indicates why generation stopped.
	FinishReason string `json:"finish_reason,omitempty"`
}

// Usage reports token consumption for a request.
type Usage struct {
	// PromptTokens is the number of tokens in the prompt.
	PromptTokens int `json:"prompt_tokens"`
	// CompletionTokens is the number of tokens in the completion.
	CompletionTokens int `json:"completion_tokens"`
	// TotalTokens is the total number of tokens consumed.
	TotalTokens int `json:"total_tokens"`
}

// Response is a generation response returned by a model.
type Response struct {
	// ID is the provider-assigned response ID.
	ID string `json:"id,omitempty"`
	// Model is the model that produced the response.
	Model string `json:"model,omitempty"`
	// Choices contains the completion choices.
	Choices []Choice `json:"choices"`
	// Usage reports token consumption.
	Usage *Usage `json:"usage,omitempty"`
}

// Model generates content from a request.
// Judge calls are one-shot, so GenerateContent returns a single final response.
type Model interface {
	// GenerateContent generates content for the given request.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	// Info returns basic information about the model.
	Info() Info
}

// Info describes a model instance.
type Info struct {
	// Name is the model name.
	Name string
}
