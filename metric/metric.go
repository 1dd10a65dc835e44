//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package metric provides evaluation metric configuration.
package metric

import (
	"encoding/json"
	"os"

	"trpc.group/trpc-go/trpc-eval-go/model"
)

// JudgeModelTypeOpenAI identifies an OpenAI-compatible judge endpoint.
const JudgeModelTypeOpenAI = "openai"

// DefaultThreshold is the default pass threshold on the 1-5 judge scale.
const DefaultThreshold = 3.0

// DefaultNumSamples is the default number of judge samples per row.
const DefaultNumSamples = 1

// EvalMetric represents a metric used to evaluate a particular aspect of a record.
type EvalMetric struct {
	// MetricName identifies the metric.
	MetricName string `json:"metricName"`
	// Threshold is the minimum score considered a pass.
	Threshold float64 `json:"threshold"`
	// Judge holds configuration for the judge model.
	Judge *JudgeModelConfig `json:"judge,omitempty"`
}

// JudgeModelConfig describes the hosted model endpoint and credential the
// evaluators use for judging.
type JudgeModelConfig struct {
	// Type identifies the provider protocol. Only "openai" is supported.
	Type string `json:"type,omitempty"`
	// ModelName identifies the judge model.
	ModelName string `json:"modelName,omitempty"`
	// APIKey is the credential for the judge provider.
	APIKey string `json:"apiKey,omitempty"`
	// BaseURL is an optional custom endpoint.
	BaseURL string `json:"baseURL,omitempty"`
	// NumSamples sets how many judge samples to collect per row.
	NumSamples *int `json:"numSamples,omitempty"`
	// Generation holds generation parameters for the judge.
	Generation *model.GenerationConfig `json:"generationConfig,omitempty"`
}

// MarshalJSON omits APIKey from JSON output while still allowing JSON input to populate it.
func (j JudgeModelConfig) MarshalJSON() ([]byte, error) {
	type judgeModelConfigAlias JudgeModelConfig
	alias := judgeModelConfigAlias(j)
	alias.APIKey = ""
	return json.Marshal(alias)
}

// UnmarshalJSON expands environment variables for ModelName, BaseURL and APIKey.
func (j *JudgeModelConfig) UnmarshalJSON(data []byte) error {
	type judgeModelConfigAlias JudgeModelConfig
	var alias judgeModelConfigAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	alias.Type = os.ExpandEnv(alias.Type)
	alias.ModelName = os.ExpandEnv(alias.ModelName)
	alias.BaseURL = os.ExpandEnv(alias.BaseURL)
	alias.APIKey = os.ExpandEnv(alias.APIKey)
	*j = JudgeModelConfig(alias)
	return nil
}
