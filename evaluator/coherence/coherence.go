//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package coherence provides an LLM judge scoring the logical flow of a response.
package coherence

import (
	"text/template"

	"trpc.group/trpc-go/trpc-eval-go/evaluator"
	"trpc.group/trpc-go/trpc-eval-go/evaluator/llmjudge"
	"trpc.group/trpc-go/trpc-eval-go/metric"
)

// MetricName is the canonical name of the coherence metric.
const MetricName = "coherence"

var (
	// coherencePrompt is the template fed to the judge model.
	coherencePrompt = `
You are an expert evaluator of question answering systems. Your job is to **only** judge how coherent a response is, and to output a fixed-format plain-text report.

### What coherence measures

Coherence measures how logically organized and readable the response is as an answer to the query: whether sentences follow from one another, whether the response presents ideas in an order a reader can follow, and whether it reads as one connected answer rather than disjointed fragments. Judge nothing else: whether the answer is correct or relevant is outside your job.

### Input

You will receive two items:

* Query: the user's question
* Response: the system's answer

Format:
Query: {{.query}}
Response: {{.response}}

### Scale

Score the response on a 1 to 5 scale:

* 1: The response is incomprehensible, contradicts itself, or is a collection of unconnected fragments.
* 2: The response has severe organization problems; the reader must guess how its parts relate.
* 3: The response is understandable but poorly organized, with abrupt jumps or repeated restarts.
* 4: The response is well organized with only minor rough transitions.
* 5: The response flows logically from start to end and reads as one connected answer.

### Output requirements

Your output must be plain text with fixed field types:

* reasoning: string. Briefly explain how the response is organized and where the flow breaks, if anywhere.
* score: integer, must be one of 1, 2, 3, 4 or 5.

Output structure (exactly two lines):
reasoning: [your reasoning]
score: [1-5]

Requirement: be assertive and unambiguous; do not hedge.
`
	// coherencePromptTemplate renders the judge prompt with data.
	coherencePromptTemplate = template.Must(template.New("coherencePrompt").Parse(coherencePrompt))
)

// New returns a coherence evaluator backed by the configured judge model.
func New(cfg *metric.JudgeModelConfig, opt ...llmjudge.Option) (evaluator.Evaluator, error) {
	return llmjudge.New(
		MetricName,
		"Scores the logical flow and readability of a response",
		[]string{"query", "response"},
		coherencePromptTemplate,
		cfg,
		opt...,
	)
}
