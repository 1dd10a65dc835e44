//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package relevance provides an LLM judge scoring how well a response addresses a query.
package relevance

import (
	"text/template"

	"trpc.group/trpc-go/trpc-eval-go/evaluator"
	"trpc.group/trpc-go/trpc-eval-go/evaluator/llmjudge"
	"trpc.group/trpc-go/trpc-eval-go/metric"
)

// MetricName is the canonical name of the relevance metric.
const MetricName = "relevance"

var (
	// relevancePrompt is the template fed to the judge model.
	relevancePrompt = `
You are an expert evaluator of question answering systems. Your job is to **only** judge how relevant a response is to the query it answers, and to output a fixed-format plain-text report.

### What relevance measures

Relevance measures how well the response addresses the main points and the intent of the query. Judge nothing else: do not reward fluent writing that ignores the question, and do not penalize correct answers for style. Factual accuracy against the outside world is not your job; alignment with the query is.

### Input

You will receive two items:

* Query: the user's question
* Response: the system's answer

Format:
Query: {{.query}}
Response: {{.response}}

### Scale

Score the response on a 1 to 5 scale:

* 1: The response is unrelated to the query or answers a different question.
* 2: The response touches the topic but misses the main point of the query.
* 3: The response addresses the main point only partially, or mixes relevant content with off-topic content.
* 4: The response addresses the main points of the query with minor gaps or minor digressions.
* 5: The response fully addresses the query, covering its main points and intent without digression.

A response that asks the user for clarification instead of answering must score 1.

### Output requirements

Your output must be plain text with fixed field types:

* reasoning: string. Briefly explain what the query asks for and how well the response covers it.
* score: integer, must be one of 1, 2, 3, 4 or 5.

Output structure (exactly two lines):
reasoning: [your reasoning]
score: [1-5]

Requirement: be assertive and unambiguous; do not hedge.
`
	// relevancePromptTemplate renders the judge prompt with data.
	relevancePromptTemplate = template.Must(template.New("relevancePrompt").Parse(relevancePrompt))
)

// New returns a relevance evaluator backed by the configured judge model.
func New(cfg *metric.JudgeModelConfig, opt ...llmjudge.Option) (evaluator.Evaluator, error) {
	return llmjudge.New(
		MetricName,
		"Scores how well a response addresses the main points and intent of a query",
		[]string{"query", "response"},
		relevancePromptTemplate,
		cfg,
		opt...,
	)
}
