//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package llmjudge

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"trpc.group/trpc-go/trpc-eval-go/evaluator"
	"trpc.group/trpc-go/trpc-eval-go/model"
)

const (
	// MinScore is the lowest value on the judge scale.
	MinScore = 1.0
	// MaxScore is the highest value on the judge scale.
	MaxScore = 5.0
)

// judgeOutputRegex extracts the reasoning and score from the judge response.
var judgeOutputRegex = regexp.MustCompile(
	`(?ms)reasoning:\s*(.*?)\s*` + // 1: reasoning text
		`score:\s*([0-9]+(?:\.[0-9]+)?)\s*$`, // 2: numeric score
)

// ScoreBasedOnResponse converts judge feedback to a numeric score result.
func ScoreBasedOnResponse(response *model.Response) (*evaluator.ScoreResult, error) {
	if response == nil || len(response.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}
	content := response.Choices[0].Message.Content
	if content == "" {
		return nil, fmt.Errorf("empty response text")
	}
	reasoning, score, err := extractReasoningAndScore(content)
	if err != nil {
		return nil, fmt.Errorf("extract reasoning and score: %w", err)
	}
	if score < MinScore || score > MaxScore {
		return nil, fmt.Errorf("score %v is outside the %v-%v scale", score, MinScore, MaxScore)
	}
	return &evaluator.ScoreResult{Score: score, Reason: reasoning}, nil
}

// extractReasoningAndScore parses judge output in text form.
func extractReasoningAndScore(content string) (string, float64, error) {
	matches := judgeOutputRegex.FindAllStringSubmatch(content, -1)
	if len(matches) < 1 {
		return "", 0, fmt.Errorf("no judge output blocks found in response")
	}
	reasoning := strings.TrimSpace(matches[0][1])
	score, err := strconv.ParseFloat(strings.TrimSpace(matches[0][2]), 64)
	if err != nil {
		return "", 0, fmt.Errorf("parse score: %w", err)
	}
	return reasoning, score, nil
}
