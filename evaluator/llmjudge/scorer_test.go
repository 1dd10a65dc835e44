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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-eval-go/model"
)

func responseWith(content string) *model.Response {
	return &model.Response{
		Choices: []model.Choice{{Message: model.Message{Role: model.RoleAssistant, Content: content}}},
	}
}

func TestScoreBasedOnResponse(t *testing.T) {
	result, err := ScoreBasedOnResponse(responseWith(
		"reasoning: the response directly answers the question\nscore: 5"))
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.Score)
	assert.Equal(t, "the response directly answers the question", result.Reason)
}

func TestScoreBasedOnResponseMultilineReasoning(t *testing.T) {
	result, err := ScoreBasedOnResponse(responseWith(
		"reasoning: partially on topic.\nMisses the second half of the question.\nscore: 2.5"))
	require.NoError(t, err)
	assert.Equal(t, 2.5, result.Score)
	assert.Contains(t, result.Reason, "Misses the second half")
}

func TestScoreBasedOnResponseErrors(t *testing.T) {
	_, err := ScoreBasedOnResponse(nil)
	assert.Error(t, err)

	_, err = ScoreBasedOnResponse(&model.Response{})
	assert.Error(t, err)

	_, err = ScoreBasedOnResponse(responseWith(""))
	assert.ErrorContains(t, err, "empty response")

	_, err = ScoreBasedOnResponse(responseWith("the answer looks fine to me"))
	assert.ErrorContains(t, err, "no judge output blocks")

	_, err = ScoreBasedOnResponse(responseWith("reasoning: off scale\nscore: 7"))
	assert.ErrorContains(t, err, "outside")

	_, err = ScoreBasedOnResponse(responseWith("reasoning: off scale\nscore: 0"))
	assert.ErrorContains(t, err, "outside")
}
