//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package registry

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-eval-go/evaluator"
)

type stubEvaluator struct {
	name string
}

func (s *stubEvaluator) Name() string            { return s.name }
func (s *stubEvaluator) Description() string     { return "stub" }
func (s *stubEvaluator) InputColumns() []string  { return []string{"query", "response"} }
func (s *stubEvaluator) EvaluateRow(ctx context.Context, inputs map[string]string) (*evaluator.ScoreResult, error) {
	return &evaluator.ScoreResult{Score: 5}, nil
}

func TestRegistryRegisterGetList(t *testing.T) {
	r := New()

	require.Error(t, r.Register("x", nil))
	require.Error(t, r.Register("", &stubEvaluator{}))

	require.NoError(t, r.Register("", &stubEvaluator{name: "relevance"}))
	require.NoError(t, r.Register("coherence", &stubEvaluator{name: "coherence"}))

	e, err := r.Get("relevance")
	require.NoError(t, err)
	assert.Equal(t, "relevance", e.Name())

	_, err = r.Get("absent")
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Equal(t, []string{"coherence", "relevance"}, r.List())
}

func TestRegistryOverwritesSameName(t *testing.T) {
	r := New()
	first := &stubEvaluator{name: "relevance"}
	second := &stubEvaluator{name: "relevance"}
	require.NoError(t, r.Register("relevance", first))
	require.NoError(t, r.Register("relevance", second))

	e, err := r.Get("relevance")
	require.NoError(t, err)
	assert.Same(t, second, e)
}
