//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-eval-go/evalresult"
	"trpc.group/trpc-go/trpc-eval-go/status"
)

func TestLocalManagerSaveGetList(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	mgr := NewManager(evalresult.WithBaseDir(dir))

	_, err := mgr.Save(ctx, nil)
	assert.Error(t, err)

	_, err = mgr.Get(ctx, "")
	assert.Error(t, err)

	result := &evalresult.EvalResult{
		DatasetPath:   "data/evaluation_dataset.jsonl",
		OverallStatus: status.EvalStatusPassed,
		Metrics:       map[string]float64{"relevance.mean_score": 4.5},
	}
	id, err := mgr.Save(ctx, result)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, result.EvalResultID)
	assert.FileExists(t, filepath.Join(dir, id+resultFileSuffix))

	retrieved, err := mgr.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "data/evaluation_dataset.jsonl", retrieved.DatasetPath)
	assert.Equal(t, 4.5, retrieved.Metrics["relevance.mean_score"])

	ids, err := mgr.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{id}, ids)
}

func TestLocalManagerListEmptyDir(t *testing.T) {
	mgr := NewManager(evalresult.WithBaseDir(filepath.Join(t.TempDir(), "absent")))
	ids, err := mgr.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestLocalManagerGetMissing(t *testing.T) {
	mgr := NewManager(evalresult.WithBaseDir(t.TempDir()))
	_, err := mgr.Get(context.Background(), "absent")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evaluation_results.json")
	result := &evalresult.EvalResult{
		EvalResultID: "r1",
		Metrics:      map[string]float64{"coherence.pass_rate": 1},
	}
	require.NoError(t, WriteFile(path, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "coherence.pass_rate")
	assert.NoFileExists(t, path+".tmp")

	assert.Error(t, WriteFile(path, nil))
}
