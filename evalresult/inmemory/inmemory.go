//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory implementation of evalresult.Manager.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-eval-go/evalresult"
)

// manager implements the evalresult.Manager interface with an in-memory map.
type manager struct {
	mu      sync.RWMutex
	results map[string]*evalresult.EvalResult
}

// NewManager creates a new in-memory evaluation result manager.
func NewManager() evalresult.Manager {
	return &manager{results: make(map[string]*evalresult.EvalResult)}
}

// Save stores an evaluation result, assigning an ID when absent.
func (m *manager) Save(ctx context.Context, result *evalresult.EvalResult) (string, error) {
	_ = ctx
	if result == nil {
		return "", errors.New("result is nil")
	}
	if result.EvalResultID == "" {
		result.EvalResultID = uuid.NewString()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[result.EvalResultID] = result
	return result.EvalResultID, nil
}

// Get retrieves an evaluation result by ID.
// Returns os.ErrNotExist if the result is not found.
func (m *manager) Get(ctx context.Context, evalResultID string) (*evalresult.EvalResult, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	if result, ok := m.results[evalResultID]; ok {
		return result, nil
	}
	return nil, fmt.Errorf("get eval result %s: %w", evalResultID, os.ErrNotExist)
}

// List returns the IDs of all stored evaluation results sorted lexicographically.
func (m *manager) List(ctx context.Context) ([]string, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.results))
	for id := range m.results {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
