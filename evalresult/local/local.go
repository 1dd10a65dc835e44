//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local file storage implementation for evaluation results.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-eval-go/evalresult"
)

const resultFileSuffix = ".eval_result.json"

// manager implements the evalresult.Manager interface using local file storage.
type manager struct {
	baseDir string
	mu      sync.Mutex
}

// NewManager creates a new local file evaluation result manager.
// Use functional options (see evalresult option.go) to override the default directory.
func NewManager(opt ...evalresult.Option) evalresult.Manager {
	opts := evalresult.NewOptions(opt...)
	return &manager{baseDir: opts.BaseDir}
}

// Save stores an evaluation result to a local file, assigning an ID when absent.
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
	if err := os.MkdirAll(m.baseDir, 0o755); err != nil {
		return "", err
	}
	if err := WriteFile(m.resultPath(result.EvalResultID), result); err != nil {
		return "", err
	}
	return result.EvalResultID, nil
}

// Get retrieves an evaluation result by evalResultID from a local file.
func (m *manager) Get(ctx context.Context, evalResultID string) (*evalresult.EvalResult, error) {
	_ = ctx
	if evalResultID == "" {
		return nil, errors.New("result id is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(evalResultID)
}

// List returns the IDs of all stored evaluation results.
func (m *manager) List(ctx context.Context) ([]string, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, resultFileSuffix) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, resultFileSuffix))
	}
	return ids, nil
}

func (m *manager) resultPath(evalResultID string) string {
	return filepath.Join(m.baseDir, fmt.Sprintf("%s%s", evalResultID, resultFileSuffix))
}

func (m *manager) load(evalResultID string) (*evalresult.EvalResult, error) {
	f, err := os.Open(m.resultPath(evalResultID))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var res evalresult.EvalResult
	if err := json.NewDecoder(f).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WriteFile writes a result to path as indented JSON via a temp file rename.
func WriteFile(path string, result *evalresult.EvalResult) error {
	if result == nil {
		return errors.New("result is nil")
	}
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
