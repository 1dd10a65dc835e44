//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalStatusString(t *testing.T) {
	assert.Equal(t, "passed", EvalStatusPassed.String())
	assert.Equal(t, "failed", EvalStatusFailed.String())
	assert.Equal(t, "not_evaluated", EvalStatusNotEvaluated.String())
	assert.Equal(t, "unknown", EvalStatusUnknown.String())
	assert.Equal(t, "unknown", EvalStatus(42).String())
}
