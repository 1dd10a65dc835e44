//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package epochtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpochTimeRoundTrip(t *testing.T) {
	original := EpochTime{Time: time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)}
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded EpochTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.WithinDuration(t, original.Time, decoded.Time, time.Millisecond)
}

func TestEpochTimeZeroMarshalsAsZero(t *testing.T) {
	data, err := json.Marshal(EpochTime{})
	require.NoError(t, err)
	assert.Equal(t, "0", string(data))
}

func TestEpochTimeUnmarshalRejectsNonNumber(t *testing.T) {
	var decoded EpochTime
	assert.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &decoded))
}
