//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	dataReferencePrefix = "${data."
	dataReferenceSuffix = "}"
)

// ColumnMapping associates evaluator input names with dataset field references
// of the form ${data.<field>}.
type ColumnMapping map[string]string

// DefaultColumnMapping maps each input column to the dataset field of the same name.
func DefaultColumnMapping(columns []string) ColumnMapping {
	mapping := make(ColumnMapping, len(columns))
	for _, column := range columns {
		mapping[column] = DataReference(column)
	}
	return mapping
}

// DataReference builds a ${data.<field>} reference for a dataset field.
func DataReference(field string) string {
	return dataReferencePrefix + field + dataReferenceSuffix
}

// ParseReference extracts the dataset field name from a ${data.<field>} reference.
func ParseReference(reference string) (string, error) {
	if !strings.HasPrefix(reference, dataReferencePrefix) || !strings.HasSuffix(reference, dataReferenceSuffix) {
		return "", fmt.Errorf("invalid data reference %q, expected ${data.<field>}", reference)
	}
	field := reference[len(dataReferencePrefix) : len(reference)-len(dataReferenceSuffix)]
	if field == "" {
		return "", fmt.Errorf("invalid data reference %q, field name is empty", reference)
	}
	return field, nil
}

// Resolve produces evaluator inputs for a record.
// Strings pass through, numbers and bools are stringified, composites are rejected.
func (m ColumnMapping) Resolve(record Record) (map[string]string, error) {
	inputs := make(map[string]string, len(m))
	for input, reference := range m {
		field, err := ParseReference(reference)
		if err != nil {
			return nil, err
		}
		value, ok := record[field]
		if !ok {
			return nil, fmt.Errorf("record has no field %q for input %q", field, input)
		}
		text, err := stringify(value)
		if err != nil {
			return nil, fmt.Errorf("field %q for input %q: %w", field, input, err)
		}
		inputs[input] = text
	}
	return inputs, nil
}

func stringify(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("value is null")
	default:
		return "", fmt.Errorf("value of type %T is not a scalar", value)
	}
}
