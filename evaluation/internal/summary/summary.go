//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package summary provides helpers for aggregating evaluation results.
package summary

import (
	"fmt"
	"sort"

	"trpc.group/trpc-go/trpc-eval-go/evalresult"
	"trpc.group/trpc-go/trpc-eval-go/status"
)

// Metric key suffixes used in the flat aggregate metrics map.
const (
	MeanScoreSuffix = "mean_score"
	PassRateSuffix  = "pass_rate"
)

// Summarize summarizes evaluation statuses into a single value.
// The precedence rules are:
// 1. If there is a Failed, the overall status is Failed.
// 2. If there is a Passed, the overall status is Passed.
// 3. Otherwise, the overall status is NotEvaluated.
func Summarize(statuses []status.EvalStatus) (status.EvalStatus, error) {
	combined := status.EvalStatusNotEvaluated
	for _, s := range statuses {
		switch s {
		case status.EvalStatusFailed:
			return status.EvalStatusFailed, nil
		case status.EvalStatusPassed:
			combined = status.EvalStatusPassed
		case status.EvalStatusNotEvaluated:
			continue
		default:
			return status.EvalStatusFailed, fmt.Errorf("unexpected eval status %v", s)
		}
	}
	return combined, nil
}

// metricAgg accumulates per-metric outcomes across rows.
type metricAgg struct {
	sumScore  float64
	evaluated int
	passed    int
	threshold float64
	counts    evalresult.EvalStatusCounts
}

// BuildMetricSummaries aggregates per-row metric results into per-metric
// summaries and the flat metrics map, skipping not-evaluated entries.
func BuildMetricSummaries(rows []*evalresult.RowResult,
	thresholds map[string]float64) ([]*evalresult.EvalMetricSummary, map[string]float64) {
	aggs := make(map[string]*metricAgg)
	for _, row := range rows {
		if row == nil {
			continue
		}
		for _, metricResult := range row.MetricResults {
			if metricResult == nil {
				continue
			}
			agg, ok := aggs[metricResult.MetricName]
			if !ok {
				agg = &metricAgg{threshold: thresholds[metricResult.MetricName]}
				aggs[metricResult.MetricName] = agg
			}
			agg.counts.Add(metricResult.EvalStatus)
			if metricResult.EvalStatus == status.EvalStatusNotEvaluated {
				continue
			}
			agg.evaluated++
			agg.sumScore += metricResult.Score
			if metricResult.EvalStatus == status.EvalStatusPassed {
				agg.passed++
			}
		}
	}
	names := make([]string, 0, len(aggs))
	for name := range aggs {
		names = append(names, name)
	}
	sort.Strings(names)

	summaries := make([]*evalresult.EvalMetricSummary, 0, len(names))
	metrics := make(map[string]float64, 2*len(names))
	for _, name := range names {
		agg := aggs[name]
		summary := &evalresult.EvalMetricSummary{
			MetricName: name,
			Threshold:  agg.threshold,
			EvalStatus: status.EvalStatusNotEvaluated,
			StatusCounts: &evalresult.EvalStatusCounts{
				Passed:       agg.counts.Passed,
				Failed:       agg.counts.Failed,
				NotEvaluated: agg.counts.NotEvaluated,
			},
		}
		if agg.evaluated > 0 {
			summary.MeanScore = agg.sumScore / float64(agg.evaluated)
			summary.PassRate = float64(agg.passed) / float64(agg.evaluated)
			summary.EvalStatus = status.EvalStatusPassed
			if summary.MeanScore < agg.threshold {
				summary.EvalStatus = status.EvalStatusFailed
			}
			metrics[name+"."+MeanScoreSuffix] = summary.MeanScore
			metrics[name+"."+PassRateSuffix] = summary.PassRate
		}
		summaries = append(summaries, summary)
	}
	return summaries, metrics
}
