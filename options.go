// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

package annobench

import (
	"github.com/DaneshjouLab/AutoGKB-sub000/annotation"
	"github.com/DaneshjouLab/AutoGKB-sub000/consistency"
	"github.com/DaneshjouLab/AutoGKB-sub000/log"
)

// Option configures an Engine.
type Option func(*Engine)

// WithThreshold overrides the matching threshold. Scores below the
// threshold never form a pair during set evaluation.
func WithThreshold(threshold float64) Option {
	return func(e *Engine) {
		e.threshold = threshold
	}
}

// WithFieldWeights overrides per-field weights for matching and
// aggregation. Fields absent from the map keep their schema weight;
// an explicit zero removes the field from aggregation.
func WithFieldWeights(weights map[string]float64) Option {
	return func(e *Engine) {
		e.weights = weights
	}
}

// WithRelatedInstances supplies the related annotation set consulted by
// referential-integrity checks, e.g. the variant annotations a study
// parameter row points at.
func WithRelatedInstances(related ...*annotation.Instance) Option {
	return func(e *Engine) {
		e.related = related
	}
}

// WithLogger overrides the engine's logger. Matching and penalty activity is
// reported at debug level.
func WithLogger(logger log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithValidator installs a consistency validator. Passing nil disables
// consistency checking, including the study-parameter default.
func WithValidator(v *consistency.Validator) Option {
	return func(e *Engine) {
		e.validator = v
	}
}
