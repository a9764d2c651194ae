// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"github.com/DaneshjouLab/AutoGKB-sub000/annotation"
)

// Error taxonomy labels. Classification follows a fixed precedence; the first
// matching rule wins.
const (
	ErrorMissingPrediction    = "missing_prediction"
	ErrorUnexpectedPrediction = "unexpected_prediction"
	ErrorIncompleteExtraction = "incomplete_extraction"
	ErrorOverExtraction       = "over_extraction"
	ErrorContentMismatch      = "content_mismatch"
)

// ClassifyError labels an imperfect field comparison. A perfect score carries
// no error and yields "".
func ClassifyError(predicted, expected annotation.Value, score float64) string {
	if score >= 1.0 {
		return ""
	}
	predEmpty := predicted.Empty()
	expEmpty := expected.Empty()
	switch {
	case predEmpty && !expEmpty:
		return ErrorMissingPrediction
	case !predEmpty && expEmpty:
		return ErrorUnexpectedPrediction
	}
	predLen := len(predicted.Text())
	expLen := len(expected.Text())
	switch {
	case float64(predLen) < 0.5*float64(expLen):
		return ErrorIncompleteExtraction
	case float64(predLen) > 2*float64(expLen):
		return ErrorOverExtraction
	default:
		return ErrorContentMismatch
	}
}
