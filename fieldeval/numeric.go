// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

package fieldeval

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/DaneshjouLab/AutoGKB-sub000/annotation"
)

// Tolerance configures the partial-credit bands for numeric comparison.
type Tolerance struct {
	// Exact is the score for identical numbers.
	Exact float64
	// Within5Pct is the score for a relative difference of at most 5%.
	Within5Pct float64
	// Within10Pct is the score for a relative difference of at most 10%.
	Within10Pct float64
}

// DefaultTolerance returns the band weights used for count and interval fields.
func DefaultTolerance() Tolerance {
	return Tolerance{Exact: 1.0, Within5Pct: 0.9, Within10Pct: 0.8}
}

// PValueTolerance returns the stricter bands used for significance magnitudes.
func PValueTolerance() Tolerance {
	return Tolerance{Exact: 1.0, Within5Pct: 0.9, Within10Pct: 0.7}
}

var numericJunkRE = regexp.MustCompile(`[,\s$]`)

// ParseNumeric parses a numeric field value, tolerating thousands separators,
// currency symbols and stray whitespace. The boolean is false when the value
// is absent or not numeric; callers treat that as absence.
func ParseNumeric(v annotation.Value) (float64, bool) {
	if v.Empty() {
		return 0, false
	}
	cleaned := numericJunkRE.ReplaceAllString(strings.TrimSpace(v.Text()), "")
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// NumericToleranceMatch scores two numeric values with relative-difference
// bands. The relative difference is measured against the expected value.
func NumericToleranceMatch(predicted, expected annotation.Value, tol Tolerance) float64 {
	predNum, predOK := ParseNumeric(predicted)
	expNum, expOK := ParseNumeric(expected)
	return scoreNumbers(predNum, predOK, expNum, expOK, tol)
}

// scoreNumbers applies the tolerance bands to parsed numbers. It is symmetric:
// the band is checked against both magnitudes and the pair scores by the
// smaller relative difference.
func scoreNumbers(predNum float64, predOK bool, expNum float64, expOK bool, tol Tolerance) float64 {
	if !predOK && !expOK {
		return 1.0
	}
	if !predOK || !expOK {
		return 0.0
	}
	if predNum == expNum {
		return tol.Exact
	}
	if predNum == 0 || expNum == 0 {
		return 0.0
	}
	diff := math.Abs(predNum - expNum)
	pct := diff / math.Max(math.Abs(predNum), math.Abs(expNum))
	switch {
	case pct <= 0.05:
		return tol.Within5Pct
	case pct <= 0.10:
		return tol.Within10Pct
	default:
		return 0.0
	}
}

var inequalityRE = regexp.MustCompile(`([<>=≤≥]=?)`)

// normalizeOperator folds equivalent operator spellings.
func normalizeOperator(op string) string {
	switch op {
	case "<=":
		return "≤"
	case ">=":
		return "≥"
	}
	return op
}

// ParseInequality splits a statistic such as "<0.05" into its comparison
// operator and numeric magnitude. A missing operator defaults to "=". The
// boolean is false when the value is absent entirely.
func ParseInequality(v annotation.Value) (op string, magnitude float64, magnitudeOK bool, present bool) {
	if v.Empty() {
		return "", 0, false, false
	}
	text := strings.TrimSpace(v.Text())
	op = "="
	if m := inequalityRE.FindString(text); m != "" {
		op = normalizeOperator(m)
	}
	rest := inequalityRE.ReplaceAllString(text, "")
	magnitude, magnitudeOK = ParseNumeric(annotation.String(rest))
	return op, magnitude, magnitudeOK, true
}

// CompoundStatisticMatch scores inequality-qualified statistics such as
// p-values: half the score comes from operator equality, half from numeric
// tolerance on the magnitudes. Positive magnitudes are compared on a log10
// scale because significance values are order-of-magnitude quantities; a pair
// like 0.05 and 0.04 differs by 20% linearly but sits inside the 10% band in
// log space.
func CompoundStatisticMatch(predicted, expected annotation.Value) float64 {
	predOp, predMag, predMagOK, predPresent := ParseInequality(predicted)
	expOp, expMag, expMagOK, expPresent := ParseInequality(expected)
	if !predPresent && !expPresent {
		return 1.0
	}
	if !predPresent || !expPresent {
		return 0.0
	}
	operatorScore := 0.0
	if predOp == expOp {
		operatorScore = 1.0
	}
	valueScore := magnitudeScore(predMag, predMagOK, expMag, expMagOK)
	return 0.5*operatorScore + 0.5*valueScore
}

// magnitudeScore compares statistic magnitudes, in log space when both are
// strictly positive.
func magnitudeScore(predMag float64, predOK bool, expMag float64, expOK bool) float64 {
	tol := PValueTolerance()
	if predOK && expOK && predMag > 0 && expMag > 0 && predMag != expMag {
		logPred := math.Log10(predMag)
		logExp := math.Log10(expMag)
		if logPred == 0 || logExp == 0 {
			return scoreNumbers(predMag, predOK, expMag, expOK, tol)
		}
		diff := math.Abs(logPred - logExp)
		pct := diff / math.Min(math.Abs(logPred), math.Abs(logExp))
		switch {
		case pct <= 0.05:
			return tol.Within5Pct
		case pct <= 0.10:
			return tol.Within10Pct
		default:
			return 0.0
		}
	}
	return scoreNumbers(predMag, predOK, expMag, expOK, tol)
}
