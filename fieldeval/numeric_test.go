// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

package fieldeval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaneshjouLab/AutoGKB-sub000/annotation"
)

// TestParseNumeric verifies parsing with separators, currency symbols and
// unparseable content.
func TestParseNumeric(t *testing.T) {
	f, ok := ParseNumeric(annotation.String("1,234.5"))
	require.True(t, ok)
	assert.InDelta(t, 1234.5, f, 1e-12)

	f, ok = ParseNumeric(annotation.String(" $42 "))
	require.True(t, ok)
	assert.InDelta(t, 42, f, 1e-12)

	_, ok = ParseNumeric(annotation.String("n/a"))
	assert.False(t, ok)
	_, ok = ParseNumeric(annotation.Absent())
	assert.False(t, ok)
}

// TestNumericToleranceMatch_Bands verifies the relative-difference bands.
func TestNumericToleranceMatch_Bands(t *testing.T) {
	score := func(a, b string) float64 {
		return NumericToleranceMatch(annotation.String(a), annotation.String(b), DefaultTolerance())
	}
	assert.InDelta(t, 1.0, score("100", "100"), 1e-12)
	assert.InDelta(t, 1.0, score("1,000", "1000"), 1e-12)
	// 3/103 < 5%.
	assert.InDelta(t, 0.9, score("100", "103"), 1e-12)
	// 8/108 < 10%.
	assert.InDelta(t, 0.8, score("100", "108"), 1e-12)
	// 20/120 > 10%.
	assert.InDelta(t, 0.0, score("100", "120"), 1e-12)
}

// TestNumericToleranceMatch_Symmetric verifies that argument order never
// changes the score.
func TestNumericToleranceMatch_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"100", "103"}, {"100", "108"}, {"100", "120"},
		{"0.05", "0.048"}, {"0", "0.1"}, {"7", "7"},
	}
	for _, p := range pairs {
		a := annotation.String(p[0])
		b := annotation.String(p[1])
		assert.InDelta(t,
			NumericToleranceMatch(a, b, DefaultTolerance()),
			NumericToleranceMatch(b, a, DefaultTolerance()),
			1e-12, p)
	}
}

// TestNumericToleranceMatch_Zero verifies that zero only matches zero.
func TestNumericToleranceMatch_Zero(t *testing.T) {
	score := func(a, b string) float64 {
		return NumericToleranceMatch(annotation.String(a), annotation.String(b), DefaultTolerance())
	}
	assert.InDelta(t, 1.0, score("0", "0"), 1e-12)
	assert.InDelta(t, 0.0, score("0", "0.1"), 1e-12)
	assert.InDelta(t, 0.0, score("0.1", "0"), 1e-12)
}

// TestNumericToleranceMatch_Unparseable verifies that unparseable content in a
// numeric position behaves as absence, not as an error.
func TestNumericToleranceMatch_Unparseable(t *testing.T) {
	tol := DefaultTolerance()
	assert.InDelta(t, 1.0,
		NumericToleranceMatch(annotation.String("n/a"), annotation.String("NR"), tol), 1e-12)
	assert.InDelta(t, 0.0,
		NumericToleranceMatch(annotation.String("n/a"), annotation.String("42"), tol), 1e-12)
}

// TestParseInequality verifies operator extraction and the "=" default.
func TestParseInequality(t *testing.T) {
	op, mag, magOK, present := ParseInequality(annotation.String("<0.05"))
	require.True(t, present)
	require.True(t, magOK)
	assert.Equal(t, "<", op)
	assert.InDelta(t, 0.05, mag, 1e-12)

	op, _, _, _ = ParseInequality(annotation.String("<=0.05"))
	assert.Equal(t, "≤", op)
	op, _, _, _ = ParseInequality(annotation.String("≥ 10"))
	assert.Equal(t, "≥", op)

	op, mag, magOK, present = ParseInequality(annotation.String("0.05"))
	require.True(t, present)
	require.True(t, magOK)
	assert.Equal(t, "=", op)
	assert.InDelta(t, 0.05, mag, 1e-12)

	_, _, magOK, present = ParseInequality(annotation.String("NS"))
	assert.True(t, present)
	assert.False(t, magOK)

	_, _, _, present = ParseInequality(annotation.Absent())
	assert.False(t, present)
}

// TestCompoundStatisticMatch_Identical verifies that identical statistics
// score a perfect 1.0.
func TestCompoundStatisticMatch_Identical(t *testing.T) {
	score := func(a, b string) float64 {
		return CompoundStatisticMatch(annotation.String(a), annotation.String(b))
	}
	assert.InDelta(t, 1.0, score("<0.05", "< 0.05"), 1e-12)
	assert.InDelta(t, 1.0, score("<=0.001", "≤0.001"), 1e-12)
	assert.InDelta(t, 1.0, score("0.32", "0.32"), 1e-12)
}

// TestCompoundStatisticMatch_NearbyMagnitude verifies that a matching operator
// with a log-space-close magnitude earns partial credit strictly between the
// half score and the full score.
func TestCompoundStatisticMatch_NearbyMagnitude(t *testing.T) {
	got := CompoundStatisticMatch(annotation.String("<0.05"), annotation.String("<0.04"))
	assert.InDelta(t, 0.85, got, 1e-12)
	assert.Greater(t, got, 0.5)
	assert.Less(t, got, 1.0)
}

// TestCompoundStatisticMatch_OperatorMismatch verifies that a wrong operator
// costs exactly half the score.
func TestCompoundStatisticMatch_OperatorMismatch(t *testing.T) {
	score := func(a, b string) float64 {
		return CompoundStatisticMatch(annotation.String(a), annotation.String(b))
	}
	assert.InDelta(t, 0.5, score("0.05", "<0.05"), 1e-12)
	assert.InDelta(t, 0.5, score(">0.05", "<0.05"), 1e-12)
}

// TestCompoundStatisticMatch_FarMagnitude verifies that an order-of-magnitude
// difference earns no value credit.
func TestCompoundStatisticMatch_FarMagnitude(t *testing.T) {
	got := CompoundStatisticMatch(annotation.String("<0.05"), annotation.String("<0.005"))
	assert.InDelta(t, 0.5, got, 1e-12)
}

// TestCompoundStatisticMatch_NonNumeric verifies scoring when magnitudes are
// not parseable.
func TestCompoundStatisticMatch_NonNumeric(t *testing.T) {
	score := func(a, b string) float64 {
		return CompoundStatisticMatch(annotation.String(a), annotation.String(b))
	}
	assert.InDelta(t, 1.0, score("NS", "ns"), 1e-12)
	assert.InDelta(t, 0.5, score("NS", "0.5"), 1e-12)
}

// TestCompoundStatisticMatch_Symmetric verifies ordering independence.
func TestCompoundStatisticMatch_Symmetric(t *testing.T) {
	a := annotation.String("<0.05")
	b := annotation.String("<0.04")
	assert.InDelta(t, CompoundStatisticMatch(a, b), CompoundStatisticMatch(b, a), 1e-12)
}
