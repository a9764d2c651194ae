// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValue_Absent verifies that the absent value is neither present nor numeric.
func TestValue_Absent(t *testing.T) {
	v := Absent()
	assert.False(t, v.Present())
	assert.True(t, v.Empty())
	assert.Equal(t, "", v.Text())
	_, ok := v.Number()
	assert.False(t, ok)
}

// TestValue_WhitespaceIsEmpty verifies that a present whitespace-only value
// still counts as empty.
func TestValue_WhitespaceIsEmpty(t *testing.T) {
	v := String("   \t ")
	assert.True(t, v.Present())
	assert.True(t, v.Empty())
}

// TestValue_Number verifies numeric parsing of string and number values.
func TestValue_Number(t *testing.T) {
	f, ok := String(" 1.5 ").Number()
	require.True(t, ok)
	assert.InDelta(t, 1.5, f, 1e-12)

	f, ok = Number(0.05).Number()
	require.True(t, ok)
	assert.InDelta(t, 0.05, f, 1e-12)

	_, ok = String("n/a").Number()
	assert.False(t, ok)
}

// TestInstance_SetGet verifies insertion order and lookup of fields.
func TestInstance_SetGet(t *testing.T) {
	in := New().
		SetText("Gene", "CYP2C19").
		SetText("Drug(s)", "clopidogrel")
	assert.Equal(t, []string{"Gene", "Drug(s)"}, in.Fields())
	assert.Equal(t, "CYP2C19", in.Get("Gene").Text())
	assert.True(t, in.Get("Phenotype").Empty())
	assert.Equal(t, 2, in.Len())
}

// TestInstance_SetOverwriteKeepsOrder verifies that overwriting a field does
// not duplicate its name.
func TestInstance_SetOverwriteKeepsOrder(t *testing.T) {
	in := New().SetText("Gene", "CYP2C19").SetText("Gene", "CYP2D6")
	assert.Equal(t, []string{"Gene"}, in.Fields())
	assert.Equal(t, "CYP2D6", in.Get("Gene").Text())
}

// TestInstance_NilGet verifies that Get on a nil instance returns absent.
func TestInstance_NilGet(t *testing.T) {
	var in *Instance
	assert.True(t, in.Get("Gene").Empty())
}

// TestFromMap_Deterministic verifies that identical maps produce identical
// field orders regardless of map iteration.
func TestFromMap_Deterministic(t *testing.T) {
	m := map[string]any{
		"Gene":    "CYP2C19",
		"Alleles": "*2/*2",
		"PMID":    "12345",
	}
	a := FromMap(m)
	b := FromMap(m)
	assert.Equal(t, a.Fields(), b.Fields())
	assert.Equal(t, []string{"Alleles", "Gene", "PMID"}, a.Fields())
}

// TestFromMap_Coercion verifies value coercion from decoded JSON types.
func TestFromMap_Coercion(t *testing.T) {
	in := FromMap(map[string]any{
		"count":   float64(42),
		"ratio":   1.5,
		"flag":    true,
		"note":    "text",
		"missing": nil,
	})
	f, ok := in.Get("count").Number()
	require.True(t, ok)
	assert.InDelta(t, 42, f, 1e-12)
	assert.Equal(t, "true", in.Get("flag").Text())
	assert.Equal(t, "text", in.Get("note").Text())
	assert.True(t, in.Get("missing").Empty())
}

// TestInstance_Clone verifies that clones are independent of the original.
func TestInstance_Clone(t *testing.T) {
	in := New().SetText("Gene", "CYP2C19")
	cp := in.Clone()
	cp.SetText("Gene", "CYP2D6")
	assert.Equal(t, "CYP2C19", in.Get("Gene").Text())
	assert.Equal(t, "CYP2D6", cp.Get("Gene").Text())
}
