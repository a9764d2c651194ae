// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

// Package textutil provides the string normalization, tokenization and
// sequence-similarity primitives shared by the field evaluators.
package textutil

import (
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

var (
	spaceRE        = regexp.MustCompile(`\s+`)
	wordRE         = regexp.MustCompile(`[\pL\pN_]+`)
	entityPrefixRE = regexp.MustCompile(`(?i)^(rs|CYP|COMT)`)
	entityNoiseRE  = regexp.MustCompile(`[^\pL\pN_\s*+-]`)
)

// stopWords are dropped before token-set comparison.
var stopWords = map[string]struct{}{
	"is": {}, "are": {}, "the": {}, "a": {}, "an": {}, "and": {}, "or": {},
	"but": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {},
}

// NormalizeSpace lowercases, trims and collapses internal whitespace.
func NormalizeSpace(s string) string {
	return spaceRE.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// FoldEqual reports trimmed, case-folded equality.
func FoldEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// NormalizeEntity prepares an entity name for fuzzy comparison: known
// identifier prefixes are stripped, non-identifier noise becomes spaces, and
// whitespace is collapsed.
func NormalizeEntity(s string) string {
	s = entityPrefixRE.ReplaceAllString(strings.TrimSpace(s), "")
	s = entityNoiseRE.ReplaceAllString(s, " ")
	return NormalizeSpace(s)
}

// Tokens splits text into lowercase word tokens, dropping stop words and
// tokens of length <= 2.
func Tokens(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, tok := range wordRE.FindAllString(strings.ToLower(s), -1) {
		if len(tok) <= 2 {
			continue
		}
		if _, ok := stopWords[tok]; ok {
			continue
		}
		out[tok] = struct{}{}
	}
	return out
}

// Jaccard returns |a∩b| / |a∪b| over the two token sets. Both empty scores
// 1.0 and exactly one empty scores 0.0.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// Ratio returns the character-sequence similarity of a and b in [0, 1],
// computed with the same matching-block algorithm Python's difflib uses.
func Ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	m := difflib.NewMatcher(explode(a), explode(b))
	return m.Ratio()
}

// explode splits a string into per-rune sequence elements for the matcher.
func explode(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
