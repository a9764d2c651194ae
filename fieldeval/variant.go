// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

package fieldeval

import (
	"regexp"
	"strings"

	"github.com/DaneshjouLab/AutoGKB-sub000/annotation"
	"github.com/DaneshjouLab/AutoGKB-sub000/internal/textutil"
)

var (
	rsidRE       = regexp.MustCompile(`(?i)^rs\d+$`)
	starAlleleRE = regexp.MustCompile(`^(?:[A-Za-z][A-Za-z0-9]*)?\*\d+[A-Za-z0-9]*$`)
)

// metabolizerGroups are canonical gene-phenotype group labels that sometimes
// occupy variant fields; they compare categorically rather than fuzzily.
var metabolizerGroups = map[string]struct{}{
	"poor metabolizers":         {},
	"intermediate metabolizers": {},
	"extensive metabolizers":    {},
	"ultra-rapid metabolizers":  {},
	"intermediate activity":     {},
	"reduced function":          {},
	"normal function":           {},
}

// VariantIdentityMatch scores genetic variant identifiers (rsIDs, star
// alleles, genotype strings). It accepts synonym forms such as a bare allele
// number matching a fully qualified gene*allele string, or substring
// containment either way, and falls back to the fuzzy entity metric when no
// special-form relation applies.
func VariantIdentityMatch(predicted, expected annotation.Value) float64 {
	if predicted.Empty() && expected.Empty() {
		return 1.0
	}
	if predicted.Empty() || expected.Empty() {
		return 0.0
	}
	pred := textutil.NormalizeSpace(predicted.Text())
	exp := textutil.NormalizeSpace(expected.Text())

	if _, predGroup := metabolizerGroups[pred]; predGroup {
		return categoryScore(pred, exp)
	}
	if _, expGroup := metabolizerGroups[exp]; expGroup {
		return categoryScore(pred, exp)
	}
	if pred == exp {
		return 1.0
	}
	if rsidRE.MatchString(pred) || rsidRE.MatchString(exp) {
		// rsIDs are opaque identifiers: they match only exactly or as a
		// whole token inside a multi-variant listing, never partially.
		if hasVariantToken(exp, pred) || hasVariantToken(pred, exp) {
			return 1.0
		}
		return 0.0
	}
	if starAlleleRE.MatchString(collapse(pred)) && starAlleleRE.MatchString(collapse(exp)) {
		// Star alleles are discrete identifiers: *28 and *6 of the same gene
		// are different variants, not near matches.
		if starAllelesEquivalent(pred, exp) {
			return 1.0
		}
		return 0.0
	}
	if strings.Contains(pred, exp) || strings.Contains(exp, pred) {
		return 1.0
	}
	return FuzzyEntityMatch(predicted, expected)
}

var variantSepRE = regexp.MustCompile(`[,;|\s]+(?:\+\s*)?`)

// hasVariantToken reports whether needle appears as a whole variant token in
// the possibly multi-variant listing.
func hasVariantToken(listing, needle string) bool {
	for _, tok := range variantSepRE.Split(listing, -1) {
		if tok != "" && tok == needle {
			return true
		}
	}
	return false
}

func categoryScore(a, b string) float64 {
	if a == b {
		return 1.0
	}
	return 0.0
}

// starAllelesEquivalent reports whether two star-allele spellings denote the
// same allele, tolerating an omitted gene qualifier ("*28" vs "UGT1A1*28").
func starAllelesEquivalent(a, b string) bool {
	if !starAlleleRE.MatchString(collapse(a)) || !starAlleleRE.MatchString(collapse(b)) {
		return false
	}
	aGene, aAllele := splitStarAllele(collapse(a))
	bGene, bAllele := splitStarAllele(collapse(b))
	if aAllele == "" || aAllele != bAllele {
		return false
	}
	// A missing gene qualifier on either side matches any gene; otherwise the
	// genes must agree.
	return aGene == "" || bGene == "" || aGene == bGene
}

func collapse(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

func splitStarAllele(s string) (gene, allele string) {
	i := strings.IndexByte(s, '*')
	if i < 0 {
		return "", ""
	}
	return s[:i], s[i+1:]
}
