// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

package schema

// Built-in descriptors for the four annotation families. These reproduce the
// curated field lists of the PharmGKB-style variant annotation tables; callers
// with other families construct their own Schema.

// Phenotype returns the variant-phenotype annotation schema. The non-uniform
// weights bias matching toward the phenotype, effect direction, drug and
// allele fields.
func Phenotype() *Schema {
	return MustNew("phenotype",
		FieldSpec{Name: "Variant/Haplotypes", Kind: KindVariantIdentity, Weight: 1.0},
		FieldSpec{Name: "Gene", Kind: KindFuzzyEntity, Weight: 1.0},
		FieldSpec{Name: "Drug(s)", Kind: KindSemanticSet, Weight: 1.5},
		FieldSpec{Name: "Phenotype Category", Kind: KindCategory, Weight: 0.5},
		FieldSpec{Name: "Alleles", Kind: KindSemanticSet, Weight: 1.5},
		FieldSpec{Name: "Is/Is Not associated", Kind: KindCategory, Weight: 1.0},
		FieldSpec{Name: "Direction of effect", Kind: KindCategory, Weight: 2.0},
		FieldSpec{Name: "Phenotype", Kind: KindSemanticSet, Weight: 2.0},
		FieldSpec{Name: "When treated with/exposed to/when assayed with", Kind: KindSemanticSet, Weight: 0.5},
		FieldSpec{Name: "Comparison Allele(s) or Genotype(s)", Kind: KindSemanticSet, Weight: 1.0},
	)
}

// Drug returns the variant-drug annotation schema.
func Drug() *Schema {
	return MustNew("drug",
		FieldSpec{Name: "Variant/Haplotypes", Kind: KindVariantIdentity},
		FieldSpec{Name: "Gene", Kind: KindFuzzyEntity},
		FieldSpec{Name: "Drug(s)", Kind: KindSemanticSet},
		FieldSpec{Name: "PMID", Kind: KindExact},
		FieldSpec{Name: "Phenotype Category", Kind: KindCategory},
		FieldSpec{Name: "Significance", Kind: KindCategory},
		FieldSpec{Name: "Alleles", Kind: KindSemanticSet},
		FieldSpec{Name: "Specialty Population", Kind: KindSemanticSet},
		FieldSpec{Name: "Metabolizer types", Kind: KindSemanticSet},
		FieldSpec{Name: "isPlural", Kind: KindCategory},
		FieldSpec{Name: "Is/Is Not associated", Kind: KindCategory},
		FieldSpec{Name: "Direction of effect", Kind: KindCategory},
		FieldSpec{Name: "PD/PK terms", Kind: KindSemanticSet},
		FieldSpec{Name: "Multiple drugs And/or", Kind: KindCategory},
		FieldSpec{Name: "Population types", Kind: KindSemanticSet},
		FieldSpec{Name: "Population Phenotypes or diseases", Kind: KindSemanticSet},
		FieldSpec{Name: "Multiple phenotypes or diseases And/or", Kind: KindCategory},
		FieldSpec{Name: "Comparison Allele(s) or Genotype(s)", Kind: KindSemanticSet},
		FieldSpec{Name: "Comparison Metabolizer types", Kind: KindSemanticSet},
	)
}

// FunctionalAssay returns the functional-analysis annotation schema.
func FunctionalAssay() *Schema {
	return MustNew("functional_assay",
		FieldSpec{Name: "Variant/Haplotypes", Kind: KindVariantIdentity},
		FieldSpec{Name: "Gene", Kind: KindFuzzyEntity},
		FieldSpec{Name: "Drug(s)", Kind: KindSemanticSet},
		FieldSpec{Name: "PMID", Kind: KindExact},
		FieldSpec{Name: "Phenotype Category", Kind: KindCategory},
		FieldSpec{Name: "Significance", Kind: KindCategory},
		FieldSpec{Name: "Alleles", Kind: KindSemanticSet},
		FieldSpec{Name: "Specialty Population", Kind: KindSemanticSet},
		FieldSpec{Name: "Assay type", Kind: KindSemanticSet},
		FieldSpec{Name: "Metabolizer types", Kind: KindSemanticSet},
		FieldSpec{Name: "isPlural", Kind: KindCategory},
		FieldSpec{Name: "Is/Is Not associated", Kind: KindCategory},
		FieldSpec{Name: "Direction of effect", Kind: KindCategory},
		FieldSpec{Name: "Functional terms", Kind: KindSemanticSet},
		FieldSpec{Name: "Gene/gene product", Kind: KindSemanticSet},
		FieldSpec{Name: "When treated with/exposed to/when assayed with", Kind: KindCategory},
		FieldSpec{Name: "Multiple drugs And/or", Kind: KindCategory},
		FieldSpec{Name: "Cell type", Kind: KindSemanticSet},
		FieldSpec{Name: "Comparison Allele(s) or Genotype(s)", Kind: KindSemanticSet},
		FieldSpec{Name: "Comparison Metabolizer types", Kind: KindSemanticSet},
	)
}

// StudyParameters returns the study-parameter annotation schema.
func StudyParameters() *Schema {
	return MustNew("study_parameters",
		FieldSpec{Name: "Study Parameters ID", Kind: KindExact},
		FieldSpec{Name: "Variant Annotation ID", Kind: KindExact},
		FieldSpec{Name: "Study Type", Kind: KindCategory},
		FieldSpec{Name: "Study Cases", Kind: KindNumericTolerance},
		FieldSpec{Name: "Study Controls", Kind: KindNumericTolerance},
		FieldSpec{Name: "Characteristics", Kind: KindSemanticSet},
		FieldSpec{Name: "Characteristics Type", Kind: KindCategory},
		FieldSpec{Name: "Frequency in Cases", Kind: KindNumericTolerance},
		FieldSpec{Name: "Allele of Frequency in Cases", Kind: KindSemanticSet},
		FieldSpec{Name: "Frequency in Controls", Kind: KindNumericTolerance},
		FieldSpec{Name: "Allele of Frequency in Controls", Kind: KindSemanticSet},
		FieldSpec{Name: "P Value", Kind: KindCompoundStatistic},
		FieldSpec{Name: "Ratio Stat Type", Kind: KindCategory},
		FieldSpec{Name: "Ratio Stat", Kind: KindNumericTolerance},
		FieldSpec{Name: "Confidence Interval Start", Kind: KindNumericTolerance},
		FieldSpec{Name: "Confidence Interval Stop", Kind: KindNumericTolerance},
		FieldSpec{Name: "Biogeographical Groups", Kind: KindCategory},
	)
}
