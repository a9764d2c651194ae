// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

// Package schema describes the named, weighted field lists expected for one
// annotation family. A Schema is an explicit configuration value supplied to
// the engine at construction; nothing downstream hardcodes field lists.
package schema

import (
	"fmt"
)

// Kind selects the similarity metric applied to a field.
type Kind int

const (
	// KindExact scores normalized string equality.
	KindExact Kind = iota
	// KindCategory scores controlled-vocabulary fields by normalized equality.
	KindCategory
	// KindFuzzyEntity scores entity names by bucketed sequence similarity.
	KindFuzzyEntity
	// KindSemanticSet scores free text by token-set Jaccard similarity.
	KindSemanticSet
	// KindNumericTolerance scores numbers with relative-difference bands.
	KindNumericTolerance
	// KindCompoundStatistic scores inequality-qualified statistics such as p-values.
	KindCompoundStatistic
	// KindVariantIdentity scores genetic variant identifiers with
	// substring/synonym tolerance.
	KindVariantIdentity
)

// String returns the evaluator identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact_match"
	case KindCategory:
		return "category_equal"
	case KindFuzzyEntity:
		return "fuzzy_entity_match"
	case KindSemanticSet:
		return "semantic_set_match"
	case KindNumericTolerance:
		return "numeric_tolerance_match"
	case KindCompoundStatistic:
		return "compound_statistic_match"
	case KindVariantIdentity:
		return "variant_identity_match"
	default:
		return "unknown"
	}
}

// FieldSpec binds one field name to an evaluator kind and a non-negative weight.
type FieldSpec struct {
	Name   string
	Kind   Kind
	Weight float64
}

// Schema is an ordered list of field specs for one annotation family.
type Schema struct {
	name   string
	fields []FieldSpec
	index  map[string]int
}

// New builds a schema from the given field specs. Duplicate field names and
// negative weights are rejected. A zero spec weight means "unweighted" and
// resolves to 1; an explicit zero supplied through a Weights override removes
// the field from weighted aggregation without removing it from scoring.
func New(name string, fields ...FieldSpec) (*Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("schema name is empty")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("schema %s has no fields", name)
	}
	s := &Schema{
		name:   name,
		fields: make([]FieldSpec, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	copy(s.fields, fields)
	for i, f := range s.fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema %s: field %d has no name", name, i)
		}
		if f.Weight < 0 {
			return nil, fmt.Errorf("schema %s: field %s has negative weight %v", name, f.Name, f.Weight)
		}
		if _, ok := s.index[f.Name]; ok {
			return nil, fmt.Errorf("schema %s: duplicate field %s", name, f.Name)
		}
		s.index[f.Name] = i
	}
	return s, nil
}

// MustNew is New for static schema definitions.
func MustNew(name string, fields ...FieldSpec) *Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns the ordered field specs.
func (s *Schema) Fields() []FieldSpec {
	out := make([]FieldSpec, len(s.fields))
	copy(out, s.fields)
	return out
}

// FieldNames returns the ordered field names.
func (s *Schema) FieldNames() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}

// Field returns the spec for the named field.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i], true
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Weights resolves the effective per-field weights. Entries in override win
// over the spec weights; negative overrides are ignored. Fields without any
// configured weight default to 1.
func (s *Schema) Weights(override map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(s.fields))
	for _, f := range s.fields {
		w := f.Weight
		if w == 0 {
			w = 1
		}
		if ov, ok := override[f.Name]; ok && ov >= 0 {
			w = ov
		}
		out[f.Name] = w
	}
	return out
}
