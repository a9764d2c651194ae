// SPDX-FileCopyrightText: 2025 Stanford University and the project authors (see CONTRIBUTORS.md)
// SPDX-License-Identifier: Apache-2.0

// Package annotation defines the structured fact records compared by the
// scoring engine. An Instance is an ordered mapping from field name to value;
// it carries no identity beyond its content.
package annotation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Value is a single field value: a string, a number rendered as its canonical
// string form, or absent.
type Value struct {
	text    string
	present bool
}

// String returns a present Value holding the given text.
func String(text string) Value {
	return Value{text: text, present: true}
}

// Number returns a present Value holding the canonical rendering of f.
func Number(f float64) Value {
	return Value{text: strconv.FormatFloat(f, 'g', -1, 64), present: true}
}

// Absent returns the absent Value.
func Absent() Value {
	return Value{}
}

// Present reports whether the value was set at all.
func (v Value) Present() bool {
	return v.present
}

// Empty reports whether the value is absent or contains only whitespace.
// Evaluators treat empty values as absent.
func (v Value) Empty() bool {
	return !v.present || strings.TrimSpace(v.text) == ""
}

// Text returns the raw string form, or "" when absent.
func (v Value) Text() string {
	return v.text
}

// Number parses the value as a float64. The boolean is false when the value
// is absent or not numeric.
func (v Value) Number() (float64, bool) {
	if v.Empty() {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Instance is one observed fact row, e.g. one gene-drug-phenotype assertion.
// Field order is preserved from insertion.
type Instance struct {
	names  []string
	values map[string]Value
}

// New returns an empty instance.
func New() *Instance {
	return &Instance{values: make(map[string]Value)}
}

// FromMap builds an instance from a decoded JSON object. Field order follows
// the sorted field names so that identical maps always produce identical
// instances. Supported value types are string, float64, int, bool and nil;
// anything else is stored via its string form.
func FromMap(m map[string]any) *Instance {
	in := New()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		in.Set(name, coerce(m[name]))
	}
	return in
}

func coerce(v any) Value {
	switch t := v.(type) {
	case nil:
		return Absent()
	case string:
		return String(t)
	case float64:
		return Number(t)
	case int:
		return Number(float64(t))
	case bool:
		return String(strconv.FormatBool(t))
	default:
		return String(fmt.Sprint(t))
	}
}

// Set stores a value under the given field name, preserving first-insertion
// order for new names.
func (in *Instance) Set(name string, v Value) *Instance {
	if _, ok := in.values[name]; !ok {
		in.names = append(in.names, name)
	}
	in.values[name] = v
	return in
}

// SetText stores a plain string field.
func (in *Instance) SetText(name, text string) *Instance {
	return in.Set(name, String(text))
}

// Get returns the value stored under name, or the absent Value.
func (in *Instance) Get(name string) Value {
	if in == nil {
		return Absent()
	}
	return in.values[name]
}

// Fields returns the field names in insertion order.
func (in *Instance) Fields() []string {
	out := make([]string, len(in.names))
	copy(out, in.names)
	return out
}

// Len returns the number of fields.
func (in *Instance) Len() int {
	return len(in.names)
}

// Clone returns a deep copy of the instance.
func (in *Instance) Clone() *Instance {
	out := New()
	for _, name := range in.names {
		out.Set(name, in.values[name])
	}
	return out
}
