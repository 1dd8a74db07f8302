// Package feature assembles the model-specific ordered feature vectors from a
// raw survey submission. Each model artifact was trained against a fixed field
// schema; the builders here reproduce those schemas exactly, field for field
// and in order.
package feature

import "fmt"

// Vector is an ordered mapping of feature name to value. Field order is part
// of the contract with the model artifacts, so insertion order is preserved.
type Vector struct {
	names  []string
	values []float64
	index  map[string]int
}

// NewVector returns an empty vector sized for capacity fields.
func NewVector(capacity int) *Vector {
	return &Vector{
		names:  make([]string, 0, capacity),
		values: make([]float64, 0, capacity),
		index:  make(map[string]int, capacity),
	}
}

// Set appends the named feature, or overwrites its value when the name is
// already present. Order is fixed by first insertion.
func (v *Vector) Set(name string, value float64) {
	if i, ok := v.index[name]; ok {
		v.values[i] = value
		return
	}
	v.index[name] = len(v.names)
	v.names = append(v.names, name)
	v.values = append(v.values, value)
}

// Get returns the value for name and whether the field is present.
func (v *Vector) Get(name string) (float64, bool) {
	i, ok := v.index[name]
	if !ok {
		return 0, false
	}
	return v.values[i], true
}

// Names returns the field names in insertion order. The slice is a copy.
func (v *Vector) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// Values returns the field values in insertion order. The slice is a copy.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)
	return out
}

// Len reports the number of fields.
func (v *Vector) Len() int {
	return len(v.names)
}

// Schema is the ordered field-name list a model artifact expects. It is a
// strict external contract: every field present, none extra, order exact.
type Schema []string

// Validate checks that v matches the schema exactly.
func (s Schema) Validate(v *Vector) error {
	if v == nil {
		return fmt.Errorf("feature: vector is nil")
	}
	if v.Len() != len(s) {
		return fmt.Errorf("feature: vector has %d fields, schema expects %d", v.Len(), len(s))
	}
	for i, name := range s {
		if v.names[i] != name {
			return fmt.Errorf("feature: field %d is %q, schema expects %q", i, v.names[i], name)
		}
	}
	return nil
}
