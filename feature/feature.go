/*
Package feature describes the schema of a dataset: the ordered attributes
its records have, the values each of them may take, and which attribute is
the target to predict.
*/
package feature

import (
	"fmt"

	"github.com/pbanos/id3/dataset"
)

/*
Feature represents an attribute that can be observed on records and that can
only take a value among a finite set. A feature with no available values
accepts any value.
*/
type Feature struct {
	name            string
	availableValues []string
}

/*
New takes a name string and a slice of available value strings
and returns a feature with the given name and available values.
*/
func New(name string, availableValues []string) *Feature {
	return &Feature{name, availableValues}
}

// Name returns a string with the name of the feature
func (f *Feature) Name() string {
	return f.name
}

// AvailableValues returns a string slice with the values available for the feature
func (f *Feature) AvailableValues() []string {
	return f.availableValues
}

/*
Valid returns nil when the value is among the available values of the
feature, or the feature accepts any value, and an *InvalidValueError
otherwise.
*/
func (f *Feature) Valid(value string) error {
	if len(f.availableValues) == 0 {
		return nil
	}
	for _, av := range f.availableValues {
		if av == value {
			return nil
		}
	}
	return &InvalidValueError{Feature: f.name, Value: value, Index: -1}
}

func (f *Feature) String() string {
	return f.name
}

/*
InvalidValueError is returned when a record holds a value that is not among
the available values for a feature. Index is the position of the record in
the validated dataset, -1 if unknown.
*/
type InvalidValueError struct {
	Feature string
	Value   string
	Index   int
}

func (e *InvalidValueError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("feature %s got unknown value %q", e.Feature, e.Value)
	}
	return fmt.Sprintf("record #%d: feature %s got unknown value %q", e.Index, e.Feature, e.Value)
}

/*
Schema holds the features of a dataset in order, and the name of the target
feature, the one to predict.
*/
type Schema struct {
	Target   string
	Features []*Feature
}

// Names returns the names of the schema's features in order.
func (s *Schema) Names() []string {
	result := make([]string, 0, len(s.Features))
	for _, f := range s.Features {
		result = append(result, f.Name())
	}
	return result
}

// Lookup returns the feature with the given name, or nil if there is none.
func (s *Schema) Lookup(name string) *Feature {
	for _, f := range s.Features {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

/*
Check returns an error if the schema has no features, defines a feature twice
or its target is not one of its features.
*/
func (s *Schema) Check() error {
	if len(s.Features) == 0 {
		return fmt.Errorf("schema has no features")
	}
	seen := make(map[string]bool, len(s.Features))
	for _, f := range s.Features {
		if seen[f.Name()] {
			return fmt.Errorf("feature %s is defined more than once", f.Name())
		}
		seen[f.Name()] = true
	}
	if s.Target != "" && !seen[s.Target] {
		return fmt.Errorf("target %s is not a defined feature", s.Target)
	}
	return nil
}

/*
Validate checks every record of the dataset against the schema: each must
hold a value for every feature, and that value must be valid for it. It
returns a *dataset.MissingAttributeError or an *InvalidValueError for the
first offending record.
*/
func (s *Schema) Validate(ds dataset.Dataset) error {
	for i, r := range ds {
		for _, f := range s.Features {
			v, ok := r[f.Name()]
			if !ok {
				return &dataset.MissingAttributeError{Attribute: f.Name(), Index: i}
			}
			if err := f.Valid(v); err != nil {
				return &InvalidValueError{Feature: f.Name(), Value: v, Index: i}
			}
		}
	}
	return nil
}
