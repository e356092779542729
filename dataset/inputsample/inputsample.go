/*
Package inputsample provides a record whose attribute values are read from
an io.Reader as they are asked for, so that a tree can make a prediction
asking only the questions on the path it takes.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

/*
ValueRequester represents a way to ask for attribute values and reject the
given values. values holds the values the attribute may take, and is empty
when any value is accepted.
*/
type ValueRequester interface {
	RequestValueFor(attribute string, values []string) error
	RejectValueFor(attribute, value string, values []string) error
}

/*
Sample is a record whose values are read from a reader. A value is
requested using a ValueRequester before reading it and is remembered
afterwards, so every attribute is asked for at most once.
*/
type Sample struct {
	obtained       dataset.Record
	undefined      map[string]bool
	undefinedValue string
	scanner        *bufio.Scanner
	requester      ValueRequester
	schema         *feature.Schema
}

/*
New takes an io.Reader, a schema, a ValueRequester and an undefinedValue
coding string and returns a Sample.

The Sample's ValueFor method reads values one per line. A line holding the
undefinedValue string leaves the attribute undefined. Lines with values the
schema does not accept for the attribute are rejected with the requester's
RejectValueFor method and the next line is read. A nil schema accepts any
value for any attribute, otherwise asking for an attribute the schema does
not define is an error.
*/
func New(r io.Reader, schema *feature.Schema, requester ValueRequester, undefinedValue string) *Sample {
	return &Sample{
		obtained:       dataset.Record{},
		undefined:      make(map[string]bool),
		undefinedValue: undefinedValue,
		scanner:        bufio.NewScanner(r),
		requester:      requester,
		schema:         schema,
	}
}

/*
ValueFor returns the value for the given attribute, reading it if it was
not read before. It returns a *dataset.MissingAttributeError if the value
was given as undefined.
*/
func (s *Sample) ValueFor(attribute string) (string, error) {
	if v, ok := s.obtained[attribute]; ok {
		return v, nil
	}
	if s.undefined[attribute] {
		return "", &dataset.MissingAttributeError{Attribute: attribute, Index: -1}
	}
	f := feature.New(attribute, nil)
	if s.schema != nil {
		f = s.schema.Lookup(attribute)
		if f == nil {
			return "", fmt.Errorf("have no information about attribute %s, do not know how to read its value", attribute)
		}
	}
	if err := s.requester.RequestValueFor(attribute, f.AvailableValues()); err != nil {
		return "", err
	}
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if line == s.undefinedValue {
			s.undefined[attribute] = true
			return "", &dataset.MissingAttributeError{Attribute: attribute, Index: -1}
		}
		if f.Valid(line) == nil {
			s.obtained[attribute] = line
			return line, nil
		}
		if err := s.requester.RejectValueFor(attribute, line, f.AvailableValues()); err != nil {
			return "", err
		}
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("EOF when requesting value for %s", attribute)
}

// Record returns a copy of the values read so far.
func (s *Sample) Record() dataset.Record {
	return s.obtained.Clone()
}
