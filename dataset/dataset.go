/*
Package dataset provides the in-memory representation of labeled training
data and the statistics over it used to induce decision trees: value
frequencies, entropy and information gain.
*/
package dataset

import "fmt"

/*
Record represents an example to learn from: a mapping from attribute names
to discrete values. All records in a dataset are expected to share the same
attribute names.
*/
type Record map[string]string

/*
Dataset is an ordered collection of records. Its order is preserved by every
operation in this package.
*/
type Dataset []Record

// Error is the type of the sentinel errors in this package.
type Error string

/*
ErrEmptyDataset is returned when a computation that requires at least one
record, like entropy or information gain, is requested on an empty dataset.
*/
const ErrEmptyDataset = Error("empty dataset")

func (e Error) Error() string {
	return string(e)
}

/*
MissingAttributeError is returned when a record does not define a value for
an attribute it is expected to have. Index is the position of the record in
the dataset being processed, or -1 when the record is not part of one.
*/
type MissingAttributeError struct {
	Attribute string
	Index     int
}

func (e *MissingAttributeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("record has no value for attribute %q", e.Attribute)
	}
	return fmt.Sprintf("record #%d has no value for attribute %q", e.Index, e.Attribute)
}

/*
ValueFor returns the value of the given attribute in the record, or a
*MissingAttributeError with index -1 if the record does not define it.
*/
func (r Record) ValueFor(attribute string) (string, error) {
	v, ok := r[attribute]
	if !ok {
		return "", &MissingAttributeError{Attribute: attribute, Index: -1}
	}
	return v, nil
}

// Clone returns a copy of the record.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

func (ds Dataset) valueAt(i int, attribute string) (string, error) {
	v, ok := ds[i][attribute]
	if !ok {
		return "", &MissingAttributeError{Attribute: attribute, Index: i}
	}
	return v, nil
}

/*
Subset returns a new dataset with the records whose value for the given
attribute equals value, in their original order. The records themselves are
shared with ds, the slice is not.
*/
func Subset(ds Dataset, attribute, value string) (Dataset, error) {
	var result Dataset
	for i := range ds {
		v, err := ds.valueAt(i, attribute)
		if err != nil {
			return nil, err
		}
		if v == value {
			result = append(result, ds[i])
		}
	}
	return result, nil
}

/*
Values returns the distinct values the given attribute takes on the dataset,
in order of first occurrence.
*/
func Values(ds Dataset, attribute string) ([]string, error) {
	f, err := ValueFrequencies(ds, attribute)
	if err != nil {
		return nil, err
	}
	return f.Values(), nil
}

/*
MajorityValue returns the most frequent value of the given attribute in the
dataset. Ties go to the value seen first. It returns ErrEmptyDataset when
there are no records to take a majority from.
*/
func MajorityValue(ds Dataset, attribute string) (string, error) {
	f, err := ValueFrequencies(ds, attribute)
	if err != nil {
		return "", err
	}
	v, ok := f.Majority()
	if !ok {
		return "", ErrEmptyDataset
	}
	return v, nil
}

// Clone returns a deep copy of the dataset.
func (ds Dataset) Clone() Dataset {
	if ds == nil {
		return nil
	}
	c := make(Dataset, len(ds))
	for i, r := range ds {
		c[i] = r.Clone()
	}
	return c
}
