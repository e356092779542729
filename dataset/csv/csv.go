/*
Package csv reads datasets from and writes them to CSV streams.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/dataset"
)

// DefaultUndefinedValue is the value that marks an attribute as undefined on a row.
const DefaultUndefinedValue = "?"

/*
Read takes an io.Reader for a CSV stream and the string used to mark
undefined values and returns the dataset in the stream and its attributes,
or an error.

The header or first row of the CSV content is expected to consist of the
names of the attributes. Every other row is a record with a value for each
of them, or the undefinedValue string to leave the attribute undefined for
the record.
*/
func Read(reader io.Reader, undefinedValue string) (dataset.Dataset, []string, error) {
	ds := dataset.Dataset{}
	attributes, err := ReadBySample(reader, undefinedValue, func(_ int, r dataset.Record) (bool, error) {
		ds = append(ds, r)
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return ds, attributes, nil
}

/*
ReadBySample takes an io.Reader for a CSV stream, the string used to mark
undefined values and a lambda function on an integer and a dataset.Record
that returns a boolean value. It parses the records from the reader and for
each it calls the lambda function with its index and the record. If the
lambda function returns true, it will continue processing the next record,
otherwise it will stop. It returns the attributes in the header, and an
error if something goes wrong when reading the stream or parsing a record.
*/
func ReadBySample(reader io.Reader, undefinedValue string, lambda func(int, dataset.Record) (bool, error)) ([]string, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	attributes, err := parseHeader(header)
	if err != nil {
		return nil, err
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		record := make(dataset.Record, len(attributes))
		for i, a := range attributes {
			if row[i] != undefinedValue {
				record[a] = row[i]
			}
		}
		ok, err := lambda(l-2, record)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	return attributes, nil
}

/*
ReadFile takes a filepath string, opens the file to which it points (or
reads from os.Stdin if it is "") and uses Read to return the dataset and
attributes in it, or an error.
*/
func ReadFile(filepath, undefinedValue string) (dataset.Dataset, []string, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening dataset at %s: %v", filepath, err)
		}
		defer f.Close()
	}
	ds, attributes, err := Read(f, undefinedValue)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return ds, attributes, err
}

/*
Write takes an io.Writer, a dataset, the attributes to write and the string
to write for undefined values, and dumps the dataset in CSV format with a
header row. It returns an error if something goes wrong when writing.
*/
func Write(writer io.Writer, ds dataset.Dataset, attributes []string, undefinedValue string) error {
	w := csv.NewWriter(writer)
	if err := w.Write(attributes); err != nil {
		return fmt.Errorf("writing CSV header: %v", err)
	}
	row := make([]string, len(attributes))
	for i, r := range ds {
		for j, a := range attributes {
			v, ok := r[a]
			if !ok {
				v = undefinedValue
			}
			row[j] = v
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing record #%d: %v", i, err)
		}
	}
	w.Flush()
	return w.Error()
}

func parseHeader(header []string) ([]string, error) {
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if name == "" {
			return nil, fmt.Errorf("parsing header: empty attribute name")
		}
		if seen[name] {
			return nil, fmt.Errorf("parsing header: attribute %s appears more than once", name)
		}
		seen[name] = true
	}
	return header, nil
}
