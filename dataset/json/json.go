/*
Package json reads datasets from and writes them to JSON documents, keeping
the order in which attributes appear on records.
*/
package json

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3/dataset"
)

/*
Read takes an io.Reader with a JSON document and returns the dataset it
contains and its attributes, in the order they appear on the first record,
or an error.

The document is expected to be either an array of records or an object with
a "data" property holding that array; other properties of the object are
ignored. Each record must be a flat object whose values are strings, numbers,
booleans or null; non-string values are kept as their JSON text (3, true)
and null values leave the attribute undefined on the record.
*/
func Read(r io.Reader) (dataset.Dataset, []string, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("reading document: %v", err)
	}
	switch tok {
	case json.Delim('['):
		return readRecords(dec)
	case json.Delim('{'):
	default:
		return nil, nil, fmt.Errorf("expected an object or an array, found %v", tok)
	}
	var (
		ds         dataset.Dataset
		attributes []string
		found      bool
	)
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, nil, err
		}
		if key != "data" {
			var skipped json.RawMessage
			if err = dec.Decode(&skipped); err != nil {
				return nil, nil, fmt.Errorf("reading property %q: %v", key, err)
			}
			continue
		}
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("reading data: %v", err)
		}
		if tok != json.Delim('[') {
			return nil, nil, fmt.Errorf("expected data to be an array, found %v", tok)
		}
		ds, attributes, err = readRecords(dec)
		if err != nil {
			return nil, nil, err
		}
		found = true
	}
	if !found {
		return nil, nil, fmt.Errorf("document has no data property")
	}
	return ds, attributes, nil
}

/*
ReadFile takes a filepath string, opens the file and uses Read to return
the dataset and attributes in it, or an error.
*/
func ReadFile(filepath string) (dataset.Dataset, []string, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dataset at %s: %v", filepath, err)
	}
	defer f.Close()
	ds, attributes, err := Read(f)
	if err != nil {
		return nil, nil, fmt.Errorf("reading dataset at %s: %v", filepath, err)
	}
	return ds, attributes, nil
}

/*
DecodeRecord takes a slice of bytes with a single JSON record and returns
the record and its attributes in the order they appear on it.
*/
func DecodeRecord(data []byte) (dataset.Record, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if tok != json.Delim('{') {
		return nil, nil, fmt.Errorf("expected record object, found %v", tok)
	}
	r, attributes, err := readRecord(dec)
	if err != nil {
		return nil, nil, err
	}
	if _, err = dec.Token(); err != io.EOF {
		return nil, nil, fmt.Errorf("unexpected content after record")
	}
	return r, attributes, nil
}

/*
EncodeRecord takes a record and a list of attributes and returns a JSON
object with the record's value for each attribute, in the given order.
Attributes the record does not define are encoded as null.
*/
func EncodeRecord(r dataset.Record, attributes []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range attributes {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(attr)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, ok := r[attr]
		if !ok {
			buf.WriteString("null")
			continue
		}
		ev, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(ev)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

/*
WriteLines takes an io.Writer, a dataset and a list of attributes and writes
each record encoded with EncodeRecord on its own line.
*/
func WriteLines(w io.Writer, ds dataset.Dataset, attributes []string) error {
	for i, r := range ds {
		data, err := EncodeRecord(r, attributes)
		if err != nil {
			return fmt.Errorf("encoding record #%d: %v", i, err)
		}
		data = append(data, '\n')
		if _, err = w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// readRecords reads an array of records whose opening bracket was already read.
func readRecords(dec *json.Decoder) (dataset.Dataset, []string, error) {
	ds := dataset.Dataset{}
	var attributes []string
	for i := 0; dec.More(); i++ {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("reading record #%d: %v", i, err)
		}
		if tok != json.Delim('{') {
			return nil, nil, fmt.Errorf("record #%d: expected object, found %v", i, tok)
		}
		r, ra, err := readRecord(dec)
		if err != nil {
			return nil, nil, fmt.Errorf("record #%d: %v", i, err)
		}
		if i == 0 {
			attributes = ra
		}
		ds = append(ds, r)
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, fmt.Errorf("reading end of records: %v", err)
	}
	return ds, attributes, nil
}

// readRecord reads the properties of an object whose opening brace was already read.
func readRecord(dec *json.Decoder) (dataset.Record, []string, error) {
	r := dataset.Record{}
	var attributes []string
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, nil, err
		}
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("reading value for %q: %v", key, err)
		}
		attributes = append(attributes, key)
		switch v := tok.(type) {
		case nil:
		case string:
			r[key] = v
		case json.Number:
			r[key] = v.String()
		case bool:
			r[key] = fmt.Sprintf("%v", v)
		default:
			return nil, nil, fmt.Errorf("attribute %q: expected a scalar value, found %v", key, tok)
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return r, attributes, nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("reading property name: %v", err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected property name, found %v", tok)
	}
	return key, nil
}
