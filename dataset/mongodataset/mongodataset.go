/*
Package mongodataset reads datasets from and writes them to MongoDB
collections.

Each document of a collection is a record. Its top-level fields are the
record's attributes, except for the reserved _id field, which is ignored.
*/
package mongodataset

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pbanos/id3/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const idField = "_id"

/*
Read takes a context, a MongoDB session and a collection name and returns
the dataset made of the documents of the collection on the session's default
database, together with the attributes found on them in order of first
appearance, or an error.
*/
func Read(ctx context.Context, session *mgo.Session, collection string) (dataset.Dataset, []string, error) {
	iter := session.DB("").C(collection).Find(nil).Iter()
	ds := dataset.Dataset{}
	var attributes []string
	seen := make(map[string]bool)
	var doc bson.D
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			iter.Close()
			return nil, nil, err
		}
		r, keys, err := DecodeDocument(doc)
		if err != nil {
			iter.Close()
			return nil, nil, fmt.Errorf("document #%d of collection %s: %w", len(ds), collection, err)
		}
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				attributes = append(attributes, k)
			}
		}
		ds = append(ds, r)
		doc = nil
	}
	if err := iter.Close(); err != nil {
		return nil, nil, fmt.Errorf("reading collection %s: %v", collection, err)
	}
	return ds, attributes, nil
}

/*
Write takes a context, a MongoDB session, a collection name, a dataset and
the attributes to store and inserts a document per record on the collection
of the session's default database. Attributes a record does not define are
left out of its document. It returns the number of documents inserted or an
error.
*/
func Write(ctx context.Context, session *mgo.Session, collection string, ds dataset.Dataset, attributes []string) (int, error) {
	for _, attr := range attributes {
		if err := validateFieldName(attr); err != nil {
			return 0, err
		}
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(ds) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(ds))
	for _, r := range ds {
		doc := make(bson.D, 0, len(attributes))
		for _, attr := range attributes {
			if v, ok := r[attr]; ok {
				doc = append(doc, bson.DocElem{Name: attr, Value: v})
			}
		}
		docs = append(docs, doc)
	}
	if err := session.DB("").C(collection).Insert(docs...); err != nil {
		return 0, fmt.Errorf("inserting into collection %s: %v", collection, err)
	}
	return len(ds), nil
}

/*
DecodeDocument takes a BSON document and returns the record it represents
and its attributes in document order. Strings, booleans and numbers are
turned into their textual form, null values leave the attribute undefined
and embedded documents or arrays are reported as errors.
*/
func DecodeDocument(doc bson.D) (dataset.Record, []string, error) {
	r := make(dataset.Record, len(doc))
	keys := make([]string, 0, len(doc))
	seen := make(map[string]bool, len(doc))
	for _, e := range doc {
		if e.Name == idField {
			continue
		}
		if seen[e.Name] {
			return nil, nil, fmt.Errorf("duplicate field %q", e.Name)
		}
		seen[e.Name] = true
		keys = append(keys, e.Name)
		if e.Value == nil {
			continue
		}
		v, err := valueString(e.Value)
		if err != nil {
			return nil, nil, fmt.Errorf("field %q: %v", e.Name, err)
		}
		r[e.Name] = v
	}
	return r, keys, nil
}

func valueString(v interface{}) (string, error) {
	switch tv := v.(type) {
	case string:
		return tv, nil
	case bool:
		return strconv.FormatBool(tv), nil
	case int:
		return strconv.Itoa(tv), nil
	case int32:
		return strconv.FormatInt(int64(tv), 10), nil
	case int64:
		return strconv.FormatInt(tv, 10), nil
	case float64:
		return strconv.FormatFloat(tv, 'g', -1, 64), nil
	case bson.Symbol:
		return string(tv), nil
	case bson.ObjectId:
		return tv.Hex(), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

func validateFieldName(name string) error {
	if name == idField {
		return fmt.Errorf("invalid attribute name %q: reserved collection field", idField)
	}
	if name == "" || strings.ContainsAny(name, ".$") {
		return fmt.Errorf("invalid attribute name %q: empty or contains reserved characters %q or %q", name, ".", "$")
	}
	return nil
}
