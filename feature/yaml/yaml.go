/*
Package yaml provides methods to parse feature.Schema specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/pbanos/id3/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadSchema takes a slice of bytes with a schema specification in YAML and
returns the schema parsed from it or an error.
The YAML is expected to be an object with a features property and an
optional target property. The value for features should be an object with a
property for each feature, in the order they appear on records, whose value
is the list of values it may take, or null (or an empty list) to accept any
value. The target, if given, must name one of the features:

	target: play
	features:
	  outlook: [sunny, overcast, rainy]
	  windy: [true, false]
	  play: ["yes", "no"]

Values are compared as text after parsing, so unquoted yes/no or on/off
become "true"/"false".
*/
func ReadSchema(md []byte) (*feature.Schema, error) {
	metadata := struct {
		Target   string
		Features yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml schema: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	schema := &feature.Schema{Target: metadata.Target}
	for _, item := range metadata.Features {
		fn := fmt.Sprintf("%v", item.Key)
		switch values := item.Value.(type) {
		case nil:
			schema.Features = append(schema.Features, feature.New(fn, nil))
		case []interface{}:
			stringVs := []string{}
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			schema.Features = append(schema.Features, feature.New(fn, stringVs))
		default:
			return nil, fmt.Errorf("invalid declaration of type %T for feature %s", item.Value, fn)
		}
	}
	if err = schema.Check(); err != nil {
		return nil, err
	}
	return schema, nil
}

/*
ReadSchemaFromFile takes a filepath string, reads its contents and uses
ReadSchema to parse it and return the parsed schema or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadSchemaFromFile(filepath string) (*feature.Schema, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading schema yml file %s: %v", filepath, err)
	}
	schema, err := ReadSchema(md)
	if err != nil {
		err = fmt.Errorf("parsing schema yml file %s: %v", filepath, err)
	}
	return schema, err
}
