package json

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weatherDocument = `{
  "name": "weather",
  "data": [
    {"outlook": "sunny", "temperature": 85, "windy": false, "play": "no"},
    {"outlook": "rainy", "temperature": 70.5, "windy": true, "play": "yes"}
  ]
}`

func TestRead_DataProperty(t *testing.T) {
	ds, attributes, err := Read(strings.NewReader(weatherDocument))
	require.NoError(t, err)

	assert.Equal(t, []string{"outlook", "temperature", "windy", "play"}, attributes)
	assert.Equal(t, dataset.Dataset{
		{"outlook": "sunny", "temperature": "85", "windy": "false", "play": "no"},
		{"outlook": "rainy", "temperature": "70.5", "windy": "true", "play": "yes"},
	}, ds)
}

func TestRead_TopLevelArray(t *testing.T) {
	ds, attributes, err := Read(strings.NewReader(`[{"b": "1", "a": "2"}, {"a": "3", "b": null}]`))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, attributes)
	require.Len(t, ds, 2)
	_, ok := ds[1]["b"]
	assert.False(t, ok)
}

func TestRead_Empty(t *testing.T) {
	ds, attributes, err := Read(strings.NewReader(`{"data": []}`))
	require.NoError(t, err)
	assert.Empty(t, ds)
	assert.Empty(t, attributes)
}

func TestRead_Errors(t *testing.T) {
	tests := map[string]string{
		"scalar document": `"data"`,
		"no data":         `{"records": []}`,
		"data not array":  `{"data": {}}`,
		"record not obj":  `[1, 2]`,
		"nested value":    `[{"a": {"b": "c"}}]`,
		"array value":     `[{"a": ["b"]}]`,
		"truncated":       `[{"a": "b"`,
		"empty input":     ``,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := Read(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.json")
	require.NoError(t, os.WriteFile(path, []byte(weatherDocument), 0o600))

	ds, _, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, ds, 2)

	_, _, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDecodeRecord(t *testing.T) {
	r, attributes, err := DecodeRecord([]byte(`{"z": "1", "y": 2, "x": true}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "y", "x"}, attributes)
	assert.Equal(t, dataset.Record{"z": "1", "y": "2", "x": "true"}, r)

	_, _, err = DecodeRecord([]byte(`["z"]`))
	assert.Error(t, err)
	_, _, err = DecodeRecord([]byte(`{"z": "1"} {}`))
	assert.Error(t, err)
}

func TestEncodeRecord(t *testing.T) {
	data, err := EncodeRecord(dataset.Record{"play": "yes", "outlook": "rainy"}, []string{"outlook", "windy", "play"})
	require.NoError(t, err)
	assert.Equal(t, `{"outlook":"rainy","windy":null,"play":"yes"}`, string(data))

	r, attributes, err := DecodeRecord(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"outlook", "windy", "play"}, attributes)
	assert.Equal(t, dataset.Record{"play": "yes", "outlook": "rainy"}, r)
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	ds := dataset.Dataset{{"a": "1"}, {"a": "\"2\""}}
	require.NoError(t, WriteLines(&buf, ds, []string{"a"}))
	assert.Equal(t, "{\"a\":\"1\"}\n{\"a\":\"\\\"2\\\"\"}\n", buf.String())
}
