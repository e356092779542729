package sqlite3adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndRead(t *testing.T) {
	ctx := context.Background()
	a, err := New(filepath.Join(t.TempDir(), "weather.db"))
	require.NoError(t, err)
	defer a.Close()

	ds := dataset.Dataset{
		{"outlook": "sunny", "windy": "false", "play": "no"},
		{"outlook": "rainy", "play": "yes"},
		{"outlook": "overcast", "windy": "true", "play": "yes"},
	}
	attributes := []string{"outlook", "windy", "play"}
	n, err := sqldataset.Write(ctx, a, "weather", ds, attributes)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	read, readAttributes, err := sqldataset.Read(ctx, a, "weather")
	require.NoError(t, err)
	assert.Equal(t, attributes, readAttributes)
	assert.Equal(t, ds, read)
}

func TestRead_IgnoresColumns(t *testing.T) {
	ctx := context.Background()
	a, err := New(filepath.Join(t.TempDir(), "weather.db"))
	require.NoError(t, err)
	defer a.Close()

	_, err = a.ExecContext(ctx, `CREATE TABLE weather (id INTEGER PRIMARY KEY, outlook TEXT, play TEXT)`)
	require.NoError(t, err)
	_, err = a.ExecContext(ctx, `INSERT INTO weather (outlook, play) VALUES ('sunny', 'no'), ('overcast', 'yes')`)
	require.NoError(t, err)

	ds, attributes, err := sqldataset.Read(ctx, a, "weather", "id")
	require.NoError(t, err)
	assert.Equal(t, []string{"outlook", "play"}, attributes)
	assert.Equal(t, dataset.Dataset{
		{"outlook": "sunny", "play": "no"},
		{"outlook": "overcast", "play": "yes"},
	}, ds)
}

func TestRead_MissingTable(t *testing.T) {
	a, err := New(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer a.Close()

	_, _, err = sqldataset.Read(context.Background(), a, "weather")
	assert.Error(t, err)
}
