package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/id3/dataset"
	csvdataset "github.com/pbanos/id3/dataset/csv"
	jsondataset "github.com/pbanos/id3/dataset/json"
	"github.com/pbanos/id3/dataset/mongodataset"
	"github.com/pbanos/id3/dataset/redisdataset"
	"github.com/pbanos/id3/dataset/sqldataset"
	"github.com/pbanos/id3/dataset/sqldataset/pgadapter"
	"github.com/pbanos/id3/dataset/sqldataset/sqlite3adapter"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/redis.v5"
)

type storeKind int

const (
	jsonStore storeKind = iota
	csvStore
	sqlite3Store
	postgresStore
	mongoStore
	redisStore
)

func (sk storeKind) String() string {
	switch sk {
	case csvStore:
		return "CSV"
	case sqlite3Store:
		return "SQLite3"
	case postgresStore:
		return "PostgreSQL"
	case mongoStore:
		return "MongoDB"
	case redisStore:
		return "Redis"
	default:
		return "JSON"
	}
}

/*
resolveStore returns the kind of store a location given on the command line
refers to: database URLs by their scheme, files by their extension, and JSON
for anything else, including STDIN/STDOUT.
*/
func resolveStore(location string) storeKind {
	switch {
	case strings.HasPrefix(location, "postgresql://"), strings.HasPrefix(location, "postgres://"):
		return postgresStore
	case strings.HasPrefix(location, "mongodb://"):
		return mongoStore
	case strings.HasPrefix(location, "redis://"):
		return redisStore
	case strings.HasSuffix(location, ".db"), strings.HasSuffix(location, ".sqlite"):
		return sqlite3Store
	case strings.HasSuffix(location, ".csv"):
		return csvStore
	default:
		return jsonStore
	}
}

/*
storeConfig holds the flags describing where a dataset is read from or
written to: a location plus the table, collection or key within it for
database stores.
*/
type storeConfig struct {
	*rootCmdConfig
	purpose        string
	location       string
	table          string
	collection     string
	key            string
	undefinedValue string
}

func (sc *storeConfig) addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&(sc.location), "input", "i", "", "path to an input JSON, CSV (.csv) or SQLite3 (.db, .sqlite) file, or a PostgreSQL, MongoDB or Redis URL with the "+sc.purpose+" (defaults to STDIN, interpreted as JSON)")
	cmd.Flags().StringVar(&(sc.table), "table", "", "table holding the records on SQL databases")
	cmd.Flags().StringVar(&(sc.collection), "collection", "", "collection holding the records on MongoDB databases")
	cmd.Flags().StringVar(&(sc.key), "key", "", "key of the list holding the records on Redis")
	cmd.Flags().StringVarP(&(sc.undefinedValue), "undefined-value", "u", csvdataset.DefaultUndefinedValue, "value that marks an attribute as undefined on CSV files")
}

func (sc *storeConfig) addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&(sc.location), "output", "o", "", "path to an output JSON lines, CSV (.csv) or SQLite3 (.db, .sqlite) file, or a PostgreSQL, MongoDB or Redis URL to store the "+sc.purpose+" (defaults to STDOUT, as JSON lines)")
	cmd.Flags().StringVar(&(sc.table), "output-table", "", "table to store the records on SQL databases")
	cmd.Flags().StringVar(&(sc.collection), "output-collection", "", "collection to store the records on MongoDB databases")
	cmd.Flags().StringVar(&(sc.key), "output-key", "", "key of the list to store the records on Redis")
}

func (sc *storeConfig) Validate() error {
	kind := resolveStore(sc.location)
	switch kind {
	case sqlite3Store, postgresStore:
		if sc.table == "" {
			return fmt.Errorf("a table is required to use %s for the %s", kind, sc.purpose)
		}
	case mongoStore:
		if sc.collection == "" {
			return fmt.Errorf("a collection is required to use %s for the %s", kind, sc.purpose)
		}
	case redisStore:
		if sc.key == "" {
			return fmt.Errorf("a key is required to use %s for the %s", kind, sc.purpose)
		}
	}
	return nil
}

// read loads the dataset and its attributes from the configured input.
func (sc *storeConfig) read(ctx context.Context) (dataset.Dataset, []string, error) {
	kind := resolveStore(sc.location)
	var ds dataset.Dataset
	var attributes []string
	var err error
	switch kind {
	case csvStore:
		sc.Logf("Reading %s from CSV file %s...", sc.purpose, sc.location)
		ds, attributes, err = csvdataset.ReadFile(sc.location, sc.undefinedValue)
	case sqlite3Store:
		sc.Logf("Creating SQLite3 adapter for file %s to read %s...", sc.location, sc.purpose)
		var adapter sqldataset.Adapter
		adapter, err = sqlite3adapter.New(sc.location)
		if err != nil {
			return nil, nil, err
		}
		defer adapter.Close()
		ds, attributes, err = sqldataset.Read(ctx, adapter, sc.table)
	case postgresStore:
		sc.Logf("Creating PostgreSQL adapter to read %s...", sc.purpose)
		var adapter sqldataset.Adapter
		adapter, err = pgadapter.New(sc.location)
		if err != nil {
			return nil, nil, err
		}
		defer adapter.Close()
		ds, attributes, err = sqldataset.Read(ctx, adapter, sc.table)
	case mongoStore:
		sc.Logf("Connecting to MongoDB to read %s...", sc.purpose)
		var session *mgo.Session
		session, err = mgo.Dial(sc.location)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to MongoDB: %v", err)
		}
		defer session.Close()
		ds, attributes, err = mongodataset.Read(ctx, session, sc.collection)
	case redisStore:
		sc.Logf("Connecting to Redis to read %s...", sc.purpose)
		var client *redis.Client
		client, err = redisClient(sc.location)
		if err != nil {
			return nil, nil, err
		}
		defer client.Close()
		ds, attributes, err = redisdataset.Read(ctx, client, sc.key)
	default:
		if sc.location == "" {
			sc.Logf("Reading %s from STDIN...", sc.purpose)
			ds, attributes, err = jsondataset.Read(os.Stdin)
		} else {
			sc.Logf("Reading %s from JSON file %s...", sc.purpose, sc.location)
			ds, attributes, err = jsondataset.ReadFile(sc.location)
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", sc.purpose, err)
	}
	sc.Logf("Read %d records with %d attributes", len(ds), len(attributes))
	return ds, attributes, nil
}

/*
write stores the dataset with the given attributes onto the configured
output. Datasets without an output location are written to stdout.
*/
func (sc *storeConfig) write(ctx context.Context, stdout io.Writer, ds dataset.Dataset, attributes []string) error {
	kind := resolveStore(sc.location)
	var err error
	switch kind {
	case csvStore, jsonStore:
		w := stdout
		if sc.location != "" {
			var f *os.File
			f, err = os.Create(sc.location)
			if err != nil {
				return fmt.Errorf("writing %s: %v", sc.purpose, err)
			}
			defer f.Close()
			w = f
		}
		if kind == csvStore {
			err = csvdataset.Write(w, ds, attributes, csvdataset.DefaultUndefinedValue)
		} else {
			err = jsondataset.WriteLines(w, ds, attributes)
		}
	case sqlite3Store, postgresStore:
		var adapter sqldataset.Adapter
		if kind == sqlite3Store {
			adapter, err = sqlite3adapter.New(sc.location)
		} else {
			adapter, err = pgadapter.New(sc.location)
		}
		if err != nil {
			return err
		}
		defer adapter.Close()
		_, err = sqldataset.Write(ctx, adapter, sc.table, ds, attributes)
	case mongoStore:
		var session *mgo.Session
		session, err = mgo.Dial(sc.location)
		if err != nil {
			return fmt.Errorf("connecting to MongoDB: %v", err)
		}
		defer session.Close()
		_, err = mongodataset.Write(ctx, session, sc.collection, ds, attributes)
	case redisStore:
		var client *redis.Client
		client, err = redisClient(sc.location)
		if err != nil {
			return err
		}
		defer client.Close()
		_, err = redisdataset.Write(ctx, client, sc.key, ds, attributes)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", sc.purpose, err)
	}
	sc.Logf("Wrote %d records to %s", len(ds), kind)
	return nil
}

func redisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing Redis URL: %v", err)
	}
	return redis.NewClient(opts), nil
}
