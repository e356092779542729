/*
Package sqlite3adapter provides an implementation of the Adapter interface
in the sqldataset package that works over an SQLite3 database file.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pbanos/id3/dataset/sqldataset"
)

type adapter struct {
	*sql.DB
}

/*
New takes a path to an SQLite3 database file and returns an Adapter that works
on the file's database or an error if it fails to open as an sqlite3 database.
*/
func New(path string) (sqldataset.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", path, err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", path, err)
	}
	return &adapter{db}, nil
}

func (a *adapter) QuoteIdentifier(name string) (string, error) {
	return sqldataset.QuoteIdentifier(name, false)
}

func (a *adapter) Placeholder(int) string {
	return "?"
}
