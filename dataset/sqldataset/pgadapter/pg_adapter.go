/*
Package pgadapter provides an implementation of the
Adapter interface in the sqldataset package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/pbanos/id3/dataset/sqldataset"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

type adapter struct {
	*sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqldataset.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to PostgreSQL: %v", err)
	}
	return &adapter{db}, nil
}

// QuoteIdentifier accepts schema-qualified names like public.weather.
func (a *adapter) QuoteIdentifier(name string) (string, error) {
	return sqldataset.QuoteIdentifier(name, true)
}

func (a *adapter) Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}
