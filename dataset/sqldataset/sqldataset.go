package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/id3/dataset"
)

/*
Adapter is an interface providing the methods needed to read and write
datasets on a database backend.

QuoteIdentifier takes a table or column name and returns it quoted for use
in statements, or an error if the name cannot be used. Placeholder returns
the bind parameter marker for the nth (1-based) argument of a statement.
*/
type Adapter interface {
	QuoteIdentifier(name string) (string, error)
	Placeholder(n int) string
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Close() error
}

/*
Read takes a context, an Adapter and a table name and returns the dataset
stored on the table and its attributes, which are the table's columns in
order, or an error. Columns whose names are in ignore, like surrogate keys,
are left out of the records.
*/
func Read(ctx context.Context, a Adapter, table string, ignore ...string) (dataset.Dataset, []string, error) {
	qt, err := a.QuoteIdentifier(table)
	if err != nil {
		return nil, nil, err
	}
	rows, err := a.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", qt))
	if err != nil {
		return nil, nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("listing columns of table %s: %v", table, err)
	}
	ignored := make(map[string]bool, len(ignore))
	for _, c := range ignore {
		ignored[c] = true
	}
	var attributes []string
	for _, c := range columns {
		if !ignored[c] {
			attributes = append(attributes, c)
		}
	}
	ds := dataset.Dataset{}
	values := make([]sql.NullString, len(columns))
	dest := make([]interface{}, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err = rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("scanning row #%d of table %s: %v", len(ds), table, err)
		}
		r := make(dataset.Record, len(attributes))
		for i, c := range columns {
			if !ignored[c] && values[i].Valid {
				r[c] = values[i].String
			}
		}
		ds = append(ds, r)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading table %s: %v", table, err)
	}
	return ds, attributes, nil
}

/*
Write takes a context, an Adapter, a table name, a dataset and the
attributes to store, creates the table if it does not exist with a text
column per attribute, and inserts a row per record. Attributes a record does
not define are stored as NULL. It returns the number of records written and
an error if not all of them could be.
*/
func Write(ctx context.Context, a Adapter, table string, ds dataset.Dataset, attributes []string) (int, error) {
	if len(attributes) == 0 {
		return 0, fmt.Errorf("no attributes to store")
	}
	qt, err := a.QuoteIdentifier(table)
	if err != nil {
		return 0, err
	}
	columns := make([]string, 0, len(attributes))
	placeholders := make([]string, 0, len(attributes))
	definitions := make([]string, 0, len(attributes))
	for i, attr := range attributes {
		c, err := a.QuoteIdentifier(attr)
		if err != nil {
			return 0, err
		}
		columns = append(columns, c)
		placeholders = append(placeholders, a.Placeholder(i+1))
		definitions = append(definitions, c+" TEXT NULL")
	}
	createStmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", qt, strings.Join(definitions, ", "))
	if _, err = a.ExecContext(ctx, createStmt); err != nil {
		return 0, fmt.Errorf("ensuring table %s exists: %v", table, err)
	}
	insertStmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", qt, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	args := make([]interface{}, len(attributes))
	for n, r := range ds {
		for i, attr := range attributes {
			if v, ok := r[attr]; ok {
				args[i] = v
			} else {
				args[i] = nil
			}
		}
		if _, err = a.ExecContext(ctx, insertStmt, args...); err != nil {
			return n, fmt.Errorf("inserting record #%d: %v", n, err)
		}
	}
	return len(ds), nil
}

/*
QuoteIdentifier quotes a name with double quotes as standard SQL does. Names
may be qualified with dots when qualified is true, each part being quoted
separately. It returns an error for empty names and names containing double
quotes.
*/
func QuoteIdentifier(name string, qualified bool) (string, error) {
	parts := []string{name}
	if qualified {
		parts = strings.Split(name, ".")
	}
	for i, p := range parts {
		if p == "" {
			return "", fmt.Errorf(`identifier '%s' has an empty name`, name)
		}
		if strings.ContainsAny(p, `"`) {
			return "", fmt.Errorf(`identifier '%s' contains invalid character '"'`, name)
		}
		parts[i] = `"` + p + `"`
	}
	return strings.Join(parts, "."), nil
}
