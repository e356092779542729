/*
Package sqldataset reads datasets from and writes them to SQL database
tables.

A table holds one record per row and one attribute per column, in column
order. Values are read as text, and NULL leaves the attribute undefined on
the record. Access to a specific database engine is provided by an Adapter,
see the sqlite3adapter and pgadapter packages.
*/
package sqldataset
