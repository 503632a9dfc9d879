// Package pgquery holds the SQL statements and row types used by the
// repositories and read stores. Every method takes the DBTX to run on, so the
// same query works on the pool or inside a transaction.
package pgquery

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
