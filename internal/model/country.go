package model

// Country is referenced by many Owners.
type Country struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}
