package model

// Reviewer writes Reviews.
type Reviewer struct {
	ID        int    `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}
