package model

// Category groups Pokemon (many-to-many through pokemon_categories).
type Category struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}
