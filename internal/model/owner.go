package model

// Owner belongs to one Country and owns many Pokemon (through pokemon_owners).
type Owner struct {
	ID        int    `db:"id"`
	Name      string `db:"name"`
	Gender    string `db:"gender"`
	CountryID int    `db:"country_id"`
}
