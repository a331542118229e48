package model

import "time"

// Pokemon is the reviewed entity.
type Pokemon struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	BirthDate time.Time `db:"birth_date"`
}
