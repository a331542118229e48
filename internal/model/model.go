// Package model holds the persistence records of the review domain.
//
// The structs mirror the database rows one to one. The `db` tags are the
// column names used by pgx.RowToStructByName in the repository layer.
package model
