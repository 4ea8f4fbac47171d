// Package queries contains the read side of the port engine.
//
// Query handlers read the database directly with SQL and return flat read
// models. A lookup that matches nothing is a normal result: single-entity
// handlers return a nil response and a nil error.
package queries
