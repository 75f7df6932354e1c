// Package database manages the relational database connection.
//
// It wraps GORM connection setup for the supported drivers (MySQL for
// deployments, SQLite for local use and tests) with sane pool settings and
// an initial ping so misconfiguration fails fast instead of on the first
// query.
//
// The database is only used by the snapshot store's database backend; the
// object storage backend does not need it.
package database
