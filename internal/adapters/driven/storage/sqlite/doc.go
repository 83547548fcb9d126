// Package sqlite persists the local activity trail in a SQLite
// database so it survives restarts.
package sqlite
