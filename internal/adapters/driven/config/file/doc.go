// Package file provides a TOML-backed configuration store kept at
// ~/.docflow/config.toml.
package file
