// Package rest implements the driven API ports against the
// document-processing service's REST endpoints.
package rest
