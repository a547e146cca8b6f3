// Package api contains the HTTP handlers exposing the content-generation
// flows, plus the mapping from the flow error taxonomy to HTTP statuses.
package api
