// Package storage provides a thin client for the object storage bucket that
// receives inventory CSV uploads.
//
// The Client interface is deliberately read-only (bucket check, listing,
// download): source selection only ever needs to find and fetch the newest CSV.
// A testify-based mock lives in the mocks subpackage.
package storage
