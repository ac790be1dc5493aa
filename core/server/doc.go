// Package server holds configuration for the optional read-only HTTP surface.
package server
