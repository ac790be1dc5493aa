// Package database manages the relational store connection.
//
// The collection is stored in SQLite by default (a single local file), with an
// optional MySQL backend for shared deployments. Either way the package hands
// back a *gorm.DB that the rest of the application treats as an explicitly
// passed handle; there is no package-level singleton.
//
// Connections are verified with a ping before being returned, so commands can
// abort before any row processing when the store is unreachable.
package database
