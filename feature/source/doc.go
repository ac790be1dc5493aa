// Package source resolves where the inventory CSV comes from: a local file
// path, or the newest .csv object in the storage bucket.
package source
