// Package memory provides in-memory store implementations, used by
// service tests and as a fallback when no data directory is writable.
package memory
