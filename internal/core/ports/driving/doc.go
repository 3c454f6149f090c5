// Package driving defines the primary ports of the core: interfaces
// offered to the presentation layer (CLI, HTTP API, TUI).
package driving
