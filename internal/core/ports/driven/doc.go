// Package driven defines the secondary ports of the core: interfaces the
// core depends on, implemented by adapters (remote API connector, file
// and memory storage, config).
package driven
