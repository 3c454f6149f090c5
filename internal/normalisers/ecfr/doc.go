// Package ecfr normalises eCFR search API responses. The API returns
// heterogeneous item shapes depending on result type and vintage, so
// every Document field resolves through an ordered fallback chain over
// alternative field names and nested headings/hierarchy structures.
package ecfr
