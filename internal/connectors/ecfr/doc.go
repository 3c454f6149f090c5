// Package ecfr implements the SearchFetcher port against the eCFR
// public search API: a single anonymous GET with a per_page parameter,
// proactively throttled and without retries.
package ecfr
