package domain

import "time"

// Default configuration values.
const (
	// DefaultBaseURL is the eCFR search endpoint queried on fetch.
	DefaultBaseURL = "https://www.ecfr.gov/api/search/v1/results"

	// DefaultPerPage is the page size requested from the search API.
	DefaultPerPage = 100

	// DefaultTimeout bounds one search request.
	DefaultTimeout = 30 * time.Second
)

// Settings holds the application configuration.
type Settings struct {
	// BaseURL is the search API endpoint.
	BaseURL string `toml:"base_url"`

	// PerPage is the page size sent with each search request.
	PerPage int `toml:"per_page"`

	// DataDir is where snapshot.json and historical.json live.
	// Empty means the default directory under the user's home.
	DataDir string `toml:"data_dir"`

	// Timeout bounds one search request.
	Timeout time.Duration `toml:"timeout"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL: DefaultBaseURL,
		PerPage: DefaultPerPage,
		Timeout: DefaultTimeout,
	}
}
