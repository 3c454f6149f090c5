// Package services implements the core pipeline behind the driving
// ports: statistics computation with content checksums, historical
// series retention, and the snapshot orchestration that ties fetching,
// parsing and persistence together.
package services
