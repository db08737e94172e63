package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// SnapshotTTLSeconds is how long the in-memory inventory snapshot may
	// serve reads before it is refetched from the store. Zero disables
	// snapshot reuse so every operation refetches.
	SnapshotTTLSeconds int `mapstructure:"snapshot_ttl_seconds" default:"5"`
}

// SnapshotTTL returns the snapshot reuse window as a duration.
func (c Config) SnapshotTTL() time.Duration {
	return time.Duration(c.SnapshotTTLSeconds) * time.Second
}
