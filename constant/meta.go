// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Subplay is the canonical application identifier used for filesystem paths and CLI branding.
	Subplay = "subplay"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// Repository is the GitHub owner/name pair releases are published under.
	Repository = "subplay/subplay"
)

// Build metadata, overridden at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
