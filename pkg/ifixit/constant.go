package ifixit

import "time"

const (
	// DefaultBaseURL is the public iFixit API v2.0 endpoint
	DefaultBaseURL = "https://www.ifixit.com/api/2.0"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 15 * time.Second

	// FlagStarred marks a curated guide in the guide summary flags
	FlagStarred = "GUIDE_STARRED"

	dataTypeWiki = "wiki"
)
