package notes

import _ "embed"

// Version is the current release, embedded from the VERSION file.
//
//go:embed VERSION
var Version string
