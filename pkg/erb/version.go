// Package erb holds project-level metadata for the ERB rulebook tools.
package erb

// Version is the current release version of the erb CLI and libraries.
const Version = "0.1.0"
