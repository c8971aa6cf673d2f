// Package types defines the rulebook entity types, the Store and Table
// interfaces, and standard error types for the ERB storage system.
package types
