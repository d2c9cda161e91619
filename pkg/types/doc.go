// Package types defines the Icebox and Table interfaces, entity types,
// and standard error types for the Icebox inventory system.
package types
