// Package icebox holds project-wide metadata.
package icebox

// Version is the current icebox release.
const Version = "0.1.0"
