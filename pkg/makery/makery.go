// Package makery holds module-level metadata shared by the CLI and build
// tooling.
package makery

// Version is the makery release version.
const Version = "0.1.0"
