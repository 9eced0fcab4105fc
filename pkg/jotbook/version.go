// Package jotbook carries module-level metadata.
package jotbook

// Version is the jotbook release version, shown by the CLI version
// command and the root --version flag.
const Version = "0.3.0"
