// Package file provides the TOML-based configuration store.
// Settings persist to a single file in the cerebra config directory.
package file
