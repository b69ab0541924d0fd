// Package darwin provides macOS-specific platform implementations.
package darwin
