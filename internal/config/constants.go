// Package config holds ambient, module-wide constants: the engine version,
// recognized script extensions, and test/LSP-style mode flags that a few
// packages consult to normalize output for golden tests.
package config

// Version is the current Morel engine version.
var Version = "0.1.0"

const SourceFileExt = ".sml"

// SourceFileExtensions are all recognized script extensions for "use" and
// for the CLI's file-argument handling.
var SourceFileExtensions = []string{".sml", ".morel"}

// TrimSourceExt removes any recognized source extension from a filename.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt reports whether path ends with a recognized script extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode normalizes generated type-variable names (t1, t2, ... -> t?)
// so that type-inference golden tests are deterministic across runs.
var IsTestMode = false
