// Package env wires the chart packages to their host environment: a logger
// plus file access, with backend (os) and frontend (wasm fetch) variants.
package env

var (
	// Logger receives diagnostic messages, such as the gradient fallback
	// notice. Hosts may replace it.
	Logger = setupDefaultLogger()
	// ReadFile loads a resource (TTF font, dataset JSON) by path or URL.
	ReadFile = setupDefaultReadFile()
	// WriteFile persists rendered output, e.g. a PNG.
	WriteFile = setupDefaultWriteFile()
)
