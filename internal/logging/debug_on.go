//go:build dev || debug

package logging

// Debug reports whether this binary was built in debug configuration (wails dev or wails build -debug)
const Debug = true
