package app

const (
	// MainWindowName is the name of the single application window
	MainWindowName = "main"

	// MainDocument is the bundled document loaded into the main window
	MainDocument = "index.html"

	// ReadyEvent is emitted by the document once it has painted and can be shown
	ReadyEvent = "snail:ready"
)

// Version is set at build time via ldflags
var Version = "0.1.0-dev"
