// Package initscript injects the startup script that reveals the hidden main window
// once the bundled document has loaded.
package initscript

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

// Delay is how long the script waits after DOMContentLoaded before showing the window.
// Client side frameworks usually paint within this window; documents that can signal
// readiness should emit the ready event instead.
const Delay = 1000 * time.Millisecond

// marker identifies an already injected fragment
const marker = `data-snail-init`

var script = fmt.Sprintf(`<script %s>
  document.addEventListener('DOMContentLoaded', () => {
    setTimeout(() => {
      window.runtime.WindowShow();
    }, %d);
  });
</script>`, marker, Delay.Milliseconds())

// Script returns the initialization fragment
func Script() string {
	return script
}

// Inject places the fragment before </head>, falling back to <body> or the start of the document.
// Documents that already carry the fragment are returned unchanged.
func Inject(html []byte) []byte {
	if bytes.Contains(html, []byte(marker)) {
		return html
	}
	lower := bytes.ToLower(html)
	at := bytes.Index(lower, []byte("</head>"))
	if at < 0 {
		at = bytes.Index(lower, []byte("<body"))
	}
	if at < 0 {
		at = 0
	}

	out := make([]byte, 0, len(html)+len(script))
	out = append(out, html[:at]...)
	out = append(out, script...)
	out = append(out, html[at:]...)
	return out
}

// Middleware rewrites HTML responses of the asset server so that they carry the fragment
func Middleware() assetserver.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := httptest.NewRecorder()
			next.ServeHTTP(rec, r)

			body := rec.Body.Bytes()
			if rec.Code == http.StatusOK && isHTML(rec.Header().Get("Content-Type"), r.URL.Path) {
				body = Inject(body)
			}

			for k, v := range rec.Header() {
				w.Header()[k] = v
			}
			w.Header().Set("Content-Length", strconv.Itoa(len(body)))
			w.WriteHeader(rec.Code)
			_, _ = w.Write(body)
		})
	}
}

func isHTML(contentType, path string) bool {
	if contentType != "" {
		return strings.HasPrefix(strings.ToLower(contentType), "text/html")
	}
	return path == "/" || strings.HasSuffix(path, ".html") || strings.HasSuffix(path, ".htm")
}
