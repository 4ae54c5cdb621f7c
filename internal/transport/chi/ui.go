package chi

import (
	_ "embed"
	"net/http"
)

//go:embed ui/index.html
var indexHTML []byte

// Index handles GET / and serves the embedded single-page UI.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(indexHTML)
}
