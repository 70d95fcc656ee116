package rest

import (
	_ "embed"
	"net/http"
)

//go:embed docs/api.html
var docsPage []byte

// DocsHandler serves the embedded API reference page.
type DocsHandler struct{}

// NewDocsHandler creates a DocsHandler.
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

// Serve handles GET /docs.
func (h *DocsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(docsPage) //nolint:errcheck
}
