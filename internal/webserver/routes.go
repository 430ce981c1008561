package webserver

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/spboyer/mixlab/internal/webapi"
	"github.com/spboyer/mixlab/web"
)

// registerRoutes sets up API and page routes on the given mux.
func registerRoutes(mux *http.ServeMux, cfg Config) error {
	webapi.RegisterRoutes(mux, webapi.NewHandlers(cfg.Backend, cfg.Form, nil))
	mux.HandleFunc("/api/", handleAPINotFound)

	handler, err := pageHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize page handler: %w", err)
	}
	mux.Handle("/", handler)
	return nil
}

// handleAPINotFound keeps unknown API paths from falling through to the page.
func handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(webapi.ErrorResponse{ //nolint:errcheck
		Error: "no such endpoint: " + r.Method + " " + r.URL.Path,
		Code:  http.StatusNotFound,
	})
}

// pageHandler serves the embedded page assets. Unknown paths get index.html.
func pageHandler() (http.Handler, error) {
	distFS, err := fs.Sub(web.Assets, "dist")
	if err != nil {
		return nil, fmt.Errorf("failed to create sub filesystem for web/dist: %w", err)
	}

	fileServer := http.FileServer(http.FS(distFS))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if path != "/" {
			cleanPath := strings.TrimPrefix(path, "/")
			if f, err := distFS.Open(cleanPath); err == nil {
				f.Close() //nolint:errcheck
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	}), nil
}
