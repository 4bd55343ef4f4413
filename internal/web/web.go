// internal/web/web.go
// Package web serves a pre-built single-page front end.
package web

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"riseup/internal/logging"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// spaHandler serves a single-page application, falling back to the index
// document for any path that is not a file so client-side routes resolve.
type spaHandler struct {
	contentFS fs.FS
	indexPath string // e.g., "index.html"
}

// ServeHTTP handles serving the SPA.
func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Use 'path.Clean' for FS paths, not 'filepath.Clean'
	filePath := path.Clean(strings.TrimPrefix(r.URL.Path, "/"))
	if filePath == "" || filePath == "." || filePath == "/" {
		filePath = h.indexPath
	}

	file, err := h.contentFS.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			h.serveIndex(w, r)
			return
		}
		logging.Log.Errorf("spaHandler: error opening file %s: %v", filePath, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		logging.Log.Errorf("spaHandler: error stating file %s: %v", filePath, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if fileInfo.IsDir() {
		h.serveIndex(w, r)
		return
	}

	// http.ServeContent needs a seeker; fs.File does not guarantee one.
	seeker, ok := file.(io.ReadSeeker)
	if !ok {
		fileBytes, err := io.ReadAll(file)
		if err != nil {
			logging.Log.Errorf("spaHandler: error reading file %s: %v", filePath, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		seeker = bytes.NewReader(fileBytes)
	}
	http.ServeContent(w, r, filePath, fileInfo.ModTime(), seeker)
}

func (h spaHandler) serveIndex(w http.ResponseWriter, r *http.Request) {
	indexBytes, err := fs.ReadFile(h.contentFS, h.indexPath)
	if err != nil {
		logging.Log.Errorf("spaHandler: could not read %s: %v", h.indexPath, err)
		http.Error(w, "Internal server error: index.html not found", http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, h.indexPath, time.Time{}, bytes.NewReader(indexBytes))
}

// AddRoutes mounts the front end as the router's catch-all handler.
// It must be registered after every API route.
func AddRoutes(router *mux.Router, content fs.FS, indexPath string) {
	router.PathPrefix("/").Handler(spaHandler{
		contentFS: content,
		indexPath: indexPath,
	})
}

// AddDirRoutes serves the front end from a directory on disk.
func AddDirRoutes(router *mux.Router, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New("static_dir is not a directory: " + dir)
	}
	AddRoutes(router, os.DirFS(dir), "index.html")
	return nil
}
