package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Frontend serves the bundled front end from dir. Paths that do not name a
// file fall back to index.html so client-side routes resolve; unknown /api
// paths get a JSON 404 instead.
func Frontend(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		urlPath := c.Request.URL.Path
		if urlPath == "/api" || strings.HasPrefix(urlPath, "/api/") {
			fail(c, http.StatusNotFound, "resource not found")
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			fail(c, http.StatusNotFound, "resource not found")
			return
		}

		rel := path.Clean("/" + urlPath)
		if rel != "/" {
			file := filepath.Join(dir, filepath.FromSlash(rel))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}
		}

		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.String(http.StatusNotFound, "index.html not found")
			return
		}
		c.File(index)
	}
}
