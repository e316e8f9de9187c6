package static

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Handler serves dashboard assets from a directory on disk.
type Handler struct {
	root string
}

// NewHandler creates a static handler rooted at dir.
func NewHandler(dir string) *Handler {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return &Handler{root: abs}
}

var contentTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
}

func contentTypeFor(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Index serves the dashboard entry page.
func (h *Handler) Index(c *gin.Context) {
	if h.serveFile(c, "index.html") {
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
}

// TryServe attempts to serve the request path as a static file and
// reports whether it did. Unknown paths are left for the caller.
func (h *Handler) TryServe(c *gin.Context) bool {
	return h.serveFile(c, c.Request.URL.Path)
}

func (h *Handler) serveFile(c *gin.Context, name string) bool {
	full, ok := h.resolve(name)
	if !ok {
		return false
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return false
	}
	c.Data(http.StatusOK, contentTypeFor(full), data)
	return true
}

// resolve maps a request path to a file under the root. Paths that
// escape the root, directories and missing files all resolve to false.
func (h *Handler) resolve(name string) (string, bool) {
	clean := path.Clean("/" + name)
	full := filepath.Join(h.root, filepath.FromSlash(clean))
	if full != h.root && !strings.HasPrefix(full, h.root+string(os.PathSeparator)) {
		return "", false
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", false
	}
	return full, true
}
