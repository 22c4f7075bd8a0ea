package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// uploadDiagram turns an uploaded image into a data URL the client stores as diagramUrl.
func (h *Handler) uploadDiagram(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing file"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "failed to read file"})
		return
	}
	defer f.Close()

	url, err := h.diagrams.Encode(f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "diagram_url": url})
}
