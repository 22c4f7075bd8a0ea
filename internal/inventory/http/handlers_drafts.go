package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/domain"
)

type addConnectionReq struct {
	Draft      domain.Draft           `json:"draft"`
	Connection domain.ConnectionDraft `json:"connection"`
}

type removeConnectionReq struct {
	Draft domain.Draft `json:"draft"`
}

// addConnection appends a connection to the posted form draft. Nothing is stored.
func (h *Handler) addConnection(c *gin.Context) {
	var req addConnectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	d := req.Draft.AddConnection(req.Connection)
	c.JSON(http.StatusOK, gin.H{"ok": true, "draft": d})
}

func (h *Handler) removeConnection(c *gin.Context) {
	id := strings.TrimSpace(c.Param("connection_id"))

	var req removeConnectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	d := req.Draft.RemoveConnection(id)
	c.JSON(http.StatusOK, gin.H{"ok": true, "draft": d})
}
