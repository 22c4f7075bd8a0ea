package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/it-inventory/internal/auth"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/domain"
	"github.com/GoSim-25-26J-441/it-inventory/internal/inventory/export"
)

func (h *Handler) list(c *gin.Context) {
	var q domain.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid query"})
		return
	}

	res := h.projects.Find(c.Request.Context(), auth.UserFirebaseUID(c), q)
	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"projects":    res.Projects,
		"stats":       res.Stats,
		"empty_state": res.EmptyState,
	})
}

func (h *Handler) create(c *gin.Context) {
	var d domain.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		badBody(c)
		return
	}

	p, err := h.projects.Create(c.Request.Context(), auth.UserFirebaseUID(c), d)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	p, err := h.projects.Get(c.Request.Context(), auth.UserFirebaseUID(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var d domain.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		badBody(c)
		return
	}

	p, err := h.projects.Update(c.Request.Context(), auth.UserFirebaseUID(c), id, d)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	deleted := h.projects.Delete(c.Request.Context(), auth.UserFirebaseUID(c), id)
	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
}

func (h *Handler) stats(c *gin.Context) {
	s := h.projects.Stats(c.Request.Context(), auth.UserFirebaseUID(c))
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": s})
}

func (h *Handler) exportXLSX(c *gin.Context) {
	var q domain.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid query"})
		return
	}

	res := h.projects.Find(c.Request.Context(), auth.UserFirebaseUID(c), q)

	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", `attachment; filename="inventory.xlsx"`)
	c.Status(http.StatusOK)
	if err := export.Write(c.Writer, res.Projects); err != nil {
		_ = c.Error(err)
	}
}

type developmentTypeResp struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	LongLabel string `json:"long_label"`
}

func (h *Handler) developmentTypes(c *gin.Context) {
	items := make([]developmentTypeResp, 0, len(domain.KnownDevelopmentTypes))
	for _, t := range domain.KnownDevelopmentTypes {
		items = append(items, developmentTypeResp{Value: t.String(), Label: t.Label(), LongLabel: t.LongLabel()})
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "development_types": items})
}
