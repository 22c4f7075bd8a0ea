package http

import "github.com/gin-gonic/gin"

// Register attaches inventory routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	p := rg.Group("/projects")
	p.GET("", h.list)
	p.POST("", h.create)
	p.GET("/stats", h.stats)
	p.GET("/export.xlsx", h.exportXLSX)
	p.GET("/:id", h.get)
	p.PUT("/:id", h.update)
	p.DELETE("/:id", h.delete)

	rg.POST("/drafts/connections", h.addConnection)
	rg.DELETE("/drafts/connections/:connection_id", h.removeConnection)

	rg.POST("/diagrams", h.uploadDiagram)
	rg.GET("/development-types", h.developmentTypes)
}
