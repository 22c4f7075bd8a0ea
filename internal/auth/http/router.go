package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/session", h.GetSession)
	rg.POST("/sign-out", h.SignOut)
}
