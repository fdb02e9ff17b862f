package http

import "github.com/gin-gonic/gin"

// Register mounts the idea routes on an API group.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/ideas", h.Submit)
}
