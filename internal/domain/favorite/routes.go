package favorite

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/favorites")
	{
		g.GET("", h.GetFavorites)
		g.POST("/:kind/:id", h.AddFavorite)
		g.DELETE("/:kind/:id", h.RemoveFavorite)
		g.GET("/:kind/:id/check", h.CheckFavorite)
	}
}
