package catalog

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts read endpoints on public and CRUD endpoints on admin.
func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	mount(public, admin, "destinations", "Destination", h.service.Destinations)
	mount(public, admin, "hotels", "Hotel", h.service.Hotels)
	mount(public, admin, "packages", "Package", h.service.Packages)
	mount(public, admin, "cruises", "Cruise", h.service.Cruises)
	mount(public, admin, "drivers", "Driver", h.service.Drivers)
	mount(public, admin, "events", "Event", h.service.Events)
}

func mount[T, R, V any](public, admin *gin.RouterGroup, path, what string, res *Resource[T, R, V]) {
	h := &resourceHandler[T, R, V]{res: res, what: what}

	public.GET("/"+path, h.List)
	public.GET("/"+path+"/:id", h.Get)

	admin.POST("/"+path, h.Create)
	admin.PUT("/"+path+"/:id", h.Update)
	admin.DELETE("/"+path+"/:id", h.Delete)
}
