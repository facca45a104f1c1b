package server

import (
	"net/http"

	"asset-registry/internal/config"
	"asset-registry/internal/handlers"
	"asset-registry/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, assets *handlers.AssetHandler) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("asset_registry_session", store))

	r.Use(middleware.FormSession())

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/assets")
	})

	// LIST + DELETE FLOW
	r.GET("/assets", assets.List)
	r.GET("/assets/:id/delete", assets.ShowConfirmDelete)
	r.POST("/assets/:id/delete", assets.Delete)

	// ADD FORM
	r.GET("/assets/new", assets.ShowNew)
	r.POST("/assets/new", assets.SubmitNew)
	r.POST("/assets/new/cancel", assets.CancelNew)
	r.POST("/assets/new/code", assets.GenerateCode)
	r.POST("/assets/new/category", assets.SetNewCategory)
	r.POST("/assets/new/images", assets.DropNewImages)
	r.POST("/assets/new/files", assets.DropNewFiles)
	r.POST("/assets/new/images/:entry/remove", assets.RemoveNewImage)
	r.POST("/assets/new/files/:entry/remove", assets.RemoveNewFile)
	r.GET("/assets/new/previews/:entry", assets.PreviewNew)

	// EDIT FORM
	r.GET("/assets/:id/edit", assets.ShowEdit)
	r.POST("/assets/:id/edit", assets.SubmitEdit)
	r.POST("/assets/:id/edit/cancel", assets.CancelEdit)
	r.POST("/assets/:id/edit/category", assets.SetEditCategory)
	r.POST("/assets/:id/edit/images", assets.DropEditImages)
	r.POST("/assets/:id/edit/files", assets.DropEditFiles)
	r.POST("/assets/:id/edit/images/:entry/remove", assets.RemoveEditImage)
	r.POST("/assets/:id/edit/files/:entry/remove", assets.RemoveEditFile)
	r.GET("/assets/:id/edit/previews/:entry", assets.PreviewEdit)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
