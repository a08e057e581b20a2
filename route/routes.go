package route

import (
	"resto/auth"
	"resto/controller"
	"resto/utils"
	"resto/view"

	"github.com/gin-gonic/gin"
)

func Register(router *gin.Engine, authCtl *auth.Controller, menuAPI *controller.MenuItemController, menuView *view.MenuItemView) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authCtl.Register)
		authGroup.POST("/login", authCtl.Login)
		authGroup.POST("/refresh", authCtl.Refresh)
	}

	// The JSON API checks authentication inside each handler: create and
	// update validate their fields before the auth check, so a middleware
	// here would reorder the failure responses.
	api := router.Group("/api/menu-items")
	{
		api.POST("", menuAPI.Create)
		api.GET("", menuAPI.GetAll)
		api.GET("/available", menuAPI.GetAvailable)
		api.GET("/category/:category", menuAPI.GetByCategory)
		api.GET("/chart/count-by-category", menuAPI.CountByCategory)
		api.GET("/chart/average-price-by-category", menuAPI.AveragePriceByCategory)
		api.GET("/chart/total-price-by-category", menuAPI.TotalPriceByCategory)
		api.POST("/import", menuAPI.BulkImport)
		api.GET("/:id", menuAPI.GetByID)
		api.PUT("/:id", menuAPI.Update)
		api.DELETE("/:id", menuAPI.Delete)
	}

	views := router.Group("/menu-items")
	views.GET("/image/:filename", menuView.GetImage)
	views.GET("/flash", menuView.GetFlash)
	authed := views.Group("")
	authed.Use(utils.AuthRequired())
	{
		authed.POST("/add", menuView.PostAdd)
		authed.POST("/edit", menuView.PostEdit)
		authed.POST("/delete", menuView.PostDelete)
		authed.POST("/edit-image", menuView.PostEditImage)
		authed.GET("/stats", menuView.GetStats)
		authed.GET("/:id", menuView.GetDetail)
	}
}
