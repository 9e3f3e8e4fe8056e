package apiserver

import (
	"github.com/gin-gonic/gin"
	"github.com/marmotedu/errors"

	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/control/v1/user"
	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store"
	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/code"
	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/core"
)

func initRouter(g *gin.Engine, factory store.Factory) {
	installController(g, factory)
}

func installController(g *gin.Engine, factory store.Factory) *gin.Engine {
	g.NoRoute(func(c *gin.Context) {
		core.WriteResponse(c, errors.WithCode(code.ErrPageNotFound, "page %s not found", c.Request.URL.Path), nil)
	})

	g.HandleMethodNotAllowed = true
	g.NoMethod(func(c *gin.Context) {
		core.WriteResponse(c, errors.WithCode(code.ErrMethodNotAllowed, "method %s not allowed on %s", c.Request.Method, c.Request.URL.Path), nil)
	})

	userController := user.NewUserController(factory)

	// /api/v1 与根路径提供同一组接口。
	for _, prefix := range []string{"", "/api/v1"} {
		userv1 := g.Group(prefix + "/users")
		{
			userv1.GET("", userController.List)
			userv1.POST("", userController.Create)
			userv1.GET(":id", userController.Get)
			userv1.PUT(":id", userController.Update)
			userv1.DELETE(":id", userController.Delete)
		}
	}

	return g
}
