package router

import (
	"github.com/gin-gonic/gin"
	"github.com/parakita/backoffice/internal/constants"
)

// userRoutes defines account and role administration endpoints
func (r *Router) userRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(r.jwtMw.RequireAuth())
	{
		users.GET("/me", r.userHandler.Me)
		users.PUT("/me/password", r.userHandler.ChangePassword)

		users.GET("", r.requireRead(constants.EntityUser), r.userHandler.List)
		users.GET("/:id", r.requireRead(constants.EntityUser), r.userHandler.Get)
		users.POST("", r.requireCreate(constants.EntityUser), r.userHandler.Create)
		users.PUT("/:id", r.requireUpdate(constants.EntityUser), r.userHandler.Update)
		users.DELETE("/:id", r.requireDelete(constants.EntityUser), r.userHandler.Delete)

		users.POST("/:id/block", r.requireUpdate(constants.EntityUser), r.userHandler.Block)
		users.POST("/:id/unblock", r.requireUpdate(constants.EntityUser), r.userHandler.Unblock)
		users.PUT("/:id/roles", r.requireUpdate(constants.EntityUser), r.userHandler.AssignRoles)
	}

	roles := rg.Group("/roles")
	roles.Use(r.jwtMw.RequireAuth())
	{
		roles.GET("", r.requireRead(constants.EntityRole), r.roleHandler.List)
		roles.GET("/:id", r.requireRead(constants.EntityRole), r.roleHandler.Get)
		roles.POST("", r.requireCreate(constants.EntityRole), r.roleHandler.Create)
		roles.PUT("/:id", r.requireUpdate(constants.EntityRole), r.roleHandler.Update)
		roles.DELETE("/:id", r.requireDelete(constants.EntityRole), r.roleHandler.Delete)
	}
}

func (r *Router) requireCreate(entity string) gin.HandlerFunc {
	return r.jwtMw.RequirePermission(constants.Permission(entity, constants.ActionCreate))
}

func (r *Router) requireRead(entity string) gin.HandlerFunc {
	return r.jwtMw.RequirePermission(constants.Permission(entity, constants.ActionRead))
}

func (r *Router) requireUpdate(entity string) gin.HandlerFunc {
	return r.jwtMw.RequirePermission(constants.Permission(entity, constants.ActionUpdate))
}

func (r *Router) requireDelete(entity string) gin.HandlerFunc {
	return r.jwtMw.RequirePermission(constants.Permission(entity, constants.ActionDelete))
}
