package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Solara-Media-LLC/helios/internal/http/middleware"
	"github.com/Solara-Media-LLC/helios/internal/model"
)

// APIError is returned by endpoint handlers instead of writing to the
// response directly; the wrappers below translate it to JSON.
type APIError struct {
	Code    int
	Message string
}

type HandlerFunc func(ctx *gin.Context) (any, *APIError)
type HandlerFuncWithAuth func(ctx *gin.Context, user *model.User) (any, *APIError)

// Controller is the gin group a Module attaches its endpoints to.
type Controller struct {
	Group *gin.RouterGroup
}

// authenticated routes; JWTMiddleware must be mounted on the group
func (c *Controller) GET(path string, h HandlerFuncWithAuth)    { c.Group.GET(path, resolveWithAuth(h)) }
func (c *Controller) POST(path string, h HandlerFuncWithAuth)   { c.Group.POST(path, resolveWithAuth(h)) }
func (c *Controller) PUT(path string, h HandlerFuncWithAuth)    { c.Group.PUT(path, resolveWithAuth(h)) }
func (c *Controller) DELETE(path string, h HandlerFuncWithAuth) { c.Group.DELETE(path, resolveWithAuth(h)) }

// public routes
func (c *Controller) PUBLIC_GET(path string, h HandlerFunc)  { c.Group.GET(path, resolve(h)) }
func (c *Controller) PUBLIC_POST(path string, h HandlerFunc) { c.Group.POST(path, resolve(h)) }

func resolveWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		result, apiError := h(ctx, user)
		if apiError != nil {
			ctx.JSON(apiError.Code, gin.H{"error": apiError.Message})
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

func resolve(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiError := h(ctx)
		if apiError != nil {
			ctx.JSON(apiError.Code, gin.H{"error": apiError.Message})
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}
