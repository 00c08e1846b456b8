package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/Solara-Media-LLC/helios/internal/http/api"
	"github.com/Solara-Media-LLC/helios/internal/schedule"
)

// CurrentContentModule serves the viewer-facing "what's active now" query.
// Answers come from the engine's cache; this endpoint never errors, it either
// names content or says nothing is active.
func CurrentContentModule(engine *schedule.Engine) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/current", func(ctx *gin.Context) (any, *api.APIError) {
			payload := engine.ResolveCurrentContent()
			if payload == nil {
				return gin.H{"active": false}, nil
			}
			return gin.H{"active": true, "content": payload}, nil
		})
	})
}
