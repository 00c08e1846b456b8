package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Solara-Media-LLC/helios/internal/db"
	"github.com/Solara-Media-LLC/helios/internal/http/api"
	authapi "github.com/Solara-Media-LLC/helios/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/Solara-Media-LLC/helios/internal/http/api/admin/control/endpoints"
	clientapi "github.com/Solara-Media-LLC/helios/internal/http/api/tv/endpoints"
	"github.com/Solara-Media-LLC/helios/internal/schedule"
)

// RegisterRoutes sets up all application routes. onMutation is invoked after
// any schedule or content write so resolution runs immediately instead of
// waiting out the tick interval.
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, engine *schedule.Engine, onMutation func()) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
	},
		// control modules
		adminapi.ScheduleModule(store, onMutation),
		adminapi.ContentModule(store, onMutation),
		adminapi.ScreenModule(store),
		// session endpoints that require auth
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/tv",
	},
		clientapi.CurrentContentModule(engine),
	)
}
