package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Solara-Media-LLC/helios/internal/db"
	"github.com/Solara-Media-LLC/helios/internal/http/api"
	"github.com/Solara-Media-LLC/helios/internal/http/api/admin/control/packets"
	"github.com/Solara-Media-LLC/helios/internal/model"
)

type ScreenController struct {
	store db.Store
}

func NewScreenController(store db.Store) *ScreenController {
	return &ScreenController{store: store}
}

func ScreenModule(store db.Store) api.Module {
	ctl := NewScreenController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/screens", ctl.listScreens)
		c.POST("/screens", ctl.createScreen)
		c.GET("/screens/:id", ctl.getScreen)
		c.DELETE("/screens/:id", ctl.deleteScreen)
	})
}

func (s *ScreenController) listScreens(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := s.store.ListScreens()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list screens"}
	}

	response := make([]packets.ScreenResponse, 0, len(all))
	for _, screen := range all {
		if screen.CreatedBy != user.ID {
			continue
		}
		response = append(response, packets.NewScreenResponse(screen))
	}
	return response, nil
}

func (s *ScreenController) createScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	screen, err := s.store.CreateScreen(request.Name, request.Location, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create screen"}
	}
	return packets.NewScreenResponse(screen), nil
}

func (s *ScreenController) getScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	screen, apiErr := s.ownedScreen(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	return packets.NewScreenResponse(*screen), nil
}

func (s *ScreenController) deleteScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	screen, apiErr := s.ownedScreen(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := s.store.DeleteScreen(screen.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete screen"}
	}
	return gin.H{"message": "deleted"}, nil
}

func (s *ScreenController) ownedScreen(ctx *gin.Context, user *model.User) (*model.Screen, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	screen, err := s.store.GetScreenByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "screen not found"}
	}
	if screen.CreatedBy != user.ID {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}
	return &screen, nil
}
