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

type ContentController struct {
	store      db.Store
	onMutation func()
}

func NewContentController(store db.Store, onMutation func()) *ContentController {
	if onMutation == nil {
		onMutation = func() {}
	}
	return &ContentController{store: store, onMutation: onMutation}
}

func ContentModule(store db.Store, onMutation func()) api.Module {
	ctl := NewContentController(store, onMutation)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/content", ctl.listContent)
		c.POST("/content", ctl.createContent)
		c.GET("/content/:id", ctl.getContent)
		c.PUT("/content/:id", ctl.updateContent)
		c.DELETE("/content/:id", ctl.deleteContent)

		// approval gates eligibility; flipping it can change what is on screen
		c.PUT("/content/:id/approval", ctl.setApproval)
	})
}

func (t *ContentController) listContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := t.store.ListContent()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list content"}
	}

	response := make([]packets.ContentResponse, 0, len(all))
	for _, c := range all {
		if c.CreatedBy != user.ID {
			continue
		}
		response = append(response, packets.NewContentResponse(c))
	}
	return response, nil
}

func (t *ContentController) createContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateContentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	created, err := t.store.CreateContent(request.Name, request.Type, request.URL, request.DurationSeconds, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create content"}
	}
	return packets.NewContentResponse(created), nil
}

func (t *ContentController) getContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	content, apiErr := t.ownedContent(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	return packets.NewContentResponse(*content), nil
}

func (t *ContentController) updateContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	content, apiErr := t.ownedContent(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateContentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := t.store.UpdateContent(content.ID, request.Name, request.Type, request.URL, request.DurationSeconds); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update content"}
	}

	updated, err := t.store.GetContentByID(content.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated content"}
	}

	t.onMutation()
	return packets.NewContentResponse(updated), nil
}

func (t *ContentController) setApproval(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	content, apiErr := t.ownedContent(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.ApproveContentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := t.store.SetContentApproval(content.ID, request.Approved); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update approval"}
	}

	t.onMutation()
	return gin.H{"message": "approval updated"}, nil
}

func (t *ContentController) deleteContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	content, apiErr := t.ownedContent(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := t.store.DeleteContent(content.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete content"}
	}

	t.onMutation()
	return gin.H{"message": "deleted"}, nil
}

func (t *ContentController) ownedContent(ctx *gin.Context, user *model.User) (*model.Content, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	content, err := t.store.GetContentByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "content not found"}
	}
	if content.CreatedBy != user.ID {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}
	return &content, nil
}
