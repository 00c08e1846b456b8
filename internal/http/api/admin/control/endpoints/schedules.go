package endpoints

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Solara-Media-LLC/helios/internal/db"
	"github.com/Solara-Media-LLC/helios/internal/http/api"
	"github.com/Solara-Media-LLC/helios/internal/http/api/admin/control/packets"
	"github.com/Solara-Media-LLC/helios/internal/model"
)

type ScheduleController struct {
	store db.Store
	// onMutation asks the change monitor for an immediate re-resolution so
	// displays do not wait out the tick interval after an edit.
	onMutation func()
}

func NewScheduleController(store db.Store, onMutation func()) *ScheduleController {
	if onMutation == nil {
		onMutation = func() {}
	}
	return &ScheduleController{store: store, onMutation: onMutation}
}

func ScheduleModule(store db.Store, onMutation func()) api.Module {
	ctl := NewScheduleController(store, onMutation)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/schedules", ctl.listSchedules)
		c.POST("/schedules", ctl.createSchedule)
		c.GET("/schedules/:id", ctl.getSchedule)
		c.PUT("/schedules/:id", ctl.updateSchedule)
		c.DELETE("/schedules/:id", ctl.deleteSchedule)

		// ordered content list
		c.PUT("/schedules/:id/content", ctl.setScheduleContent)

		// schedule <-> screen
		c.POST("/schedules/:id/screens", ctl.assignScheduleToScreen)
		c.DELETE("/schedules/:id/screens/:screen_id", ctl.unassignScheduleFromScreen)
	})
}

func (s *ScheduleController) listSchedules(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := s.store.ListSchedules(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list schedules"}
	}

	response := make([]packets.ScheduleResponse, 0, len(list))
	for _, it := range list {
		response = append(response, packets.NewScheduleResponse(it))
	}
	return response, nil
}

func (s *ScheduleController) createSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	candidate, apiErr := scheduleFromCreateRequest(request, user.ID)
	if apiErr != nil {
		return nil, apiErr
	}

	created, err := s.store.CreateSchedule(candidate)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create schedule"}
	}

	s.onMutation()
	return packets.NewScheduleResponse(created), nil
}

func (s *ScheduleController) getSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	schedule, apiErr := s.ownedSchedule(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}
	return packets.NewScheduleResponse(*schedule), nil
}

func (s *ScheduleController) updateSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	schedule, apiErr := s.ownedSchedule(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	merged, apiErr := applyScheduleUpdate(*schedule, request)
	if apiErr != nil {
		return nil, apiErr
	}

	updated, err := s.store.UpdateSchedule(merged)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update schedule"}
	}

	s.onMutation()
	return packets.NewScheduleResponse(updated), nil
}

func (s *ScheduleController) deleteSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	schedule, apiErr := s.ownedSchedule(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := s.store.DeleteSchedule(schedule.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete schedule"}
	}

	s.onMutation()
	return gin.H{"message": "deleted"}, nil
}

func (s *ScheduleController) setScheduleContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	schedule, apiErr := s.ownedSchedule(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.SetScheduleContentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	items := make([]model.ScheduleItem, 0, len(request.Items))
	for _, it := range request.Items {
		if _, err := s.store.GetContentByID(it.ContentID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: fmt.Sprintf("content %d not found", it.ContentID)}
		}
		items = append(items, model.ScheduleItem{
			ContentID:      it.ContentID,
			Position:       it.Position,
			CustomDuration: it.CustomDuration,
		})
	}

	if err := s.store.SetScheduleContent(schedule.ID, items); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not set schedule content"}
	}

	s.onMutation()
	return gin.H{"message": "content updated"}, nil
}

func (s *ScheduleController) assignScheduleToScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	schedule, apiErr := s.ownedSchedule(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.AssignScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	screen, err := s.store.GetScreenByID(request.ScreenID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "screen not found"}
	}
	if screen.CreatedBy != user.ID {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}

	if err := s.store.AssignScheduleToScreen(schedule.ID, request.ScreenID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not assign schedule to screen"}
	}

	return gin.H{"message": "assigned"}, nil
}

func (s *ScheduleController) unassignScheduleFromScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	schedule, apiErr := s.ownedSchedule(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	screenID, err := strconv.Atoi(ctx.Param("screen_id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid screen id"}
	}

	if err := s.store.UnassignScheduleFromScreen(schedule.ID, screenID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not unassign"}
	}

	return gin.H{"message": "unassigned"}, nil
}

// ownedSchedule parses :id, loads the schedule, and enforces ownership.
func (s *ScheduleController) ownedSchedule(ctx *gin.Context, user *model.User) (*model.Schedule, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	schedule, err := s.store.GetSchedule(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}
	if schedule.CreatedBy != user.ID {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}
	return &schedule, nil
}

// scheduleFromCreateRequest validates the request into a schedule value. A
// schedule that fails here never enters the resolvable set, so the engine can
// treat stored rows as well-formed.
func scheduleFromCreateRequest(request packets.CreateScheduleRequest, userID int) (model.Schedule, *api.APIError) {
	startDate, err := time.Parse("2006-01-02", request.StartDate)
	if err != nil {
		return model.Schedule{}, &api.APIError{Code: http.StatusBadRequest, Message: "invalid start_date, want YYYY-MM-DD"}
	}
	endDate, err := time.Parse("2006-01-02", request.EndDate)
	if err != nil {
		return model.Schedule{}, &api.APIError{Code: http.StatusBadRequest, Message: "invalid end_date, want YYYY-MM-DD"}
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	candidate := model.Schedule{
		Name:        request.Name,
		Description: request.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
		Timezone:    request.Timezone,
		Recurrence:  model.RecurrenceType(request.Recurrence),
		Weekdays:    request.Weekdays,
		IsActive:    isActive,
		Priority:    request.Priority,
		CreatedBy:   userID,
	}
	if apiErr := validateSchedule(candidate); apiErr != nil {
		return model.Schedule{}, apiErr
	}
	return candidate, nil
}

func applyScheduleUpdate(schedule model.Schedule, request packets.UpdateScheduleRequest) (model.Schedule, *api.APIError) {
	if request.Name != nil {
		schedule.Name = *request.Name
	}
	if request.Description != nil {
		schedule.Description = request.Description
	}
	if request.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *request.StartDate)
		if err != nil {
			return model.Schedule{}, &api.APIError{Code: http.StatusBadRequest, Message: "invalid start_date, want YYYY-MM-DD"}
		}
		schedule.StartDate = parsed
	}
	if request.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *request.EndDate)
		if err != nil {
			return model.Schedule{}, &api.APIError{Code: http.StatusBadRequest, Message: "invalid end_date, want YYYY-MM-DD"}
		}
		schedule.EndDate = parsed
	}
	if request.StartTime != nil {
		schedule.StartTime = *request.StartTime
	}
	if request.EndTime != nil {
		schedule.EndTime = *request.EndTime
	}
	if request.Timezone != nil {
		schedule.Timezone = *request.Timezone
	}
	if request.Recurrence != nil {
		schedule.Recurrence = model.RecurrenceType(*request.Recurrence)
	}
	if request.Weekdays != nil {
		schedule.Weekdays = *request.Weekdays
	}
	if request.IsActive != nil {
		schedule.IsActive = *request.IsActive
	}
	if request.Priority != nil {
		schedule.Priority = *request.Priority
	}

	if apiErr := validateSchedule(schedule); apiErr != nil {
		return model.Schedule{}, apiErr
	}
	return schedule, nil
}

// validateSchedule is the creation-time configuration gate: anything rejected
// here is a client error, anything past here the resolver must cope with.
func validateSchedule(s model.Schedule) *api.APIError {
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return &api.APIError{Code: http.StatusBadRequest, Message: fmt.Sprintf("unknown timezone %q", s.Timezone)}
	}
	if _, err := model.ParseTimeOfDay(s.StartTime); err != nil {
		return &api.APIError{Code: http.StatusBadRequest, Message: "invalid start_time, want HH:MM"}
	}
	if _, err := model.ParseTimeOfDay(s.EndTime); err != nil {
		return &api.APIError{Code: http.StatusBadRequest, Message: "invalid end_time, want HH:MM"}
	}
	if s.EndDate.Before(s.StartDate) {
		return &api.APIError{Code: http.StatusBadRequest, Message: "end_date must not precede start_date"}
	}
	if !model.ValidRecurrence(s.Recurrence) {
		return &api.APIError{Code: http.StatusBadRequest, Message: fmt.Sprintf("unknown recurrence %q", s.Recurrence)}
	}
	if s.Recurrence == model.RecurrenceWeekly {
		if len(s.Weekdays) == 0 {
			return &api.APIError{Code: http.StatusBadRequest, Message: "weekly recurrence requires a non-empty weekday set"}
		}
		for _, d := range s.Weekdays {
			if d < 0 || d > 6 {
				return &api.APIError{Code: http.StatusBadRequest, Message: "weekdays must be 0 (Sunday) through 6 (Saturday)"}
			}
		}
	}
	if s.Priority < 1 || s.Priority > 10 {
		return &api.APIError{Code: http.StatusBadRequest, Message: "priority must be between 1 and 10"}
	}
	return nil
}
