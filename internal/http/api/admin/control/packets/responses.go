package packets

import (
	"time"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

type ScheduleResponse struct {
	ID          int                   `json:"id"`
	Name        string                `json:"name"`
	Description *string               `json:"description"`
	StartDate   string                `json:"start_date"`
	EndDate     string                `json:"end_date"`
	StartTime   string                `json:"start_time"`
	EndTime     string                `json:"end_time"`
	Timezone    string                `json:"timezone"`
	Recurrence  string                `json:"recurrence"`
	Weekdays    []int                 `json:"weekdays"`
	IsActive    bool                  `json:"is_active"`
	Priority    int                   `json:"priority"`
	Items       []model.ScheduleItem  `json:"items,omitempty"`
	ScreenIDs   []int                 `json:"screen_ids,omitempty"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}

func NewScheduleResponse(s model.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		StartDate:   s.StartDate.Format("2006-01-02"),
		EndDate:     s.EndDate.Format("2006-01-02"),
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Timezone:    s.Timezone,
		Recurrence:  string(s.Recurrence),
		Weekdays:    s.Weekdays,
		IsActive:    s.IsActive,
		Priority:    s.Priority,
		Items:       s.Items,
		ScreenIDs:   s.ScreenIDs,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}

type ContentResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	URL             string `json:"url"`
	DurationSeconds int    `json:"duration_seconds"`
	Approved        bool   `json:"approved"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func NewContentResponse(c model.Content) ContentResponse {
	return ContentResponse{
		ID:              c.ID,
		Name:            c.Name,
		Type:            c.Type,
		URL:             c.URL,
		DurationSeconds: c.DurationSeconds,
		Approved:        c.Approved,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt.Format(time.RFC3339),
	}
}

type ScreenResponse struct {
	ID        int     `json:"id"`
	DeviceID  *string `json:"device_id"`
	Name      string  `json:"name"`
	Location  *string `json:"location"`
	Paired    bool    `json:"paired"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func NewScreenResponse(s model.Screen) ScreenResponse {
	return ScreenResponse{
		ID:        s.ID,
		DeviceID:  s.DeviceID,
		Name:      s.Name,
		Location:  s.Location,
		Paired:    s.Paired,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}
