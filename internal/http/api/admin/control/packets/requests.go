package packets

// CreateScheduleRequest carries everything needed to make a schedule
// resolvable; dates are "YYYY-MM-DD", times are "HH:MM".
type CreateScheduleRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	StartTime   string  `json:"start_time" binding:"required"`
	EndTime     string  `json:"end_time" binding:"required"`
	Timezone    string  `json:"timezone" binding:"required"`
	Recurrence  string  `json:"recurrence" binding:"required"`
	Weekdays    []int   `json:"weekdays"`
	IsActive    *bool   `json:"is_active"`
	Priority    int     `json:"priority" binding:"required"`
}

type UpdateScheduleRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Timezone    *string `json:"timezone"`
	Recurrence  *string `json:"recurrence"`
	Weekdays    *[]int  `json:"weekdays"`
	IsActive    *bool   `json:"is_active"`
	Priority    *int    `json:"priority"`
}

// SetScheduleContentRequest replaces the schedule's ordered content list.
type SetScheduleContentRequest struct {
	Items []ScheduleContentItem `json:"items" binding:"required,min=1,dive"`
}

type ScheduleContentItem struct {
	ContentID      int  `json:"content_id" binding:"required"`
	Position       int  `json:"position"`
	CustomDuration *int `json:"custom_duration"`
}

type AssignScheduleRequest struct {
	ScreenID int `json:"screen_id" binding:"required"`
}

type CreateContentRequest struct {
	Name            string `json:"name" binding:"required"`
	Type            string `json:"type" binding:"required"`
	URL             string `json:"url" binding:"required,url"`
	DurationSeconds int    `json:"duration_seconds"`
}

type UpdateContentRequest struct {
	Name            *string `json:"name"`
	Type            *string `json:"type"`
	URL             *string `json:"url"`
	DurationSeconds *int    `json:"duration_seconds"`
}

type ApproveContentRequest struct {
	Approved bool `json:"approved"`
}

type CreateScreenRequest struct {
	Name     string  `json:"name" binding:"required"`
	Location *string `json:"location"`
}
