package db

import (
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

// scheduleRow mirrors the schedules table; weekdays come back as a Postgres
// int[] and are converted at this boundary so the model stays a plain value.
type scheduleRow struct {
	ID          int           `db:"id"`
	Name        string        `db:"name"`
	Description *string       `db:"description"`
	StartDate   time.Time     `db:"start_date"`
	EndDate     time.Time     `db:"end_date"`
	StartTime   string        `db:"start_time"`
	EndTime     string        `db:"end_time"`
	Timezone    string        `db:"timezone"`
	Recurrence  string        `db:"recurrence"`
	Weekdays    pq.Int64Array `db:"weekdays"`
	IsActive    bool          `db:"is_active"`
	Priority    int           `db:"priority"`
	CreatedBy   int           `db:"created_by"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

func (r scheduleRow) toModel() model.Schedule {
	weekdays := make([]int, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		weekdays = append(weekdays, int(d))
	}
	return model.Schedule{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Timezone:    r.Timezone,
		Recurrence:  model.RecurrenceType(r.Recurrence),
		Weekdays:    weekdays,
		IsActive:    r.IsActive,
		Priority:    r.Priority,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func weekdaysArray(weekdays []int) pq.Int64Array {
	out := make(pq.Int64Array, 0, len(weekdays))
	for _, d := range weekdays {
		out = append(out, int64(d))
	}
	return out
}

const scheduleColumns = `
	id, name, description, start_date, end_date, start_time, end_time,
	timezone, recurrence, weekdays, is_active, priority,
	created_by, created_at, updated_at`

func CreateSchedule(s model.Schedule) (model.Schedule, error) {
	var row scheduleRow
	const q = `
	INSERT INTO schedules
	  (name, description, start_date, end_date, start_time, end_time,
	   timezone, recurrence, weekdays, is_active, priority, created_by,
	   created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,now(),now())
	RETURNING ` + scheduleColumns + `;`
	err := DB.Get(&row, q,
		s.Name, s.Description, s.StartDate, s.EndDate, s.StartTime, s.EndTime,
		s.Timezone, string(s.Recurrence), weekdaysArray(s.Weekdays),
		s.IsActive, s.Priority, s.CreatedBy,
	)
	if err != nil {
		log.Error().Err(err).Msg("CreateSchedule failed")
		return model.Schedule{}, err
	}
	return row.toModel(), nil
}

func UpdateSchedule(s model.Schedule) (model.Schedule, error) {
	var row scheduleRow
	const q = `
	UPDATE schedules SET
	  name = $2, description = $3, start_date = $4, end_date = $5,
	  start_time = $6, end_time = $7, timezone = $8, recurrence = $9,
	  weekdays = $10, is_active = $11, priority = $12, updated_at = now()
	WHERE id = $1
	RETURNING ` + scheduleColumns + `;`
	err := DB.Get(&row, q,
		s.ID, s.Name, s.Description, s.StartDate, s.EndDate, s.StartTime,
		s.EndTime, s.Timezone, string(s.Recurrence), weekdaysArray(s.Weekdays),
		s.IsActive, s.Priority,
	)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", s.ID).Msg("UpdateSchedule failed")
		return model.Schedule{}, err
	}
	return row.toModel(), nil
}

func DeleteSchedule(scheduleID int) error {
	_, err := DB.Exec(`DELETE FROM schedules WHERE id = $1;`, scheduleID)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", scheduleID).Msg("DeleteSchedule failed")
	}
	return err
}

func GetSchedule(scheduleID int) (model.Schedule, error) {
	var row scheduleRow
	err := DB.Get(&row, `SELECT `+scheduleColumns+` FROM schedules WHERE id = $1;`, scheduleID)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", scheduleID).Msg("GetSchedule failed")
		return model.Schedule{}, err
	}
	s := row.toModel()
	if s.Items, err = listScheduleItems(scheduleID, false); err != nil {
		return model.Schedule{}, err
	}
	if s.ScreenIDs, err = listScheduleScreens(scheduleID); err != nil {
		return model.Schedule{}, err
	}
	return s, nil
}

func ListSchedules(ownerID int) ([]model.Schedule, error) {
	var rows []scheduleRow
	const q = `SELECT ` + scheduleColumns + ` FROM schedules WHERE created_by = $1 ORDER BY id;`
	if err := DB.Select(&rows, q, ownerID); err != nil {
		log.Error().Err(err).Msg("ListSchedules failed")
		return nil, err
	}
	out := make([]model.Schedule, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

// SetScheduleContent replaces the schedule's ordered content list.
func SetScheduleContent(scheduleID int, items []model.ScheduleItem) error {
	tx, err := DB.Beginx()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM schedule_content WHERE schedule_id = $1;`, scheduleID); err != nil {
		tx.Rollback()
		log.Error().Err(err).Int("schedule_id", scheduleID).Msg("SetScheduleContent clear failed")
		return err
	}
	for _, it := range items {
		_, err := tx.Exec(`
		INSERT INTO schedule_content (schedule_id, content_id, position, custom_duration)
		VALUES ($1,$2,$3,$4);`, scheduleID, it.ContentID, it.Position, it.CustomDuration)
		if err != nil {
			tx.Rollback()
			log.Error().Err(err).Int("schedule_id", scheduleID).Int("content_id", it.ContentID).Msg("SetScheduleContent insert failed")
			return err
		}
	}
	if _, err := tx.Exec(`UPDATE schedules SET updated_at = now() WHERE id = $1;`, scheduleID); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func AssignScheduleToScreen(scheduleID, screenID int) error {
	_, err := DB.Exec(`
	INSERT INTO schedule_screens (schedule_id, screen_id)
	VALUES ($1,$2)
	ON CONFLICT DO NOTHING;`, scheduleID, screenID)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", scheduleID).Int("screen_id", screenID).Msg("AssignScheduleToScreen failed")
	}
	return err
}

func UnassignScheduleFromScreen(scheduleID, screenID int) error {
	_, err := DB.Exec(`DELETE FROM schedule_screens WHERE schedule_id = $1 AND screen_id = $2;`, scheduleID, screenID)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", scheduleID).Int("screen_id", screenID).Msg("UnassignScheduleFromScreen failed")
	}
	return err
}

// ListActiveWithApprovedContent returns the evaluation snapshot: schedules
// flagged active, each with its content list pre-filtered to approved items.
// Schedules whose filtered list is empty still come back; the resolver
// discards them, and the monitor still wants their watermarks.
func ListActiveWithApprovedContent() ([]model.Schedule, error) {
	var rows []scheduleRow
	const q = `SELECT ` + scheduleColumns + ` FROM schedules WHERE is_active = true ORDER BY id;`
	if err := DB.Select(&rows, q); err != nil {
		log.Error().Err(err).Msg("ListActiveWithApprovedContent failed")
		return nil, err
	}

	out := make([]model.Schedule, 0, len(rows))
	for _, r := range rows {
		s := r.toModel()
		items, err := listScheduleItems(s.ID, true)
		if err != nil {
			return nil, err
		}
		s.Items = items
		out = append(out, s)
	}
	return out, nil
}

func ScheduleLastModified(scheduleID int) (time.Time, error) {
	var ts time.Time
	err := DB.Get(&ts, `SELECT updated_at FROM schedules WHERE id = $1;`, scheduleID)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", scheduleID).Msg("ScheduleLastModified failed")
	}
	return ts, err
}

func listScheduleItems(scheduleID int, approvedOnly bool) ([]model.ScheduleItem, error) {
	q := `
	SELECT sc.content_id, sc.position, sc.custom_duration,
	       c.name, c.type, c.url, c.duration_seconds, c.approved
	  FROM schedule_content sc
	  JOIN content c ON c.id = sc.content_id
	 WHERE sc.schedule_id = $1`
	if approvedOnly {
		q += ` AND c.approved = true`
	}
	q += ` ORDER BY sc.position;`

	var items []model.ScheduleItem
	if err := DB.Select(&items, q, scheduleID); err != nil {
		log.Error().Err(err).Int("schedule_id", scheduleID).Msg("listScheduleItems failed")
		return nil, err
	}
	return items, nil
}

func listScheduleScreens(scheduleID int) ([]int, error) {
	var ids []int
	err := DB.Select(&ids, `SELECT screen_id FROM schedule_screens WHERE schedule_id = $1 ORDER BY screen_id;`, scheduleID)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", scheduleID).Msg("listScheduleScreens failed")
		return nil, err
	}
	return ids, nil
}
