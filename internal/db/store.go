// exposes a Store interface that is passed to API controllers and the
// schedule engine
package db

import (
	"time"

	"github.com/Solara-Media-LLC/helios/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// screen functions
	CreateScreen(name string, location *string, createdBy int) (model.Screen, error)
	GetScreenByID(id int) (model.Screen, error)
	ListScreens() ([]model.Screen, error)
	DeleteScreen(id int) error

	// content functions
	CreateContent(name, typ, url string, durationSeconds, createdBy int) (model.Content, error)
	GetContentByID(id int) (model.Content, error)
	ListContent() ([]model.Content, error)
	UpdateContent(id int, name, typ, url *string, durationSeconds *int) error
	SetContentApproval(id int, approved bool) error
	DeleteContent(id int) error

	// schedule functions
	CreateSchedule(s model.Schedule) (model.Schedule, error)
	GetSchedule(id int) (model.Schedule, error)
	ListSchedules(ownerID int) ([]model.Schedule, error)
	UpdateSchedule(s model.Schedule) (model.Schedule, error)
	DeleteSchedule(id int) error
	SetScheduleContent(scheduleID int, items []model.ScheduleItem) error
	AssignScheduleToScreen(scheduleID, screenID int) error
	UnassignScheduleFromScreen(scheduleID, screenID int) error

	// engine snapshot functions (schedule.Repository)
	ListActiveWithApprovedContent() ([]model.Schedule, error)
	LastModified(scheduleID int) (time.Time, error)
}

type pgStore struct{}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{}
}

func (*pgStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return CreateUser(email, hashedPassword, name)
}
func (*pgStore) GetUserByEmail(email string) (*model.User, error) { return GetUserByEmail(email) }
func (*pgStore) GetUserByID(id int) (*model.User, error)          { return GetUserByID(id) }
func (*pgStore) UpdateUserProfile(id int, email string, name *string) error {
	return UpdateUserProfile(id, email, name)
}

func (*pgStore) CreateScreen(name string, location *string, createdBy int) (model.Screen, error) {
	return CreateScreen(name, location, createdBy)
}
func (*pgStore) GetScreenByID(id int) (model.Screen, error) { return GetScreenByID(id) }
func (*pgStore) ListScreens() ([]model.Screen, error)       { return ListScreens() }
func (*pgStore) DeleteScreen(id int) error                  { return DeleteScreen(id) }

func (*pgStore) CreateContent(name, typ, url string, durationSeconds, createdBy int) (model.Content, error) {
	return CreateContent(name, typ, url, durationSeconds, createdBy)
}
func (*pgStore) GetContentByID(id int) (model.Content, error) { return GetContentByID(id) }
func (*pgStore) ListContent() ([]model.Content, error)        { return ListContent() }
func (*pgStore) UpdateContent(id int, name, typ, url *string, durationSeconds *int) error {
	return UpdateContent(id, name, typ, url, durationSeconds)
}
func (*pgStore) SetContentApproval(id int, approved bool) error { return SetContentApproval(id, approved) }
func (*pgStore) DeleteContent(id int) error                     { return DeleteContent(id) }

func (*pgStore) CreateSchedule(s model.Schedule) (model.Schedule, error) { return CreateSchedule(s) }
func (*pgStore) GetSchedule(id int) (model.Schedule, error)              { return GetSchedule(id) }
func (*pgStore) ListSchedules(ownerID int) ([]model.Schedule, error)     { return ListSchedules(ownerID) }
func (*pgStore) UpdateSchedule(s model.Schedule) (model.Schedule, error) { return UpdateSchedule(s) }
func (*pgStore) DeleteSchedule(id int) error                             { return DeleteSchedule(id) }
func (*pgStore) SetScheduleContent(scheduleID int, items []model.ScheduleItem) error {
	return SetScheduleContent(scheduleID, items)
}
func (*pgStore) AssignScheduleToScreen(scheduleID, screenID int) error {
	return AssignScheduleToScreen(scheduleID, screenID)
}
func (*pgStore) UnassignScheduleFromScreen(scheduleID, screenID int) error {
	return UnassignScheduleFromScreen(scheduleID, screenID)
}

func (*pgStore) ListActiveWithApprovedContent() ([]model.Schedule, error) {
	return ListActiveWithApprovedContent()
}
func (*pgStore) LastModified(scheduleID int) (time.Time, error) { return ScheduleLastModified(scheduleID) }
