package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Collaboration format identifiers as stored in group_projects.type.
const (
	FormatWeeklyLearning   = "weekly_learning"
	FormatHackathon        = "hackathon"
	FormatMeetupPod        = "meetup_pod"
	FormatCustomOpenCanvas = "custom_open_canvas"
	FormatJobFunctionChat  = "job_function_chat"
)

const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

// FormatDisplayMap maps stored format identifiers to their display labels.
// Tab filtering compares against these labels, not the raw identifiers.
var FormatDisplayMap = map[string]string{
	FormatWeeklyLearning:   "Learning Circle",
	FormatHackathon:        "Hackathon / Side Project",
	FormatMeetupPod:        "Meetup / Pod",
	FormatCustomOpenCanvas: "Open Format",
	FormatJobFunctionChat:  "Job Function Group",
}

// KnownFormat reports whether the identifier is one of the defined formats.
func KnownFormat(format string) bool {
	_, ok := FormatDisplayMap[format]
	return ok
}

// Collaboration is one row of group_projects: a single wide table holding
// all collaboration formats, with a nullable column group per format. Only
// the group matching Type is populated; the rest stay NULL.
//
// The _local timestamp columns are mapped as text on purpose. They hold
// naive wall-clock strings ("2025-06-27 09:00:00") alongside a free-form
// timezone label, and scanning them through time.Time would shift the
// wall-clock value.
type Collaboration struct {
	ProjectID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:project_id" json:"project_id"`
	Type        string    `gorm:"type:text;not null;index" json:"type"`
	Subtype     *string   `gorm:"type:text" json:"subtype"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Status      string    `gorm:"type:text;not null;default:'Open';index" json:"status"`

	UID         *uuid.UUID `gorm:"type:uuid;column:uid;index" json:"uid"`
	CoUID       *uuid.UUID `gorm:"type:uuid;column:co_uid" json:"co_uid"`
	CreatorName *string    `gorm:"type:text" json:"creator_name"`

	GroupSize *string `gorm:"type:text" json:"group_size"`
	LumaLink  *string `gorm:"type:text;column:luma_link" json:"luma_link"`

	// weekly_learning
	CircleFrequency        *string                     `gorm:"type:text" json:"circle_frequency"`
	CircleDay              *string                     `gorm:"type:text" json:"circle_day"`
	CircleTopicsOfInterest datatypes.JSONSlice[string] `gorm:"column:circle_topics_of_interest" json:"circle_topics_of_interest"`
	CircleTimeLocal        *string                     `gorm:"type:text;column:circle_time_local" json:"circle_time_local"`
	CircleTimeZone         *string                     `gorm:"type:text;column:circle_time_zone" json:"circle_time_zone"`

	// hackathon
	HackathonSkillsNeeded    datatypes.JSONSlice[string] `gorm:"column:hackathon_skills_needed" json:"hackathon_skills_needed"`
	HackathonEstimatedEffort *string                     `gorm:"type:text" json:"hackathon_estimated_effort"`
	HackathonStartDate       *string                     `gorm:"type:text" json:"hackathon_start_date"`

	// meetup_pod
	MeetupStartTimeLocal  *string `gorm:"type:text;column:meetup_start_time_local" json:"meetup_start_time_local"`
	MeetupDurationMinutes *int    `gorm:"column:meetup_duration_minutes" json:"meetup_duration_minutes"`
	MeetupTimeZone        *string `gorm:"type:text;column:meetup_time_zone" json:"meetup_time_zone"`

	// job_function_chat; audience has shipped both as a JSON array and as a
	// JSON-encoded string of an array, so it stays raw here and the mapper
	// sorts it out
	JobFunctionChatAudience datatypes.JSON `gorm:"column:job_function_chat_audience" json:"job_function_chat_audience"`
	JobChatTeamsURL         *string        `gorm:"type:text;column:job_chat_teams_url" json:"job_chat_teams_url"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Collaboration) TableName() string { return "group_projects" }
