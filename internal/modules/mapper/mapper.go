// Package mapper translates between the wide group_projects row and the
// shapes the rest of the system works with: a display-ready collaboration
// record on the read side, and an insert row built from the creation form's
// flat payload on the write side. It is the only place that knows the
// per-format column layout and the naive-timestamp parsing policy.
package mapper

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/collabhub-io/collabhub/internal/modules/model"
	"github.com/collabhub-io/collabhub/internal/modules/repo"
	"github.com/collabhub-io/collabhub/internal/pkg/localtime"
	"github.com/collabhub-io/collabhub/internal/pkg/tagset"
)

// Collaboration is the display-ready record consumed by the list and detail
// views. Identity references are resolved to display names; per-format
// nullable columns are coalesced to empty strings and slices.
type Collaboration struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Format      string `json:"format"`
	Subtype     string `json:"subtype"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`

	Creator   string `json:"creator"`
	CoCreator string `json:"co_creator"`

	// Unified date/time/timezone triple chosen by format precedence.
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`

	Skills              []string `json:"skills"`
	TopicsOfInterest    []string `json:"topics_of_interest"`
	JobFunctionAudience []string `json:"job_function_audience"`

	GroupSize       string `json:"group_size"`
	Effort          string `json:"effort"`
	StartDate       string `json:"start_date"`
	LumaLink        string `json:"luma_link"`
	Frequency       string `json:"frequency"`
	Weekday         string `json:"weekday"`
	DurationMinutes int    `json:"meetup_duration_minutes"`
	JobChatTeamsURL string `json:"job_chat_teams_url"`

	CreatedAt int64 `json:"created_at"`

	// Raw identity references, kept for ownership checks and further lookups.
	UID   string `json:"uid"`
	CoUID string `json:"co_uid"`
}

// Mapper carries the collaborators the translation needs: the current
// identity for creator resolution and ownership, and the directory for
// co-creator lookups. Both are injected so tests can substitute arbitrary
// identities.
type Mapper struct {
	Identity  model.Identity
	Directory repo.DirectoryRepo
	Log       *zap.Logger
}

func New(identity model.Identity, directory repo.DirectoryRepo, log *zap.Logger) *Mapper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mapper{Identity: identity, Directory: directory, Log: log}
}

// FromRow maps one persisted row to its display record.
func (m *Mapper) FromRow(row model.Collaboration) Collaboration {
	creator := "Unknown"
	if row.UID != nil && *row.UID == m.Identity.ID {
		creator = m.Identity.Name
	} else if row.CreatorName != nil && *row.CreatorName != "" {
		creator = *row.CreatorName
	}

	coCreator := ""
	if row.CoUID != nil {
		if u, ok := m.Directory.ResolveByID(*row.CoUID); ok {
			coCreator = u.Name
		}
	}

	// Meetup start time takes precedence over the learning-circle time; the
	// hackathon start date, a literal date-only string, beats both below.
	var date, clock, timezone string
	if row.MeetupStartTimeLocal != nil {
		var err error
		date, clock, err = localtime.Decompose(*row.MeetupStartTimeLocal)
		if err != nil {
			m.Log.Error("malformed meetup_start_time_local, degrading to empty",
				zap.String("project_id", row.ProjectID.String()), zap.Error(err))
			date, clock = "", ""
		}
		timezone = deref(row.MeetupTimeZone)
	} else if row.CircleTimeLocal != nil {
		var err error
		date, clock, err = localtime.Decompose(*row.CircleTimeLocal)
		if err != nil {
			m.Log.Error("malformed circle_time_local, degrading to empty",
				zap.String("project_id", row.ProjectID.String()), zap.Error(err))
			date, clock = "", ""
		}
		timezone = deref(row.CircleTimeZone)
	}
	if row.HackathonStartDate != nil && *row.HackathonStartDate != "" {
		date = *row.HackathonStartDate
	}

	status := row.Status
	if status == "" {
		status = model.StatusOpen
	}

	return Collaboration{
		ID:                  row.ProjectID.String(),
		ProjectID:           row.ProjectID.String(),
		Format:              row.Type,
		Subtype:             deref(row.Subtype),
		Title:               row.Title,
		Description:         row.Description,
		Status:              status,
		Creator:             creator,
		CoCreator:           coCreator,
		Date:                date,
		Time:                clock,
		Timezone:            timezone,
		Skills:              coalesceSlice(row.HackathonSkillsNeeded),
		TopicsOfInterest:    coalesceSlice(row.CircleTopicsOfInterest),
		JobFunctionAudience: m.audienceFromColumn(row),
		GroupSize:           deref(row.GroupSize),
		Effort:              deref(row.HackathonEstimatedEffort),
		StartDate:           deref(row.HackathonStartDate),
		LumaLink:            deref(row.LumaLink),
		Frequency:           deref(row.CircleFrequency),
		Weekday:             deref(row.CircleDay),
		DurationMinutes:     derefInt(row.MeetupDurationMinutes),
		JobChatTeamsURL:     deref(row.JobChatTeamsURL),
		CreatedAt:           row.CreatedAt.UnixMilli(),
		UID:                 uidString(row.UID),
		CoUID:               uidString(row.CoUID),
	}
}

// audienceFromColumn normalizes the jsonb audience column, which may hold a
// JSON array or a JSON-encoded string of one.
func (m *Mapper) audienceFromColumn(row model.Collaboration) []string {
	raw := []byte(row.JobFunctionChatAudience)
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &list); err == nil {
			return list
		}
	}
	m.Log.Error("unreadable job_function_chat_audience, degrading to empty",
		zap.String("project_id", row.ProjectID.String()))
	return []string{}
}

// CreateCollaborationInput is the creation form's flat payload: the universal
// fields plus whichever per-format fields apply.
type CreateCollaborationInput struct {
	Format      string
	Title       string
	Description string
	GroupSize   string
	LumaLink    string
	CoCreator   string // directory reference, dropped if unresolvable

	// hackathon
	Skills    []string
	Effort    string
	StartDate string // date-only string, stored verbatim

	// weekly_learning
	TopicsOfInterest []string
	Frequency        string
	Weekday          string
	LearningDate     string // "YYYY-MM-DD"
	LearningTime     string // "H:MM AM" or "HH:MM"
	LearningTimezone string

	// meetup_pod
	MeetingDate     string
	MeetingTime     string
	MeetingDuration int
	Timezone        string

	// job_function_chat
	WhoIsThisFor []string
	TeamsLink    string
}

// InsertRow shapes the form payload into a group_projects row. Status is
// forced Open, uid comes from the current identity, and co_uid is set only
// when the reference resolves against the directory: better to drop an
// unresolvable reference than persist a dangling one. Exactly one per-format
// attribute group is populated; an unrecognized format keeps only the
// universal fields.
func (m *Mapper) InsertRow(form CreateCollaborationInput) model.Collaboration {
	uid := m.Identity.ID
	creatorName := m.Identity.Name
	row := model.Collaboration{
		Type:        form.Format,
		Title:       form.Title,
		Description: form.Description,
		Status:      model.StatusOpen,
		UID:         &uid,
		CreatorName: &creatorName,
		GroupSize:   ptrOrNil(form.GroupSize),
		LumaLink:    ptrOrNil(form.LumaLink),
	}

	if form.CoCreator != "" {
		if id, err := uuid.Parse(form.CoCreator); err == nil {
			if _, ok := m.Directory.ResolveByID(id); ok {
				row.CoUID = &id
			} else {
				m.Log.Warn("co-creator not in directory, dropping reference",
					zap.String("co_creator", form.CoCreator))
			}
		} else {
			m.Log.Warn("co-creator reference is not a valid id, dropping",
				zap.String("co_creator", form.CoCreator))
		}
	}

	switch form.Format {
	case model.FormatWeeklyLearning:
		row.CircleFrequency = ptrOrNil(form.Frequency)
		row.CircleDay = ptrOrNil(form.Weekday)
		row.CircleTopicsOfInterest = jsonSliceOrNil(tagset.Normalize(form.TopicsOfInterest))
		row.CircleTimeLocal = m.composeOrNil(form.LearningDate, form.LearningTime)
		row.CircleTimeZone = ptrOrNil(form.LearningTimezone)

	case model.FormatHackathon:
		row.HackathonSkillsNeeded = jsonSliceOrNil(tagset.Normalize(form.Skills))
		row.HackathonEstimatedEffort = ptrOrNil(form.Effort)
		row.HackathonStartDate = ptrOrNil(form.StartDate)

	case model.FormatMeetupPod:
		row.MeetupStartTimeLocal = m.composeOrNil(form.MeetingDate, form.MeetingTime)
		if form.MeetingDuration > 0 {
			d := form.MeetingDuration
			row.MeetupDurationMinutes = &d
		}
		row.MeetupTimeZone = ptrOrNil(form.Timezone)

	case model.FormatCustomOpenCanvas:
		// only the universal group_size applies

	case model.FormatJobFunctionChat:
		if audience := tagset.Normalize(form.WhoIsThisFor); len(audience) > 0 {
			if raw, err := json.Marshal(audience); err == nil {
				row.JobFunctionChatAudience = datatypes.JSON(raw)
			}
		}
		row.JobChatTeamsURL = ptrOrNil(form.TeamsLink)
	}

	return row
}

func (m *Mapper) composeOrNil(date, clock string) *string {
	if date == "" || clock == "" {
		return nil
	}
	ts, err := localtime.Compose(date, clock)
	if err != nil {
		m.Log.Error("unparseable meeting time, leaving unset",
			zap.String("date", date), zap.String("time", clock), zap.Error(err))
		return nil
	}
	return &ts
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func ptrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func uidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func coalesceSlice(s datatypes.JSONSlice[string]) []string {
	if s == nil {
		return []string{}
	}
	return []string(s)
}

func jsonSliceOrNil(vals []string) datatypes.JSONSlice[string] {
	if len(vals) == 0 {
		return nil
	}
	return datatypes.NewJSONSlice(vals)
}
