package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/collabhub-io/collabhub/internal/modules/mapper"
	"github.com/collabhub-io/collabhub/internal/modules/model"
)

var listIdentity = model.Identity{
	ID:   uuid.MustParse("00000000-0000-0000-0000-000000000001"),
	Name: "Sarah Chen",
}

func fixtureItems() []mapper.Collaboration {
	me := listIdentity.ID.String()
	other := uuid.NewString()
	return []mapper.Collaboration{
		{ProjectID: "a", Title: "Resume bot hackathon", Description: "build with GPT", Format: model.FormatHackathon, Status: "Open", UID: me, CreatedAt: 100},
		{ProjectID: "b", Title: "SQL circle", Description: "weekly SQL", Format: model.FormatWeeklyLearning, Status: "Open", UID: other, CreatedAt: 300},
		{ProjectID: "c", Title: "Closed pod", Description: "was a meetup", Format: model.FormatMeetupPod, Status: "Closed", UID: me, CreatedAt: 200},
		{ProjectID: "d", Title: "Analysts chat", Description: "job function space", Format: model.FormatJobFunctionChat, Status: "Open", UID: other, CreatedAt: 400},
	}
}

func projectIDs(items []mapper.Collaboration) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ProjectID)
	}
	return out
}

func TestFilterCollaborations(t *testing.T) {
	items := fixtureItems()

	tests := []struct {
		name  string
		state FilterState
		want  []string
	}{
		{
			name:  "all formats open, newest first",
			state: FilterState{Tab: TabAllFormats, Status: "Open"},
			want:  []string{"d", "b", "a"},
		},
		{
			name:  "closed toggle",
			state: FilterState{Tab: TabAllFormats, Status: "Closed"},
			want:  []string{"c"},
		},
		{
			name:  "my projects respects the status filter",
			state: FilterState{Tab: TabMyProjects, Status: "Open"},
			want:  []string{"a"},
		},
		{
			name:  "format tab matches by display label",
			state: FilterState{Tab: "Learning Circle", Status: "Open"},
			want:  []string{"b"},
		},
		{
			name:  "hackathon tab uses its display label, not the stored type",
			state: FilterState{Tab: "Hackathon / Side Project", Status: "Open"},
			want:  []string{"a"},
		},
		{
			name:  "query is case-insensitive over title and description",
			state: FilterState{Tab: TabAllFormats, Status: "Open", Query: "gpt"},
			want:  []string{"a"},
		},
		{
			name:  "query matches description too",
			state: FilterState{Tab: TabAllFormats, Status: "Open", Query: "job function"},
			want:  []string{"d"},
		},
		{
			name:  "no matches",
			state: FilterState{Tab: TabAllFormats, Status: "Open", Query: "kubernetes"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCollaborations(items, tt.state, listIdentity)
			assert.Equal(t, tt.want, projectIDs(got))
		})
	}
}

// The badge count covers all of the identity's listings regardless of the
// active status filter or tab.
func TestMyProjectsCount_IndependentOfFilters(t *testing.T) {
	items := fixtureItems()

	assert.Equal(t, 2, MyProjectsCount(items, listIdentity))

	// the Closed item still counts even when the view filters it out
	visible := FilterCollaborations(items, FilterState{Tab: TabMyProjects, Status: "Open"}, listIdentity)
	assert.Len(t, visible, 1)
	assert.Equal(t, 2, MyProjectsCount(items, listIdentity))
}

func TestMyProjectsCount_NoOwnership(t *testing.T) {
	stranger := model.Identity{ID: uuid.New(), Name: "Nobody"}
	assert.Equal(t, 0, MyProjectsCount(fixtureItems(), stranger))
}
