package service

import (
	"sort"
	"strings"

	"github.com/collabhub-io/collabhub/internal/modules/mapper"
	"github.com/collabhub-io/collabhub/internal/modules/model"
)

// Synthetic tabs alongside the per-format display labels.
const (
	TabAllFormats = "All Formats"
	TabMyProjects = "My Projects"
)

// FilterState is the list view's filter state: active format tab, Open/Closed
// toggle, and free-text query.
type FilterState struct {
	Tab    string
	Status string
	Query  string
}

// FilterCollaborations derives the visible subset: status equality AND the
// tab predicate AND a case-insensitive substring match over title and
// description, sorted newest first. Pure function of its inputs.
func FilterCollaborations(items []mapper.Collaboration, f FilterState, identity model.Identity) []mapper.Collaboration {
	query := strings.ToLower(f.Query)

	out := make([]mapper.Collaboration, 0, len(items))
	for _, item := range items {
		if item.Status != f.Status {
			continue
		}
		if !matchesTab(item, f.Tab, identity) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

func matchesTab(item mapper.Collaboration, tab string, identity model.Identity) bool {
	switch tab {
	case TabAllFormats, "":
		return true
	case TabMyProjects:
		return isOwnedBy(item, identity)
	default:
		display := model.FormatDisplayMap[item.Format]
		if display == "" {
			display = item.Format
		}
		return display == tab
	}
}

// MyProjectsCount counts the current identity's listings over ALL items,
// independent of the active status filter or tab; it feeds the tab badge.
func MyProjectsCount(items []mapper.Collaboration, identity model.Identity) int {
	n := 0
	for _, item := range items {
		if isOwnedBy(item, identity) {
			n++
		}
	}
	return n
}

func isOwnedBy(item mapper.Collaboration, identity model.Identity) bool {
	return item.UID != "" && item.UID == identity.ID.String()
}
