package repo

import (
	"strings"

	"github.com/google/uuid"

	"github.com/collabhub-io/collabhub/internal/modules/model"
)

// DirectoryRepo resolves identity references to directory entries and backs
// the co-creator picker's searchable list. The in-memory implementation
// stands in for a real directory service; callers depend only on this
// interface so one can be substituted without touching the mapper or picker.
type DirectoryRepo interface {
	ResolveByID(id uuid.UUID) (*model.DirectoryUser, bool)
	Search(query string) []model.DirectoryUser
	List() []model.DirectoryUser
}

type memoryDirectoryRepo struct {
	users []model.DirectoryUser
}

// NewMemoryDirectoryRepo returns a DirectoryRepo over a fixed user list.
func NewMemoryDirectoryRepo(users []model.DirectoryUser) DirectoryRepo {
	return &memoryDirectoryRepo{users: users}
}

// NewDefaultDirectoryRepo returns the stock directory used until a real
// directory service is wired in.
func NewDefaultDirectoryRepo() DirectoryRepo {
	return NewMemoryDirectoryRepo([]model.DirectoryUser{
		{ID: uuid.MustParse("c9be3fab-31cd-4c23-86d3-2783fe3f15dd"), Name: "Sarah Chen", Email: "sarah.chen@email.com"},
		{ID: uuid.MustParse("b63a0c14-148e-43c4-96ef-d24451a10628"), Name: "Mike Rodriguez", Email: "mike.rodriguez@email.com"},
		{ID: uuid.MustParse("ffaf4e8d-21b2-45ce-bd24-5727fbbfab85"), Name: "Alex Kim", Email: "alex.kim@email.com"},
		{ID: uuid.MustParse("fc2b5f73-c925-44ce-afbc-7b0a2ed1a610"), Name: "Jordan Lee", Email: "jordan.lee@email.com"},
		{ID: uuid.MustParse("10fb8776-0117-4f7f-b9be-ec342ee0140b"), Name: "Jessica Park", Email: "jessica.park@email.com"},
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Jennifer Smith", Email: "jennifer.smith@email.com"},
		{ID: uuid.MustParse("aa7e7b7a-cfa4-437a-8a4f-22ebb886e843"), Name: "Lucas Nguyen", Email: "lucas.nguyen@email.com"},
		{ID: uuid.MustParse("97f46f2d-6721-497e-a6b0-ae1a62aaa3eb"), Name: "Priya Patel", Email: "priya.patel@email.com"},
	})
}

func (r *memoryDirectoryRepo) ResolveByID(id uuid.UUID) (*model.DirectoryUser, bool) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, true
		}
	}
	return nil, false
}

func (r *memoryDirectoryRepo) Search(query string) []model.DirectoryUser {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.List()
	}
	var out []model.DirectoryUser
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name+" "+u.Email), q) {
			out = append(out, u)
		}
	}
	return out
}

func (r *memoryDirectoryRepo) List() []model.DirectoryUser {
	out := make([]model.DirectoryUser, len(r.users))
	copy(out, r.users)
	return out
}
