package service

import (
	"github.com/google/uuid"

	"github.com/collabhub-io/collabhub/internal/modules/model"
	"github.com/collabhub-io/collabhub/internal/modules/repo"
)

// DirectoryService exposes the directory to the picker and anything else
// needing name/email resolution.
type DirectoryService interface {
	ResolveByID(id uuid.UUID) (*model.DirectoryUser, bool)
	Search(query string) []model.DirectoryUser
}

type directoryService struct {
	r repo.DirectoryRepo
}

func NewDirectoryService(r repo.DirectoryRepo) DirectoryService {
	return &directoryService{r: r}
}

func (s *directoryService) ResolveByID(id uuid.UUID) (*model.DirectoryUser, bool) {
	return s.r.ResolveByID(id)
}

func (s *directoryService) Search(query string) []model.DirectoryUser {
	return s.r.Search(query)
}
