package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/collabhub-io/collabhub/internal/modules/mapper"
	"github.com/collabhub-io/collabhub/internal/modules/model"
	"github.com/collabhub-io/collabhub/internal/modules/repo"
)

const (
	collabListCacheKey = "group_projects:list"
	collabListCacheTTL = 5 * time.Minute
)

// CollaborationService owns the collaboration listing lifecycle: the cached
// mapped list, creation through the mapper's insert path, and the
// creator-gated status transition. The list cache is refreshed on miss and
// explicitly invalidated after any successful mutation; there is no polling.
type CollaborationService interface {
	List(ctx context.Context) ([]mapper.Collaboration, error)
	Get(ctx context.Context, projectID uuid.UUID) (*mapper.Collaboration, error)
	Create(ctx context.Context, form mapper.CreateCollaborationInput) (*mapper.Collaboration, error)
	Close(ctx context.Context, projectID uuid.UUID) (*mapper.Collaboration, error)
	UpdateStatus(ctx context.Context, projectID uuid.UUID, status string) error
}

type collaborationService struct {
	r   repo.CollaborationRepo
	m   *mapper.Mapper
	rdb *redis.Client
	log *zap.Logger
}

func NewCollaborationService(r repo.CollaborationRepo, m *mapper.Mapper, rdb *redis.Client, log *zap.Logger) CollaborationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &collaborationService{r: r, m: m, rdb: rdb, log: log}
}

func (s *collaborationService) List(ctx context.Context) ([]mapper.Collaboration, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, collabListCacheKey).Bytes()
		if err == nil {
			var cached []mapper.Collaboration
			if jerr := json.Unmarshal(raw, &cached); jerr == nil {
				return cached, nil
			}
			// unreadable cache entry, fall through to the database
			s.invalidate(ctx)
		} else if !errors.Is(err, redis.Nil) {
			s.log.Warn("list cache read failed, falling back to database", zap.Error(err))
		}
	}

	rows, err := s.r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]mapper.Collaboration, 0, len(rows))
	for _, row := range rows {
		items = append(items, s.m.FromRow(row))
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(items); err == nil {
			if err := s.rdb.Set(ctx, collabListCacheKey, raw, collabListCacheTTL).Err(); err != nil {
				s.log.Warn("list cache write failed", zap.Error(err))
			}
		}
	}
	return items, nil
}

func (s *collaborationService) Get(ctx context.Context, projectID uuid.UUID) (*mapper.Collaboration, error) {
	row, err := s.r.GetByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	item := s.m.FromRow(*row)
	return &item, nil
}

func (s *collaborationService) Create(ctx context.Context, form mapper.CreateCollaborationInput) (*mapper.Collaboration, error) {
	row := s.m.InsertRow(form)
	if err := s.r.Insert(ctx, &row); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	item := s.m.FromRow(row)
	return &item, nil
}

// Close moves a listing to Closed. Only the creator may do this, and the
// check lives here, not in any rendering layer.
func (s *collaborationService) Close(ctx context.Context, projectID uuid.UUID) (*mapper.Collaboration, error) {
	if err := s.UpdateStatus(ctx, projectID, model.StatusClosed); err != nil {
		return nil, err
	}
	return s.Get(ctx, projectID)
}

// UpdateStatus sets the status to Open or Closed after an ownership check.
func (s *collaborationService) UpdateStatus(ctx context.Context, projectID uuid.UUID, status string) error {
	if status != model.StatusOpen && status != model.StatusClosed {
		return ErrUnknownStatus
	}

	row, err := s.r.GetByProjectID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if row.UID == nil || *row.UID != s.m.Identity.ID {
		return ErrNotOwner
	}

	if err := s.r.UpdateStatus(ctx, projectID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *collaborationService) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, collabListCacheKey).Err(); err != nil {
		s.log.Warn("list cache invalidation failed", zap.Error(err))
	}
}
