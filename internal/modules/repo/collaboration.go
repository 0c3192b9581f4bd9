package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/collabhub-io/collabhub/internal/modules/model"
)

// CollaborationRepo is the persistence gateway for the group_projects table.
// Each mutation targets a single row by project_id; the database's per-row
// atomicity is the only consistency mechanism relied on.
type CollaborationRepo interface {
	ListAll(ctx context.Context) ([]model.Collaboration, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) (*model.Collaboration, error)
	Insert(ctx context.Context, c *model.Collaboration) error
	UpdateStatus(ctx context.Context, projectID uuid.UUID, status string) error
}

type collaborationRepo struct{ db *gorm.DB }

func NewCollaborationRepo(db *gorm.DB) CollaborationRepo {
	return &collaborationRepo{db: db}
}

func (r *collaborationRepo) ListAll(ctx context.Context) ([]model.Collaboration, error) {
	var items []model.Collaboration
	return items, r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
}

func (r *collaborationRepo) GetByProjectID(ctx context.Context, projectID uuid.UUID) (*model.Collaboration, error) {
	var c model.Collaboration
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *collaborationRepo) Insert(ctx context.Context, c *model.Collaboration) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *collaborationRepo) UpdateStatus(ctx context.Context, projectID uuid.UUID, status string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Collaboration{}).
		Where("project_id = ?", projectID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
