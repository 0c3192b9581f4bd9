package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/collabhub-io/collabhub/internal/modules/model"
)

// ToolRepo is the persistence gateway for the tools table.
type ToolRepo interface {
	List(ctx context.Context) ([]model.Tool, error)
	GetByID(ctx context.Context, toolID uuid.UUID) (*model.Tool, error)
	Insert(ctx context.Context, t *model.Tool) error
	UpdateSummary(ctx context.Context, toolID uuid.UUID, summary string) error
}

type toolRepo struct{ db *gorm.DB }

func NewToolRepo(db *gorm.DB) ToolRepo {
	return &toolRepo{db: db}
}

func (r *toolRepo) List(ctx context.Context) ([]model.Tool, error) {
	var items []model.Tool
	return items, r.db.WithContext(ctx).
		Order("last_updated_at DESC").
		Find(&items).Error
}

func (r *toolRepo) GetByID(ctx context.Context, toolID uuid.UUID) (*model.Tool, error) {
	var t model.Tool
	err := r.db.WithContext(ctx).
		Where("tool_id = ?", toolID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *toolRepo) Insert(ctx context.Context, t *model.Tool) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *toolRepo) UpdateSummary(ctx context.Context, toolID uuid.UUID, summary string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Tool{}).
		Where("tool_id = ?", toolID).
		Updates(map[string]interface{}{
			"collective_summary": summary,
			"last_updated_at":    time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
