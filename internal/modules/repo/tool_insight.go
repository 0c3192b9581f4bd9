package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/collabhub-io/collabhub/internal/modules/model"
)

// ToolInsightRepo is the persistence gateway for the tool_insights table.
type ToolInsightRepo interface {
	ListForTool(ctx context.Context, toolID uuid.UUID) ([]model.ToolInsight, error)
	Insert(ctx context.Context, in *model.ToolInsight) error
	CountForTool(ctx context.Context, toolID uuid.UUID) (int64, error)
	CountsForTools(ctx context.Context, toolIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type toolInsightRepo struct{ db *gorm.DB }

func NewToolInsightRepo(db *gorm.DB) ToolInsightRepo {
	return &toolInsightRepo{db: db}
}

func (r *toolInsightRepo) ListForTool(ctx context.Context, toolID uuid.UUID) ([]model.ToolInsight, error) {
	var items []model.ToolInsight
	return items, r.db.WithContext(ctx).
		Where("tool_id = ?", toolID).
		Order("submitted_at DESC").
		Find(&items).Error
}

func (r *toolInsightRepo) Insert(ctx context.Context, in *model.ToolInsight) error {
	return r.db.WithContext(ctx).Create(in).Error
}

func (r *toolInsightRepo) CountForTool(ctx context.Context, toolID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ToolInsight{}).
		Where("tool_id = ?", toolID).
		Count(&count).Error
	return count, err
}

func (r *toolInsightRepo) CountsForTools(ctx context.Context, toolIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(toolIDs))
	if len(toolIDs) == 0 {
		return counts, nil
	}

	type row struct {
		ToolID uuid.UUID
		N      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.ToolInsight{}).
		Select("tool_id, COUNT(*) AS n").
		Where("tool_id IN ?", toolIDs).
		Group("tool_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, rw := range rows {
		counts[rw.ToolID] = rw.N
	}
	return counts, nil
}
