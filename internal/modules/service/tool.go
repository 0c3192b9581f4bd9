package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/collabhub-io/collabhub/internal/modules/model"
	"github.com/collabhub-io/collabhub/internal/modules/repo"
)

// ToolWithCount is a tool plus its review count, computed over the insights
// table at read time rather than stored.
type ToolWithCount struct {
	model.Tool
	InsightsCount int64 `json:"insights_count"`
}

// ToolService covers the tools-library flow: browse tools, edit the
// collective summary, and submit insights.
type ToolService interface {
	List(ctx context.Context) ([]ToolWithCount, error)
	Get(ctx context.Context, toolID uuid.UUID) (*ToolWithCount, error)
	Create(ctx context.Context, in CreateToolInput) (*model.Tool, error)
	UpdateSummary(ctx context.Context, toolID uuid.UUID, summary string) error
	ListInsights(ctx context.Context, toolID uuid.UUID) ([]model.ToolInsight, error)
	AddInsight(ctx context.Context, in AddInsightInput) (*model.ToolInsight, error)
}

type toolService struct {
	tools    repo.ToolRepo
	insights repo.ToolInsightRepo
	identity model.Identity
}

func NewToolService(tools repo.ToolRepo, insights repo.ToolInsightRepo, identity model.Identity) ToolService {
	return &toolService{tools: tools, insights: insights, identity: identity}
}

func (s *toolService) List(ctx context.Context) ([]ToolWithCount, error) {
	tools, err := s.tools.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(tools))
	for _, t := range tools {
		ids = append(ids, t.ToolID)
	}
	counts, err := s.insights.CountsForTools(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ToolWithCount, 0, len(tools))
	for _, t := range tools {
		out = append(out, ToolWithCount{Tool: t, InsightsCount: counts[t.ToolID]})
	}
	return out, nil
}

func (s *toolService) Get(ctx context.Context, toolID uuid.UUID) (*ToolWithCount, error) {
	t, err := s.tools.GetByID(ctx, toolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}
	count, err := s.insights.CountForTool(ctx, toolID)
	if err != nil {
		return nil, err
	}
	return &ToolWithCount{Tool: *t, InsightsCount: count}, nil
}

type CreateToolInput struct {
	ToolName string
	Category string
	ToolURL  string
}

func (s *toolService) Create(ctx context.Context, in CreateToolInput) (*model.Tool, error) {
	name := strings.TrimSpace(in.ToolName)
	if name == "" {
		return nil, errors.New("tool name is empty")
	}

	uid := s.identity.ID
	t := &model.Tool{
		ToolName: name,
		UID:      &uid,
		// summary starts empty and is filled in collaboratively later
		CollectiveSummary: "",
	}
	if c := strings.TrimSpace(in.Category); c != "" {
		t.Category = &c
	}
	if u := strings.TrimSpace(in.ToolURL); u != "" {
		t.ToolURL = &u
	}

	if err := s.tools.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *toolService) UpdateSummary(ctx context.Context, toolID uuid.UUID, summary string) error {
	err := s.tools.UpdateSummary(ctx, toolID, strings.TrimSpace(summary))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrToolNotFound
	}
	return err
}

func (s *toolService) ListInsights(ctx context.Context, toolID uuid.UUID) ([]model.ToolInsight, error) {
	return s.insights.ListForTool(ctx, toolID)
}

type AddInsightInput struct {
	ToolID      uuid.UUID
	Rating      int
	Pros        string
	Cons        string
	PricingTips string
}

func (s *toolService) AddInsight(ctx context.Context, in AddInsightInput) (*model.ToolInsight, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	pros := strings.TrimSpace(in.Pros)
	if pros == "" {
		return nil, errors.New("pros is required")
	}

	tool, err := s.tools.GetByID(ctx, in.ToolID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}

	uid := s.identity.ID
	insight := &model.ToolInsight{
		ToolID:   tool.ToolID,
		ToolName: tool.ToolName,
		Rating:   in.Rating,
		Pros:     pros,
		UID:      &uid,
	}
	if c := strings.TrimSpace(in.Cons); c != "" {
		insight.Cons = &c
	}
	if p := strings.TrimSpace(in.PricingTips); p != "" {
		insight.PricingTips = &p
	}

	if err := s.insights.Insert(ctx, insight); err != nil {
		return nil, err
	}
	return insight, nil
}
