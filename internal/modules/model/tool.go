package model

import (
	"time"

	"github.com/google/uuid"
)

// Tool is one entry of the tools library. The collective summary is rich text
// edited in place; review aggregation over insights is computed at read time,
// never stored here.
type Tool struct {
	ToolID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tool_id" json:"tool_id"`
	ToolName          string     `gorm:"type:text;not null;index" json:"tool_name"`
	Category          *string    `gorm:"type:text" json:"category"`
	CollectiveSummary string     `gorm:"type:text;not null;default:''" json:"collective_summary"`
	ToolURL           *string    `gorm:"type:text;column:tool_url" json:"tool_url"`
	UID               *uuid.UUID `gorm:"type:uuid;column:uid" json:"uid"`

	LastUpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"last_updated_at"`
}

func (Tool) TableName() string { return "tools" }

// ToolInsight is one community review of a tool: a 1-5 rating with required
// pros and optional cons and pricing notes. tool_name is denormalized so the
// review list renders without a join.
type ToolInsight struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ToolID      uuid.UUID  `gorm:"type:uuid;not null;index;column:tool_id" json:"tool_id"`
	ToolName    string     `gorm:"type:text;not null" json:"tool_name"`
	Rating      int        `gorm:"not null" json:"rating"`
	Pros        string     `gorm:"type:text;not null" json:"pros"`
	Cons        *string    `gorm:"type:text" json:"cons"`
	PricingTips *string    `gorm:"type:text" json:"pricing_tips"`
	UID         *uuid.UUID `gorm:"type:uuid;column:uid" json:"uid"`

	SubmittedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"submitted_at"`

	// Insight <-> Tool
	Tool *Tool `gorm:"foreignKey:ToolID;references:ToolID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (ToolInsight) TableName() string { return "tool_insights" }
