package studyset

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StudySet is one saved generation artifact: a quiz of one kind, a flashcard
// deck, or a summary.
type StudySet struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind      string    `gorm:"type:text;not null" json:"kind"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Items []StudyItem `gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// StudyItem holds one generated record (or the summary text) as it came out
// of extraction. Position preserves model emission order.
type StudyItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SetID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"set_id"`
	Position  int            `gorm:"not null" json:"position"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// StudySetWithItemsDTO bundles a set with its ordered items.
type StudySetWithItemsDTO struct {
	Set   *StudySet    `json:"set"`
	Items []*StudyItem `json:"items"`
}
