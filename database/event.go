package database

import "time"

const (
	EventStatusDraft     = "DRAFT"
	EventStatusPublished = "PUBLISHED"
	EventStatusCancelled = "CANCELLED"
)

type Event struct {
	Model
	ListId      uint       `json:"-" gorm:"index"`
	List        List       `json:"-" gorm:"foreignKey:ListId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Capacity    int        `json:"capacity"`
	Price       float64    `json:"price"`
	Status      string     `json:"status" gorm:"default:'DRAFT'"`
	PoleId      *uint      `json:"-" gorm:"index"`
	Pole        *Pole      `json:"pole,omitempty" gorm:"foreignKey:PoleId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	CreatedById uint       `json:"-" gorm:"index"`
}
