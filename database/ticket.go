package database

import "time"

const (
	TicketStatusValid     = "VALID"
	TicketStatusUsed      = "USED"
	TicketStatusCancelled = "CANCELLED"
)

type Ticket struct {
	Model
	EventId uint  `json:"-" gorm:"index"`
	Event   Event `json:"event" gorm:"foreignKey:EventId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	UserId  uint  `json:"-" gorm:"index"`
	User    User  `json:"holder" gorm:"foreignKey:UserId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
	Status  string `json:"status" gorm:"default:'VALID'"`
	// QRToken is an opportunistic cache of the derived token; the token is
	// always recomputable from the ticket, event and holder UUIDs.
	QRToken        string     `json:"qr_token"`
	CheckedInAt    *time.Time `json:"checked_in_at"`
	ReminderSentAt *time.Time `json:"-"`
}
