package notifications

import (
	"campusflow/database"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Action is a typed state change a notification can describe.
type Action string

const (
	ExpenseCreated  Action = "expense_created"
	ExpenseApproved Action = "expense_approved"
	ExpenseRejected Action = "expense_rejected"
	ExpensePaid     Action = "expense_paid"
	EventCreated    Action = "event_created"
	EventUpdated    Action = "event_updated"
	EventCancelled  Action = "event_cancelled"
	EventReminder   Action = "event_reminder"
	CommentPosted   Action = "comment_posted"
)

type template struct {
	Title   string
	Message string
}

// title/message pairs are synthesized from this fixed table; %q receives
// the subject (event title, expense title, ...).
var templates = map[Action]template{
	ExpenseCreated:  {"New expense", "Expense %q was submitted and awaits review"},
	ExpenseApproved: {"Expense approved", "Your expense %q was approved"},
	ExpenseRejected: {"Expense rejected", "Your expense %q was rejected"},
	ExpensePaid:     {"Expense paid", "Your expense %q was paid out"},
	EventCreated:    {"New event", "Event %q was created"},
	EventUpdated:    {"Event updated", "Event %q was updated"},
	EventCancelled:  {"Event cancelled", "Event %q was cancelled"},
	EventReminder:   {"Event reminder", "Event %q starts within the next 24 hours"},
	CommentPosted:   {"New comment", "A new comment was posted on %q"},
}

// Notify persists one notification row for a single recipient.
func Notify(DB *gorm.DB, recipientID uint, action Action, relatedType string, relatedUUID string, subject string) error {
	tpl, ok := templates[action]
	if !ok {
		return fmt.Errorf("unknown notification action: %s", action)
	}

	notification := database.Notification{
		UserId:      recipientID,
		Type:        string(action),
		Title:       tpl.Title,
		Message:     fmt.Sprintf(tpl.Message, subject),
		RelatedType: relatedType,
		RelatedUUID: relatedUUID,
	}

	return DB.Create(&notification).Error
}

type FanoutError struct {
	RecipientUUID string `json:"recipient_uuid"`
	Error         string `json:"error"`
}

// FanoutReport accounts for every recipient of a batch write. Rows already
// written are not rolled back on partial failure, but the failure is
// reported instead of being swallowed.
type FanoutReport struct {
	Sent   int           `json:"sent"`
	Failed int           `json:"failed"`
	Errors []FanoutError `json:"errors,omitempty"`
}

func notifyEach(DB *gorm.DB, recipients []database.User, action Action, relatedType string, relatedUUID string, subject string) FanoutReport {
	var report FanoutReport
	for _, recipient := range recipients {
		if err := Notify(DB, recipient.ID, action, relatedType, relatedUUID, subject); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, FanoutError{
				RecipientUUID: recipient.UUID,
				Error:         err.Error(),
			})
			continue
		}
		report.Sent++
	}

	if report.Failed > 0 {
		log.Warn().
			Str("action", string(action)).
			Int("sent", report.Sent).
			Int("failed", report.Failed).
			Msg("notification fan-out partially failed")
	}
	return report
}

// NotifyTreasurers writes one notification per treasurer or admin of a list.
func NotifyTreasurers(DB *gorm.DB, listID uint, action Action, relatedType string, relatedUUID string, subject string) FanoutReport {
	var recipients []database.User
	DB.Where("list_id = ? AND role IN ?", listID, []string{database.RoleTreasurer, database.RoleAdmin}).Find(&recipients)
	return notifyEach(DB, recipients, action, relatedType, relatedUUID, subject)
}

// NotifyAllMembers writes one notification per member of a list, skipping
// the acting user.
func NotifyAllMembers(DB *gorm.DB, listID uint, exceptUserID uint, action Action, relatedType string, relatedUUID string, subject string) FanoutReport {
	var recipients []database.User
	DB.Where("list_id = ? AND id <> ?", listID, exceptUserID).Find(&recipients)
	return notifyEach(DB, recipients, action, relatedType, relatedUUID, subject)
}
