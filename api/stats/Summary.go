package stats

import (
	"campusflow/api"
	"campusflow/database"
	"campusflow/server/util"
	"net/http"
)

type Summary struct {
	Members       int64            `json:"members"`
	Events        map[string]int64 `json:"events"`
	TicketsIssued int64            `json:"tickets_issued"`
	TicketsUsed   int64            `json:"tickets_used"`
	Expenses      map[string]int64 `json:"expenses"`
	// PendingAmount is the summed amount of expenses still awaiting review.
	PendingAmount float64 `json:"pending_amount"`
	Partners      int64   `json:"partners"`
	Sponsors      int64   `json:"sponsors"`
}

// Summary aggregates the headline numbers of the user's list for the
// dashboard. Treasurers and admins only.
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	DB, user, err := util.GetDBAndUser(r)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "unable to get database or user")
		return
	}

	if !user.IsTreasurer() {
		api.WriteError(w, http.StatusUnauthorized, "only treasurers may view list statistics")
		return
	}

	list, err := util.GetUserList(DB, user)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary := Summary{
		Events:   make(map[string]int64),
		Expenses: make(map[string]int64),
	}

	DB.Model(&database.User{}).Where("list_id = ?", list.ID).Count(&summary.Members)
	DB.Model(&database.Partner{}).Where("list_id = ?", list.ID).Count(&summary.Partners)
	DB.Model(&database.Sponsor{}).Where("list_id = ?", list.ID).Count(&summary.Sponsors)

	type statusCount struct {
		Status string
		Total  int64
	}
	var eventCounts []statusCount
	DB.Model(&database.Event{}).
		Select("status, COUNT(*) AS total").
		Where("list_id = ?", list.ID).
		Group("status").
		Scan(&eventCounts)
	for _, c := range eventCounts {
		summary.Events[c.Status] = c.Total
	}

	var expenseCounts []statusCount
	DB.Model(&database.Expense{}).
		Select("status, COUNT(*) AS total").
		Where("list_id = ?", list.ID).
		Group("status").
		Scan(&expenseCounts)
	for _, c := range expenseCounts {
		summary.Expenses[c.Status] = c.Total
	}

	DB.Model(&database.Ticket{}).
		Joins("JOIN events ON events.id = tickets.event_id").
		Where("events.list_id = ? AND tickets.status <> ?", list.ID, database.TicketStatusCancelled).
		Count(&summary.TicketsIssued)
	DB.Model(&database.Ticket{}).
		Joins("JOIN events ON events.id = tickets.event_id").
		Where("events.list_id = ? AND tickets.status = ?", list.ID, database.TicketStatusUsed).
		Count(&summary.TicketsUsed)

	DB.Model(&database.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("list_id = ? AND status = ?", list.ID, database.ExpenseStatusPending).
		Scan(&summary.PendingAmount)

	api.WriteJSON(w, http.StatusOK, &summary)
}
