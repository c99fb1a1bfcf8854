package server

import (
	"campusflow/api/documents"
	"campusflow/api/events"
	"campusflow/api/expenses"
	"campusflow/api/lists"
	"campusflow/api/notifications"
	"campusflow/api/partners"
	"campusflow/api/poles"
	"campusflow/api/realtime"
	"campusflow/api/sponsors"
	"campusflow/api/stats"
	"campusflow/api/suppliers"
	"campusflow/api/tickets"
	"campusflow/api/user"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

func BackendRouting(
	db *gorm.DB,
	broadcaster *realtime.Broadcaster,
	qrSecret string,
	uploadDir string,
) http.Handler {
	mux := http.NewServeMux()
	v1PrivateApis := http.NewServeMux()
	websocketMux := http.NewServeMux()

	userHandler := &user.UserHandler{}
	listsHandler := &lists.ListsHandler{}
	eventsHandler := &events.EventsHandler{}
	ticketsHandler := &tickets.TicketsHandler{Secret: qrSecret}
	expensesHandler := &expenses.ExpensesHandler{}
	polesHandler := &poles.PolesHandler{}
	partnersHandler := &partners.PartnersHandler{}
	sponsorsHandler := &sponsors.SponsorsHandler{}
	suppliersHandler := &suppliers.SuppliersHandler{}
	notificationsHandler := &notifications.NotificationsHandler{}
	documentsHandler := &documents.DocumentsHandler{UploadDir: uploadDir}
	statsHandler := &stats.StatsHandler{}

	v1PrivateApis.HandleFunc("GET /user/self", userHandler.Self)
	v1PrivateApis.HandleFunc("POST /user/logout", userHandler.Logout)

	v1PrivateApis.HandleFunc("POST /lists/create", listsHandler.Create)
	v1PrivateApis.HandleFunc("GET /lists/current", listsHandler.Get)
	v1PrivateApis.HandleFunc("PUT /lists/current", listsHandler.Update)
	v1PrivateApis.HandleFunc("GET /lists/members", listsHandler.Members)

	v1PrivateApis.HandleFunc("GET /events/list", eventsHandler.List)
	v1PrivateApis.HandleFunc("POST /events/create", eventsHandler.Create)
	v1PrivateApis.HandleFunc("GET /events/{event_uuid}", eventsHandler.Get)
	v1PrivateApis.HandleFunc("PUT /events/{event_uuid}", eventsHandler.Update)
	v1PrivateApis.HandleFunc("DELETE /events/{event_uuid}", eventsHandler.Delete)
	v1PrivateApis.HandleFunc("GET /events/{event_uuid}/tickets/list", ticketsHandler.List)

	v1PrivateApis.HandleFunc("POST /tickets/create", ticketsHandler.Create)
	v1PrivateApis.HandleFunc("GET /tickets/{ticket_uuid}", ticketsHandler.Get)
	v1PrivateApis.HandleFunc("POST /tickets/checkin", ticketsHandler.CheckIn)

	v1PrivateApis.HandleFunc("GET /expenses/list", expensesHandler.List)
	v1PrivateApis.HandleFunc("POST /expenses/create", expensesHandler.Create)
	v1PrivateApis.HandleFunc("GET /expenses/{expense_uuid}", expensesHandler.Get)
	v1PrivateApis.HandleFunc("PUT /expenses/{expense_uuid}/status", expensesHandler.UpdateStatus)
	v1PrivateApis.HandleFunc("DELETE /expenses/{expense_uuid}", expensesHandler.Delete)
	v1PrivateApis.HandleFunc("GET /expenses/{expense_uuid}/comments", expensesHandler.ListComments)
	v1PrivateApis.HandleFunc("POST /expenses/{expense_uuid}/comments", expensesHandler.Comment)

	v1PrivateApis.HandleFunc("GET /poles/list", polesHandler.List)
	v1PrivateApis.HandleFunc("POST /poles/create", polesHandler.Create)
	v1PrivateApis.HandleFunc("GET /poles/{pole_uuid}", polesHandler.Get)
	v1PrivateApis.HandleFunc("PUT /poles/{pole_uuid}", polesHandler.Update)
	v1PrivateApis.HandleFunc("DELETE /poles/{pole_uuid}", polesHandler.Delete)

	v1PrivateApis.HandleFunc("GET /partners/list", partnersHandler.List)
	v1PrivateApis.HandleFunc("POST /partners/create", partnersHandler.Create)
	v1PrivateApis.HandleFunc("GET /partners/{partner_uuid}", partnersHandler.Get)
	v1PrivateApis.HandleFunc("PUT /partners/{partner_uuid}", partnersHandler.Update)
	v1PrivateApis.HandleFunc("DELETE /partners/{partner_uuid}", partnersHandler.Delete)

	v1PrivateApis.HandleFunc("GET /sponsors/list", sponsorsHandler.List)
	v1PrivateApis.HandleFunc("POST /sponsors/create", sponsorsHandler.Create)
	v1PrivateApis.HandleFunc("GET /sponsors/{sponsor_uuid}", sponsorsHandler.Get)
	v1PrivateApis.HandleFunc("PUT /sponsors/{sponsor_uuid}", sponsorsHandler.Update)
	v1PrivateApis.HandleFunc("DELETE /sponsors/{sponsor_uuid}", sponsorsHandler.Delete)

	v1PrivateApis.HandleFunc("GET /suppliers/list", suppliersHandler.List)
	v1PrivateApis.HandleFunc("POST /suppliers/create", suppliersHandler.Create)
	v1PrivateApis.HandleFunc("GET /suppliers/{supplier_uuid}", suppliersHandler.Get)
	v1PrivateApis.HandleFunc("PUT /suppliers/{supplier_uuid}", suppliersHandler.Update)
	v1PrivateApis.HandleFunc("DELETE /suppliers/{supplier_uuid}", suppliersHandler.Delete)

	v1PrivateApis.HandleFunc("GET /notifications/list", notificationsHandler.List)
	v1PrivateApis.HandleFunc("POST /notifications/read-all", notificationsHandler.MarkAllRead)
	v1PrivateApis.HandleFunc("POST /notifications/{notification_uuid}/read", notificationsHandler.MarkRead)
	v1PrivateApis.HandleFunc("DELETE /notifications/{notification_uuid}", notificationsHandler.Delete)

	v1PrivateApis.HandleFunc("GET /stats/summary", statsHandler.Summary)

	v1PrivateApis.HandleFunc("POST /documents/upload", documentsHandler.Upload)
	v1PrivateApis.HandleFunc("GET /documents/list", documentsHandler.List)
	v1PrivateApis.HandleFunc("GET /documents/{file_id}", documentsHandler.GetInfo)
	v1PrivateApis.HandleFunc("GET /documents/{file_id}/download", documentsHandler.Download)
	v1PrivateApis.HandleFunc("DELETE /documents/{file_id}", documentsHandler.Delete)

	mux.HandleFunc("POST /api/v1/user/login", userHandler.Login)
	mux.HandleFunc("POST /api/v1/user/register", userHandler.Register)
	mux.HandleFunc("GET /_health", func(w http.ResponseWriter, r *http.Request) {
		if ServerStatus != "running" {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(fmt.Sprintf("Server is not running, status: %s", ServerStatus)))
		} else {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("Server is running"))
		}
	})
	privateStack := CreateStack(
		Logging,
		AuthMiddleware(db),
	)
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", privateStack(v1PrivateApis)))

	websocketMux.HandleFunc("/connect", broadcaster.Connect)
	mux.Handle("/ws/", http.StripPrefix("/ws", AuthMiddleware(db)(websocketMux)))

	return ContextMiddleware(db, broadcaster)(mux)
}
