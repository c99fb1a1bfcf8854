package notifications

type NotificationsHandler struct{}
