package events

type EventsHandler struct{}
