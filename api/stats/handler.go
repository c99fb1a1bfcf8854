package stats

type StatsHandler struct{}
