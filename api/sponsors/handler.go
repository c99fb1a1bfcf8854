package sponsors

type SponsorsHandler struct{}
