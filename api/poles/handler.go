package poles

type PolesHandler struct{}
