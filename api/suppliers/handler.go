package suppliers

type SuppliersHandler struct{}
