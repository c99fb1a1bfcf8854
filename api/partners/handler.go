package partners

type PartnersHandler struct{}
