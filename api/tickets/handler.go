package tickets

// TicketsHandler carries the signing key for QR tokens.
type TicketsHandler struct {
	Secret string
}
