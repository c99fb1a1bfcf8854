package expenses

type ExpensesHandler struct{}
