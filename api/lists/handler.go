package lists

type ListsHandler struct{}
