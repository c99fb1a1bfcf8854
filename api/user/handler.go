package user

type UserHandler struct{}
