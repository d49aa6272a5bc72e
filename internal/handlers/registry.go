package handlers

// AppHandlers bundles every handler the router mounts.
type AppHandlers struct {
	AuthHandler   *AuthHandler
	UserHandler   *UserHandler
	HelperHandler *HelperHandler
	TaskHandler   *TaskHandler
	ReviewHandler *ReviewHandler
}
