package constant

const (
	EntityUser    = "user"
	EntityPackage = "package"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)
