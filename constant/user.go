package constant

import "net/http"

type contextKey string

// UserIDKey holds the authenticated user id in a request context.
const UserIDKey contextKey = "user_id"

// DeletedFlag marks whether a record is logically removed.
type DeletedFlag int

const (
	Active  DeletedFlag = 0
	Deleted DeletedFlag = 1
)

// ValidationStatusCode is embedded in user responses when a request is rejected.
const ValidationStatusCode = http.StatusUnauthorized

// NotFoundStatusCode is embedded in user responses when the target user is absent.
const NotFoundStatusCode = http.StatusNotFound

// Validation message catalog.
const (
	MsgRoleIDPositive    = "role id must be positive"
	MsgNameRequired      = "name is required"
	MsgPhoneRequired     = "phone number is required"
	MsgEmailRequired     = "email is required"
	MsgEmail             = "email format is invalid"
	MsgPasswordLength    = "password must be at least 8 characters"
	MsgPasswordTooLong   = "password must be at most 72 bytes"
	MsgPasswordUppercase = "password must contain uppercase"
	MsgPasswordLowercase = "password must contain lowercase"
	MsgPasswordNumber    = "password must contain number"
	MsgEmailRegistered   = "email already registered"
	MsgUserNotFound      = "user not found"
)

// Sequence names used for numeric id generation.
const (
	SequenceUser    = "user"
	SequencePackage = "package"
)
