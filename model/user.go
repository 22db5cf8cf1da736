package model

import "github.com/muhammadheryan/package-crud/constant"

// UserEntity represents a document in the users collection
type UserEntity struct {
	ID          int64                `bson:"_id" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Email       string               `bson:"email" json:"email"`
	PhoneNumber string               `bson:"phoneNumber" json:"phoneNumber"`
	Password    string               `bson:"password" json:"-"`
	RoleID      int                  `bson:"roleId" json:"roleId"`
	IsDeleted   constant.DeletedFlag `bson:"isDeleted" json:"isDeleted"`
}

// UserRequest is the payload for user creation and update
type UserRequest struct {
	RoleID      int    `json:"roleId"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// UserResponse carries either the stored user or an in-band error.
// StatusCode and Description are only set when the request was rejected.
type UserResponse struct {
	ID          int64  `json:"id"`
	RoleID      int    `json:"roleId,omitempty"`
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
	StatusCode  *int   `json:"statusCode,omitempty"`
	Description string `json:"description,omitempty"`
}

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// ToUserResponse maps a stored user to its response DTO
func ToUserResponse(u *UserEntity) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		RoleID:      u.RoleID,
		Name:        u.Name,
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
	}
}

// NewUserErrorResponse builds a response carrying an in-band error
func NewUserErrorResponse(statusCode int, description string) *UserResponse {
	return &UserResponse{
		StatusCode:  &statusCode,
		Description: description,
	}
}
