package user

import (
	"strconv"
	"unicode"

	"github.com/muhammadheryan/package-crud/constant"
	"github.com/muhammadheryan/package-crud/model"
	validatorx "github.com/muhammadheryan/package-crud/utils/validator"
)

const (
	minPasswordLength = 8
	// bcrypt rejects longer inputs
	maxPasswordBytes = 72
)

// ValidationResult is either ok or the catalog message of the first failed rule
type ValidationResult struct {
	OK     bool
	Reason string
}

var validResult = ValidationResult{OK: true}

func invalid(reason string) ValidationResult {
	return ValidationResult{Reason: reason}
}

// ValidateUserRequest checks the request fields in declaration order and
// reports the first failure.
func ValidateUserRequest(req *model.UserRequest) ValidationResult {
	checks := []func() ValidationResult{
		func() ValidationResult { return ValidateRoleID(req.RoleID) },
		func() ValidationResult { return ValidateRequired(req.Name, constant.MsgNameRequired) },
		func() ValidationResult { return ValidateRequired(req.PhoneNumber, constant.MsgPhoneRequired) },
		func() ValidationResult { return ValidateEmail(req.Email) },
		func() ValidationResult { return ValidatePassword(req.Password) },
	}
	for _, check := range checks {
		if res := check(); !res.OK {
			return res
		}
	}
	return validResult
}

func ValidateRoleID(roleID int) ValidationResult {
	if roleID <= 0 {
		return invalid(constant.MsgRoleIDPositive)
	}
	return validResult
}

func ValidateRequired(value, reason string) ValidationResult {
	if validatorx.ValidateVar(value, "required") != nil {
		return invalid(reason)
	}
	return validResult
}

func ValidateEmail(email string) ValidationResult {
	if validatorx.ValidateVar(email, "required") != nil {
		return invalid(constant.MsgEmailRequired)
	}
	if validatorx.ValidateVar(email, "email") != nil {
		return invalid(constant.MsgEmail)
	}
	return validResult
}

// ValidatePassword applies minimum length, maximum byte length, uppercase, lowercase
// and digit rules in that order.
func ValidatePassword(password string) ValidationResult {
	if len([]rune(password)) < minPasswordLength {
		return invalid(constant.MsgPasswordLength)
	}
	if validatorx.ValidateVar(len(password), "max="+strconv.Itoa(maxPasswordBytes)) != nil {
		return invalid(constant.MsgPasswordTooLong)
	}
	if !containsRune(password, unicode.IsUpper) {
		return invalid(constant.MsgPasswordUppercase)
	}
	if !containsRune(password, unicode.IsLower) {
		return invalid(constant.MsgPasswordLowercase)
	}
	if !containsRune(password, unicode.IsDigit) {
		return invalid(constant.MsgPasswordNumber)
	}
	return validResult
}

func containsRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}
	return false
}
