package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Init initializes the validator singleton (idempotent, safe for concurrent use)
func Init() {
	once.Do(func() {
		v = gpvalidator.New()
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}

// ValidateVar validates a single value against a tag, e.g. "required,email"
func ValidateVar(field interface{}, tag string) error {
	Init()
	return v.Var(field, tag)
}
