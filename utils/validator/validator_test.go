package validatorx_test

import (
	"sync"
	"testing"

	validatorx "github.com/muhammadheryan/package-crud/utils/validator"
	"github.com/stretchr/testify/assert"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   interface{}
		tag     string
		wantErr bool
	}{
		{name: "valid email", field: "albert@gmail.com", tag: "required,email"},
		{name: "invalid email", field: "albert", tag: "email", wantErr: true},
		{name: "empty required", field: "", tag: "required", wantErr: true},
		{name: "int within max", field: 72, tag: "max=72"},
		{name: "int above max", field: 73, tag: "max=72", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateVar(tt.field, tt.tag)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, validatorx.ValidateStruct(&loginForm{Email: "albert@gmail.com", Password: "x"}))
	assert.Error(t, validatorx.ValidateStruct(&loginForm{Email: "albert@gmail.com"}))
}

// run with -race: first use from many goroutines must not race on the singleton
func TestValidate_ConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.NoError(t, validatorx.ValidateVar("albert@gmail.com", "email"))
				return
			}
			assert.NoError(t, validatorx.ValidateStruct(&loginForm{Email: "albert@gmail.com", Password: "x"}))
		}(i)
	}
	wg.Wait()
}
