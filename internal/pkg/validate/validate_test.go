package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string `validate:"required,email_shape"`
	Code  string `validate:"required"`
}

func TestStruct_OK(t *testing.T) {
	assert.NoError(t, Struct(&sample{Email: " Jane@Example.com ", Code: "123456"}))
}

func TestStruct_EmailShape(t *testing.T) {
	err := Struct(&sample{Email: "a@b", Code: "1"})
	assert.EqualError(t, err, "field 'Email' failed 'email_shape'")
}

func TestStruct_MultipleFailures(t *testing.T) {
	err := Struct(&sample{})
	assert.EqualError(t, err, "field 'Email' failed 'required'; field 'Code' failed 'required'")
}
