package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidEmail("dana@example.com"))
	assert.True(t, IsValidEmail("dana.r+tag@sub.example.co"))
	assert.False(t, IsValidEmail("dana"))
	assert.False(t, IsValidEmail("dana@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("dana@example"))
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValidUUID("a8098c1a-f86e-11da-bd1a-00112444be1e"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "state", Message: "state must be one of join, maybe, decline"},
	}

	assert.Equal(t, "email: email is required; state: state must be one of join, maybe, decline", errs.Error())

	m := errs.ToMap()
	assert.Equal(t, "email is required", m["email"])
	assert.Equal(t, "state must be one of join, maybe, decline", m["state"])
}
