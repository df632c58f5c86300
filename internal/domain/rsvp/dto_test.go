package rsvp

import (
	"testing"

	"github.com/gatherly/rsvp-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInviteID = "a8098c1a-f86e-11da-bd1a-00112444be1e"

func TestSubmitRequest_Validate_Guest(t *testing.T) {
	t.Parallel()
	req := SubmitRequest{
		InviteID: testInviteID,
		Email:    "dana@example.com",
		State:    "join",
	}
	assert.NoError(t, req.Validate(false))
}

func TestSubmitRequest_Validate_GuestEmailWhitespaceAndCase(t *testing.T) {
	t.Parallel()
	// Differs from a clean address only by whitespace and case; the
	// resolver collapses both, so validation must accept it too
	req := SubmitRequest{
		InviteID: testInviteID,
		Email:    "  Dana@Example.com  ",
		State:    "join",
	}
	assert.NoError(t, req.Validate(false))

	req.Email = "\t dana@example.com \n"
	assert.NoError(t, req.Validate(false))
}

func TestSubmitRequest_Validate_GuestNeedsEmail(t *testing.T) {
	t.Parallel()
	req := SubmitRequest{
		InviteID: testInviteID,
		State:    "join",
	}

	err := req.Validate(false)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "email")
}

func TestSubmitRequest_Validate_AuthenticatedSkipsEmail(t *testing.T) {
	t.Parallel()
	req := SubmitRequest{
		InviteID: testInviteID,
		State:    "maybe",
	}
	assert.NoError(t, req.Validate(true))
}

func TestSubmitRequest_Validate_State(t *testing.T) {
	t.Parallel()
	req := SubmitRequest{
		InviteID: testInviteID,
		Email:    "dana@example.com",
		State:    "attending",
	}

	err := req.Validate(false)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "state")
}

func TestSubmitRequest_Validate_InviteID(t *testing.T) {
	t.Parallel()
	req := SubmitRequest{
		InviteID: "nope",
		Email:    "dana@example.com",
		State:    "decline",
	}

	err := req.Validate(false)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "invite_id")
}

func TestState_IsValid(t *testing.T) {
	t.Parallel()
	assert.True(t, StateJoin.IsValid())
	assert.True(t, StateMaybe.IsValid())
	assert.True(t, StateDecline.IsValid())
	assert.False(t, State("attending").IsValid())
	assert.False(t, State("").IsValid())
}
