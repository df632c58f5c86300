package invite

import "errors"

var (
	ErrInviteNotFound     = errors.New("invite not found")
	ErrInviteExpired      = errors.New("invite window has ended")
	ErrNotInviteCreator   = errors.New("only the invite creator may perform this action")
	ErrWindowParseFailed  = errors.New("could not understand the invite time window")
	ErrInvalidWindow      = errors.New("invite window end must be after its start")
	ErrInviteCreateFailed = errors.New("failed to create invite")
)
