package rsvp

import "errors"

var (
	ErrRSVPNotFound = errors.New("rsvp not found")
	ErrUpsertFailed = errors.New("failed to record response")
	ErrInvalidState = errors.New("unsupported response state")
	ErrRosterDenied = errors.New("only the invite creator may view the roster")
)
