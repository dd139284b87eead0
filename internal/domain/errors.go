package domain

import "errors"

// Domain failures, mapped to the HTTP error envelope at the transport edge.
// Messages match what the client already displays.
var (
	ErrDuplicateEmail     = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserNotFound       = errors.New("User not found")
	ErrPostNotFound       = errors.New("Post not found")
	ErrEventNotFound      = errors.New("Event not found")
	ErrGalleryNotFound    = errors.New("Gallery not found")
	ErrContactNotFound    = errors.New("Contact message not found")
	ErrRegistrationClosed = errors.New("Event does not require registration")
	ErrAlreadyRegistered  = errors.New("Already registered for this event")
	ErrEventFull          = errors.New("Event is full")
	ErrCannotDeleteAdmin  = errors.New("Cannot delete admin user")
	ErrNotOwner           = errors.New("Not authorized to modify this resource")
)
