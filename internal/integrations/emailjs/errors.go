package emailjs

import "errors"

var (
	// ErrSendFailed is returned when the provider rejects or fails the send.
	// The booking the notification belongs to remains valid.
	ErrSendFailed = errors.New("emailjs client: send failed")

	// ErrInternal is returned on client-side failures (request build, transport)
	ErrInternal = errors.New("emailjs client: internal error")
)
