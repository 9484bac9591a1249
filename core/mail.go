package core

import "net/mail"

type (
	// EmailMessage is a plain-text email to be sent by an EmailService.
	EmailMessage struct {
		To      []mail.Address
		Subject string
		BodyStr string
	}

	// EmailService is any service that can send emails.
	EmailService interface {
		// SendMessages sends messages concurrently.
		SendMessages(messages ...*EmailMessage)
	}
)
