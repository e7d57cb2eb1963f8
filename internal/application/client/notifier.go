package client

import (
	"context"
	"fmt"
)

// EmailSender is the outbound notification collaborator.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

const (
	welcomeSubject  = "Welcome to PetroBahia!"
	greetingSubject = "Greetings from PetroBahia"
	greetingBody    = "Thank you for being a valued customer!"
)

type WelcomeNotifier struct {
	sender EmailSender
}

func NewWelcomeNotifier(sender EmailSender) *WelcomeNotifier {
	return &WelcomeNotifier{sender: sender}
}

func (n *WelcomeNotifier) SendWelcome(ctx context.Context, email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nThank you for registering!\n\nBest regards,\nPetroBahia Team", name)
	return n.sender.Send(ctx, email, welcomeSubject, body)
}

func (n *WelcomeNotifier) SendGreeting(ctx context.Context, email string) error {
	return n.sender.Send(ctx, email, greetingSubject, greetingBody)
}
