package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"

	"github.com/Zachkp/showcase/internal/mailer"
)

const maxMessageLength = 5000

var (
	ErrInvalidContact = errors.New("invalid contact request")
	ErrRateLimited    = errors.New("too many messages, try again later")
)

type ContactRequest struct {
	Name    string `form:"fullName"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// Validate trims the fields in place and checks them.
func (r *ContactRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)

	switch {
	case r.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidContact)
	case r.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidContact)
	case r.Message == "":
		return fmt.Errorf("%w: message is required", ErrInvalidContact)
	case utf8.RuneCountInString(r.Message) > maxMessageLength:
		return fmt.Errorf("%w: message is longer than %d characters", ErrInvalidContact, maxMessageLength)
	}
	addr, err := mail.ParseAddress(r.Email)
	if err != nil || addr.Address != r.Email {
		return fmt.Errorf("%w: %q is not an email address", ErrInvalidContact, r.Email)
	}
	return nil
}

// ContactService validates contact submissions, rate limits them per client
// and hands them to a mailer.
type ContactService struct {
	sender    mailer.Sender
	every     time.Duration
	burst     int
	idleAfter time.Duration
	now       func() time.Time

	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	lastSweep time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewContactService allows burst messages per client, refilling one every
// every. A client idle long enough to refill its whole burst is forgotten.
func NewContactService(sender mailer.Sender, every time.Duration, burst int) *ContactService {
	return &ContactService{
		sender:    sender,
		every:     every,
		burst:     burst,
		idleAfter: every * time.Duration(burst),
		now:       time.Now,
		limiters:  make(map[string]*clientLimiter),
	}
}

func (s *ContactService) allow(client string) bool {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if now.Sub(s.lastSweep) >= s.idleAfter {
		for key, cl := range s.limiters {
			if now.Sub(cl.lastSeen) >= s.idleAfter {
				delete(s.limiters, key)
			}
		}
		s.lastSweep = now
	}

	cl, ok := s.limiters[client]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Every(s.every), s.burst)}
		s.limiters[client] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// Submit sends req on behalf of client, an opaque key such as a hashed IP.
func (s *ContactService) Submit(ctx context.Context, client string, req ContactRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !s.allow(client) {
		return ErrRateLimited
	}

	msg := mailer.Message{
		Subject: "Portfolio Contact: " + req.Name,
		ReplyTo: req.Email,
		Body: fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form`, req.Name, req.Email, req.Message),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("deliver contact message: %w", err)
	}
	return nil
}
