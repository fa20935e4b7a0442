// Package mailer implements bulk mail composition: recipient selection,
// client-side validation, and routing to the platform's single or group
// dispatch endpoint.
package mailer

import (
	"context"
	"errors"
	"strings"

	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/types"
)

var (
	// ErrNoRecipients rejects a send with an empty selection before any
	// gateway call is made.
	ErrNoRecipients = errors.New("select at least one client to send mail")
	// ErrMissingFields rejects a send with an empty subject or message.
	ErrMissingFields = errors.New("subject and message are required")
)

// Selection is the set of client ids chosen as recipients. Insertion
// order is preserved so the dispatched recipient list is deterministic.
type Selection struct {
	ids []string
}

// NewSelection returns an empty selection.
func NewSelection(ids ...string) *Selection {
	s := &Selection{}
	for _, id := range ids {
		s.Toggle(id)
	}
	return s
}

// Toggle adds the id if absent, removes it if present.
func (s *Selection) Toggle(id string) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
	s.ids = append(s.ids, id)
}

// SelectAll replaces the selection with the given ids, dropping
// duplicates so a repeated id cannot produce a double send.
func (s *Selection) SelectAll(ids []string) {
	s.ids = nil
	for _, id := range ids {
		if !s.Contains(id) {
			s.ids = append(s.ids, id)
		}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = nil
}

// Contains reports whether the id is selected.
func (s *Selection) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Count returns the number of selected clients.
func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs returns the selected ids in insertion order.
func (s *Selection) IDs() []string {
	return append([]string(nil), s.ids...)
}

// Gateway is the slice of the record gateway the mail service needs.
type Gateway interface {
	SendSingleMail(ctx context.Context, clientID string, draft platform.MailDraft) error
	SendGroupMail(ctx context.Context, clientIDs []string, draft platform.MailDraft) error
	ListMail(ctx context.Context) ([]types.MailRecord, error)
}

// Service composes and dispatches mail through the platform.
type Service struct {
	gw Gateway
}

// NewService creates a mail service over the given gateway.
func NewService(gw Gateway) *Service {
	return &Service{gw: gw}
}

// Send validates the draft and selection, then routes: exactly one
// recipient goes to the single-send endpoint, two or more to group-send.
// Validation failures happen before any gateway call.
func (s *Service) Send(ctx context.Context, sel *Selection, draft platform.MailDraft) error {
	if sel == nil || sel.Count() == 0 {
		return ErrNoRecipients
	}
	if strings.TrimSpace(draft.Subject) == "" || strings.TrimSpace(draft.Message) == "" {
		return ErrMissingFields
	}
	ids := sel.IDs()
	if len(ids) == 1 {
		return s.gw.SendSingleMail(ctx, ids[0], draft)
	}
	return s.gw.SendGroupMail(ctx, ids, draft)
}

// Tracking returns the mail audit listing.
func (s *Service) Tracking(ctx context.Context) ([]types.MailRecord, error) {
	return s.gw.ListMail(ctx)
}
