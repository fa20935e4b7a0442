// Package cascade removes an account's entire public footprint before
// removing the account itself.
package cascade

import (
	"context"
	"log"
	"sync"

	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/types"
)

// Gateway is the slice of the record gateway the sequencer needs.
type Gateway interface {
	ListFor(ctx context.Context, cat platform.Category, userID string) ([]types.ChildRecord, error)
	Delete(ctx context.Context, cat platform.Category, id string) error
	DeleteProfile(ctx context.Context, kind platform.ProfileKind, id string) error
}

// Sequencer performs full-account deletions.
type Sequencer struct {
	gw  Gateway
	log *log.Logger
}

// NewSequencer creates a sequencer over the given gateway.
func NewSequencer(gw Gateway, logger *log.Logger) *Sequencer {
	if logger == nil {
		logger = log.Default()
	}
	return &Sequencer{gw: gw, log: logger}
}

// DeleteAccount deletes every child record across every category for the
// account, then deletes the profile/account record itself. Child records
// are keyed by userID; the root delete is keyed by profileID, the profile
// document's own id, falling back to userID for accounts that never
// completed a profile.
//
// Child-category fetches run concurrently and a failed fetch counts as
// zero records. Every discovered record is deleted independently; one
// failing never cancels or blocks the others, and those failures are
// swallowed here (logged only). The root delete does not begin until all
// child deletes have settled — deleting the profile first would orphan
// child records with no owning reference left to clean them up.
//
// The returned error is the root delete's outcome and nothing else. There
// is no rollback: if the root delete fails after children were removed,
// the children are permanently gone and only the root object remains.
func (s *Sequencer) DeleteAccount(ctx context.Context, kind platform.ProfileKind, userID, profileID string) error {
	categories := platform.Categories(kind)

	type found struct {
		cat platform.Category
		ids []string
	}
	results := make([]found, len(categories))

	var wg sync.WaitGroup
	for i, cat := range categories {
		wg.Add(1)
		go func(i int, cat platform.Category) {
			defer wg.Done()
			records, err := s.gw.ListFor(ctx, cat, userID)
			if err != nil {
				s.log.Printf("skipping %s during account deletion for %s: %v", cat.Name, userID, err)
				return
			}
			ids := make([]string, 0, len(records))
			for _, rec := range records {
				if id := rec.RecordID(); id != "" {
					ids = append(ids, id)
				}
			}
			results[i] = found{cat: cat, ids: ids}
		}(i, cat)
	}
	wg.Wait()

	var deletes sync.WaitGroup
	for _, r := range results {
		for _, id := range r.ids {
			deletes.Add(1)
			go func(cat platform.Category, id string) {
				defer deletes.Done()
				if err := s.gw.Delete(ctx, cat, id); err != nil {
					s.log.Printf("failed to delete %s %s for %s: %v", cat.Name, id, userID, err)
				}
			}(r.cat, id)
		}
	}
	// Hard sequencing requirement: all child deletes settle before the
	// root delete starts.
	deletes.Wait()

	if profileID == "" {
		profileID = userID
	}
	return s.gw.DeleteProfile(ctx, kind, profileID)
}
