// Package mutate applies single create/update/delete operations to a
// profile or its child records and keeps the in-memory detail view
// consistent afterward.
package mutate

import (
	"context"
	"fmt"
	"sync"

	"github.com/elitecards/admin-console/internal/aggregate"
	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/types"
)

// Gateway is the slice of the record gateway the orchestrator needs.
type Gateway interface {
	Create(ctx context.Context, cat platform.Category, payload platform.Payload) (types.ChildRecord, error)
	Update(ctx context.Context, cat platform.Category, id string, payload platform.Payload) (types.ChildRecord, error)
	Delete(ctx context.Context, cat platform.Category, id string) error
	UpdateProfile(ctx context.Context, kind platform.ProfileKind, id string, fields map[string]any) (types.Profile, error)
	ListFor(ctx context.Context, cat platform.Category, userID string) ([]types.ChildRecord, error)
}

// Notice is the transient display-only outcome of the last mutation. It
// carries no retry semantics and never blocks further interaction.
type Notice struct {
	Success string `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Orchestrator owns one detail view's mutable state: the profile, the
// per-category record lists, and the current notice. State is patched
// from server echoes, never reconstructed from request payloads.
type Orchestrator struct {
	gw   Gateway
	kind platform.ProfileKind

	mu      sync.Mutex
	profile *types.Profile
	lists   map[string][]types.ChildRecord
	notice  Notice
}

// NewOrchestrator creates an orchestrator seeded from an aggregated view.
// A nil view starts every category empty.
func NewOrchestrator(gw Gateway, kind platform.ProfileKind, view *aggregate.View) *Orchestrator {
	o := &Orchestrator{
		gw:    gw,
		kind:  kind,
		lists: make(map[string][]types.ChildRecord),
	}
	for _, cat := range platform.Categories(kind) {
		if view != nil {
			o.lists[cat.Name] = append([]types.ChildRecord(nil), view.Records(cat.Name)...)
		} else {
			o.lists[cat.Name] = []types.ChildRecord{}
		}
	}
	return o
}

// Seed replaces one category's list without touching notices, for callers
// that load state lazily.
func (o *Orchestrator) Seed(cat platform.Category, records []types.ChildRecord) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lists[cat.Name] = append([]types.ChildRecord(nil), records...)
}

// SetProfile seeds the resolved profile.
func (o *Orchestrator) SetProfile(p types.Profile) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.profile = &p
}

// Profile returns the current profile, or false when none is loaded yet.
func (o *Orchestrator) Profile() (types.Profile, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.profile == nil {
		return types.Profile{}, false
	}
	return *o.profile, true
}

// Records returns a copy of the current list for a category.
func (o *Orchestrator) Records(cat platform.Category) []types.ChildRecord {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]types.ChildRecord(nil), o.lists[cat.Name]...)
}

// Notice returns the transient outcome of the last mutation.
func (o *Orchestrator) Notice() Notice {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.notice
}

// CreateChild adds a record. The payload must already carry the owning
// account id; userID is stamped in for callers that have not. On success
// the server-echoed record is appended so server-assigned fields (id,
// media URL) are picked up.
func (o *Orchestrator) CreateChild(ctx context.Context, cat platform.Category, payload platform.Payload, userID string) (types.ChildRecord, error) {
	if _, ok := payload.Fields["userId"]; !ok {
		payload.Set("userId", userID)
	}
	record, err := o.gw.Create(ctx, cat, payload)
	if err != nil {
		o.fail(err)
		return nil, err
	}
	o.mu.Lock()
	o.lists[cat.Name] = append(o.lists[cat.Name], record)
	o.mu.Unlock()
	o.succeed(fmt.Sprintf("%s created successfully", cat.Name))
	return record, nil
}

// UpdateChild replaces the matching element with the server echo. On
// failure prior state is left untouched and an error notice is set.
func (o *Orchestrator) UpdateChild(ctx context.Context, cat platform.Category, id string, payload platform.Payload) (types.ChildRecord, error) {
	record, err := o.gw.Update(ctx, cat, id, payload)
	if err != nil {
		o.fail(err)
		return nil, err
	}
	o.mu.Lock()
	list := o.lists[cat.Name]
	for i := range list {
		if list[i].RecordID() == id {
			list[i] = record
			break
		}
	}
	o.mu.Unlock()
	o.succeed(fmt.Sprintf("%s updated successfully", cat.Name))
	return record, nil
}

// UpdateProfile replaces the whole in-memory profile with the server echo.
// When no profile existed yet this is a first-time completion; the
// endpoint handles both.
func (o *Orchestrator) UpdateProfile(ctx context.Context, id string, fields map[string]any) (types.Profile, error) {
	profile, err := o.gw.UpdateProfile(ctx, o.kind, id, fields)
	if err != nil {
		o.fail(err)
		return types.Profile{}, err
	}
	o.mu.Lock()
	o.profile = &profile
	o.mu.Unlock()
	o.succeed("Profile updated successfully")
	return profile, nil
}

// DeleteChild removes the matching element on success; on failure state is
// untouched and an error notice is set.
func (o *Orchestrator) DeleteChild(ctx context.Context, cat platform.Category, id string) error {
	if err := o.gw.Delete(ctx, cat, id); err != nil {
		o.fail(err)
		return err
	}
	o.mu.Lock()
	list := o.lists[cat.Name]
	kept := list[:0]
	for _, rec := range list {
		if rec.RecordID() != id {
			kept = append(kept, rec)
		}
	}
	o.lists[cat.Name] = kept
	o.mu.Unlock()
	o.succeed(fmt.Sprintf("%s deleted successfully", cat.Name))
	return nil
}

// Resync replaces one category's list from the server, for cases where
// local patching is insufficient.
func (o *Orchestrator) Resync(ctx context.Context, cat platform.Category, userID string) error {
	records, err := o.gw.ListFor(ctx, cat, userID)
	if err != nil {
		o.fail(err)
		return err
	}
	o.mu.Lock()
	o.lists[cat.Name] = records
	o.mu.Unlock()
	return nil
}

// succeed sets a success notice and clears any previous error.
func (o *Orchestrator) succeed(msg string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.notice = Notice{Success: msg}
}

// fail sets an error notice; any prior success text stays as it was.
func (o *Orchestrator) fail(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.notice.Error = platform.ToUserMessage(err)
}
