package platform

import (
	"context"
	"net/http"

	"github.com/elitecards/admin-console/internal/types"
)

// ListProfiles returns the bulk profile listing for a profile kind.
func (c *Client) ListProfiles(ctx context.Context, kind ProfileKind) ([]types.Profile, error) {
	var profiles []types.Profile
	if err := c.getJSON(ctx, kind.profileBase()+"/", &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetProfile fetches a single profile by id.
func (c *Client) GetProfile(ctx context.Context, kind ProfileKind, id string) (types.Profile, error) {
	var profile types.Profile
	if err := c.getJSON(ctx, kind.profileBase()+"/"+id, &profile); err != nil {
		return types.Profile{}, err
	}
	return profile, nil
}

// UpdateProfile updates (or first-time completes) a profile. The same
// endpoint handles both; the server-echoed profile is returned.
func (c *Client) UpdateProfile(ctx context.Context, kind ProfileKind, id string, fields map[string]any) (types.Profile, error) {
	var profile types.Profile
	if err := c.sendJSON(ctx, http.MethodPut, kind.profileBase()+"/"+id, fields, &profile); err != nil {
		return types.Profile{}, err
	}
	return profile, nil
}

// DeleteProfile removes the profile/account record itself. This is the
// root operation of a cascading deletion and must run only after all
// child-record deletes have settled.
func (c *Client) DeleteProfile(ctx context.Context, kind ProfileKind, id string) error {
	return c.do(ctx, http.MethodDelete, kind.profileBase()+"/"+id, nil, "", nil)
}

// List returns a category's global (non-scoped) collection.
func (c *Client) List(ctx context.Context, cat Category) ([]types.ChildRecord, error) {
	var records []types.ChildRecord
	if err := c.getJSON(ctx, cat.listPath(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ListFor returns a category's records scoped to one account. Categories
// without a scoped endpoint are listed globally and filtered here by
// owning-account match, so callers always receive a scoped result.
func (c *Client) ListFor(ctx context.Context, cat Category, userID string) ([]types.ChildRecord, error) {
	if !cat.ScopedList {
		all, err := c.List(ctx, cat)
		if err != nil {
			return nil, err
		}
		owned := make([]types.ChildRecord, 0, len(all))
		for _, rec := range all {
			if rec.OwnedBy(userID) {
				owned = append(owned, rec)
			}
		}
		return owned, nil
	}
	var records []types.ChildRecord
	if err := c.getJSON(ctx, cat.scopedListPath(userID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Create adds a child record and returns the server-echoed canonical
// record, which carries server-assigned fields such as the id and media
// URL.
func (c *Client) Create(ctx context.Context, cat Category, payload Payload) (types.ChildRecord, error) {
	var record types.ChildRecord
	if err := c.sendPayload(ctx, http.MethodPost, cat.createPath(), payload, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Update replaces a child record's fields and returns the server echo.
func (c *Client) Update(ctx context.Context, cat Category, id string, payload Payload) (types.ChildRecord, error) {
	var record types.ChildRecord
	if err := c.sendPayload(ctx, http.MethodPut, cat.recordPath(id), payload, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes one child record.
func (c *Client) Delete(ctx context.Context, cat Category, id string) error {
	return c.do(ctx, http.MethodDelete, cat.recordPath(id), nil, "", nil)
}
