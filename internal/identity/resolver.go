// Package identity converts ambiguous route identifiers into canonical
// account ids. A detail route may carry a profile id, a bare user id, or
// the id inside an embedded user reference; everything downstream must
// settle on a single user id before fetching child records.
package identity

import (
	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/types"
)

// Resolve scans a bulk profile listing for the entry the route identifier
// names. An entry matches when its profile id equals routeID or its user
// reference (bare or embedded) does. Returns platform.ErrNotFound when
// nothing matches; callers render a distinct not-found state rather than
// an error banner.
//
// If the listing contains duplicate matches the first in listing order
// wins. That is a tie-break over anomalous data, not a correctness
// guarantee about the backing store.
func Resolve(routeID string, profiles []types.Profile) (types.Profile, error) {
	if routeID == "" {
		return types.Profile{}, platform.ErrNotFound
	}
	for _, p := range profiles {
		if p.ID == routeID || p.UserID.Matches(routeID) {
			return p, nil
		}
	}
	return types.Profile{}, platform.ErrNotFound
}

// CanonicalUserID derives the single account id used to scope every
// child-record query for one detail view. The recorded user reference
// takes precedence; profiles that were never given one fall back to the
// original route id.
func CanonicalUserID(p types.Profile, routeID string) string {
	if !p.UserID.IsZero() {
		return p.UserID.ID
	}
	return routeID
}
