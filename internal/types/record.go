package types

// ChildRecord is one document from any of the nine profile sections
// (service, gallery item, product, testimonial, skill, project,
// experience, education, achievement). The sections share only their id
// and owning-account reference; everything else is category-specific, so
// the record is kept as the raw decoded document.
type ChildRecord map[string]any

// RecordID returns the document id, tolerating both Mongo-style "_id" and
// plain "id" keys.
func (r ChildRecord) RecordID() string {
	if id, ok := r["_id"].(string); ok && id != "" {
		return id
	}
	if id, ok := r["id"].(string); ok {
		return id
	}
	return ""
}

// Owner extracts the owning-account reference from the record's userId
// field, whichever shape it was stored in.
func (r ChildRecord) Owner() UserRef {
	switch v := r["userId"].(type) {
	case string:
		return NewUserRef(v)
	case map[string]any:
		id, _ := v["_id"].(string)
		email, _ := v["email"].(string)
		return NewEmbeddedUserRef(id, email)
	}
	return UserRef{}
}

// OwnedBy reports whether the record belongs to the given account id.
func (r ChildRecord) OwnedBy(userID string) bool {
	return r.Owner().Matches(userID)
}
