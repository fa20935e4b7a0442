package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UserRef is the owning-account reference carried by profiles and child
// records. The remote API is inconsistent about its shape: some documents
// store a bare id string, others an embedded object with the id and email
// denormalized. UserRef accepts both and collapses them into one value so
// callers never have to repeat the bare-vs-embedded dance.
type UserRef struct {
	ID    string
	Email string

	embedded bool
}

// NewUserRef returns a bare-id reference.
func NewUserRef(id string) UserRef {
	return UserRef{ID: id}
}

// NewEmbeddedUserRef returns an embedded-object reference.
func NewEmbeddedUserRef(id, email string) UserRef {
	return UserRef{ID: id, Email: email, embedded: true}
}

// Matches reports whether the reference identifies the given account id.
func (r UserRef) Matches(id string) bool {
	return id != "" && r.ID == id
}

// IsZero reports whether no account id was recorded.
func (r UserRef) IsZero() bool {
	return r.ID == ""
}

// Embedded reports whether the reference carried the object form.
func (r UserRef) Embedded() bool {
	return r.embedded
}

func (r UserRef) String() string {
	return r.ID
}

type embeddedUserRef struct {
	ID    string `json:"_id"`
	Email string `json:"email,omitempty"`
}

// UnmarshalJSON accepts either "64ab..." or {"_id": "64ab...", "email": "..."}.
func (r *UserRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = UserRef{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = UserRef{ID: id}
		return nil
	}
	if data[0] == '{' {
		var obj embeddedUserRef
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*r = UserRef{ID: obj.ID, Email: obj.Email, embedded: true}
		return nil
	}
	return fmt.Errorf("userId is neither a string nor an object: %s", data)
}

// MarshalJSON preserves the form the reference was read in.
func (r UserRef) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	if r.embedded {
		return json.Marshal(embeddedUserRef{ID: r.ID, Email: r.Email})
	}
	return json.Marshal(r.ID)
}
