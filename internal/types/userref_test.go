package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRefUnmarshalBareID(t *testing.T) {
	var ref UserRef
	require.NoError(t, json.Unmarshal([]byte(`"user-1"`), &ref))

	assert.Equal(t, "user-1", ref.ID)
	assert.False(t, ref.Embedded())
	assert.True(t, ref.Matches("user-1"))
	assert.False(t, ref.Matches("user-2"))
}

func TestUserRefUnmarshalEmbedded(t *testing.T) {
	var ref UserRef
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"user-1","email":"a@b.com"}`), &ref))

	assert.Equal(t, "user-1", ref.ID)
	assert.Equal(t, "a@b.com", ref.Email)
	assert.True(t, ref.Embedded())
	assert.True(t, ref.Matches("user-1"))
}

func TestUserRefUnmarshalNull(t *testing.T) {
	var ref UserRef
	require.NoError(t, json.Unmarshal([]byte(`null`), &ref))
	assert.True(t, ref.IsZero())
	assert.False(t, ref.Matches(""))
}

func TestUserRefUnmarshalRejectsOtherShapes(t *testing.T) {
	var ref UserRef
	assert.Error(t, json.Unmarshal([]byte(`42`), &ref))
}

func TestUserRefMarshalPreservesForm(t *testing.T) {
	bare, err := json.Marshal(NewUserRef("user-1"))
	require.NoError(t, err)
	assert.Equal(t, `"user-1"`, string(bare))

	embedded, err := json.Marshal(NewEmbeddedUserRef("user-1", "a@b.com"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"user-1","email":"a@b.com"}`, string(embedded))
}

func TestChildRecordOwner(t *testing.T) {
	var rec ChildRecord
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"rec-1","userId":"user-1","name":"Design"}`), &rec))
	assert.Equal(t, "rec-1", rec.RecordID())
	assert.True(t, rec.OwnedBy("user-1"))

	require.NoError(t, json.Unmarshal([]byte(`{"_id":"rec-2","userId":{"_id":"user-2","email":"x@y.z"}}`), &rec))
	assert.Equal(t, "user-2", rec.Owner().ID)
	assert.True(t, rec.OwnedBy("user-2"))
	assert.False(t, rec.OwnedBy("user-1"))
}

func TestChildRecordWithoutOwner(t *testing.T) {
	rec := ChildRecord{"_id": "rec-3"}
	assert.True(t, rec.Owner().IsZero())
	assert.False(t, rec.OwnedBy("user-1"))
}
