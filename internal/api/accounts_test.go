package api

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elitecards/admin-console/internal/aggregate"
	"github.com/elitecards/admin-console/internal/cascade"
	"github.com/elitecards/admin-console/internal/mocks"
	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/types"
)

func clientRouter(gw *mocks.MockGateway) *gin.Engine {
	logger := log.New(io.Discard, "", 0)
	h := NewAccountHandler(
		platform.ClientKind,
		gw,
		aggregate.NewCoordinator(gw, logger),
		cascade.NewSequencer(gw, logger),
		logger,
	)
	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"), "clients")
	return r
}

func clientListing() []types.Profile {
	return []types.Profile{
		{ID: "profile-1", UserID: types.NewUserRef("user-1"), Name: "Ada"},
	}
}

func TestAccountList(t *testing.T) {
	gw := new(mocks.MockGateway)
	gw.On("ListProfiles", mock.Anything, platform.ClientKind).Return(clientListing(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	clientRouter(gw).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ada")
}

func TestAccountDetailResolvesByUserID(t *testing.T) {
	gw := new(mocks.MockGateway)
	gw.On("ListProfiles", mock.Anything, platform.ClientKind).Return(clientListing(), nil)
	gw.On("GetProfile", mock.Anything, platform.ClientKind, "profile-1").
		Return(types.Profile{ID: "profile-1", UserID: types.NewUserRef("user-1"), Name: "Ada", Profession: "Engineer"}, nil)
	gw.On("ListFor", mock.Anything, platform.Services, "user-1").
		Return([]types.ChildRecord{{"_id": "svc-1", "name": "Design"}}, nil)
	gw.On("ListFor", mock.Anything, mock.Anything, "user-1").Return([]types.ChildRecord{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients/user-1", nil)
	clientRouter(gw).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"user-1"`)
	assert.Contains(t, w.Body.String(), "svc-1")
	// The detail view carries the refetched full profile, not the
	// listing row.
	assert.Contains(t, w.Body.String(), "Engineer")
}

func TestAccountDetailFallsBackToListingRow(t *testing.T) {
	gw := new(mocks.MockGateway)
	gw.On("ListProfiles", mock.Anything, platform.ClientKind).Return(clientListing(), nil)
	gw.On("GetProfile", mock.Anything, platform.ClientKind, "profile-1").
		Return(types.Profile{}, &platform.APIError{Status: 500, Message: "unavailable"})
	gw.On("ListFor", mock.Anything, mock.Anything, "user-1").Return([]types.ChildRecord{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients/user-1", nil)
	clientRouter(gw).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ada")
}

func TestAccountDetailUnknownIDIs404(t *testing.T) {
	gw := new(mocks.MockGateway)
	gw.On("ListProfiles", mock.Anything, platform.ClientKind).Return(clientListing(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/clients/ghost", nil)
	clientRouter(gw).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRecordStampsOwnerAndEchoes(t *testing.T) {
	gw := new(mocks.MockGateway)
	gw.On("ListProfiles", mock.Anything, platform.ClientKind).Return(clientListing(), nil)
	gw.On("ListFor", mock.Anything, platform.Services, "user-1").Return([]types.ChildRecord{}, nil)
	gw.On("Create", mock.Anything, platform.Services, mock.Anything).
		Return(types.ChildRecord{"_id": "svc-9", "name": "Design", "userId": "user-1"}, nil)

	body := bytes.NewBufferString(`{"name":"Design","price":"100"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/clients/user-1/records/services", body)
	req.Header.Set("Content-Type", "application/json")
	clientRouter(gw).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "svc-9")

	var sent platform.Payload
	for _, call := range gw.Calls {
		if call.Method == "Create" {
			sent = call.Arguments.Get(2).(platform.Payload)
		}
	}
	require.NotNil(t, sent.Fields)
	assert.Equal(t, "user-1", sent.Fields["userId"])
	assert.Equal(t, "Design", sent.Fields["name"])
	assert.Equal(t, "100", sent.Fields["price"])
}

func TestCreateMediaRecordResyncsCategory(t *testing.T) {
	gw := new(mocks.MockGateway)
	gw.On("ListProfiles", mock.Anything, platform.ClientKind).Return(clientListing(), nil)
	// First listing seeds the orchestrator; the second, after create,
	// picks up the server-processed media URL the create echo lacks.
	gw.On("ListFor", mock.Anything, platform.Gallery, "user-1").
		Return([]types.ChildRecord{}, nil).Once()
	gw.On("Create", mock.Anything, platform.Gallery, mock.Anything).
		Return(types.ChildRecord{"_id": "img-1", "title": "Storefront"}, nil)
	gw.On("ListFor", mock.Anything, platform.Gallery, "user-1").
		Return([]types.ChildRecord{{"_id": "img-1", "title": "Storefront", "imageUrl": "https://cdn/img-1.jpg"}}, nil).Once()

	body := bytes.NewBufferString(`{"title":"Storefront"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/clients/user-1/records/gallery", body)
	req.Header.Set("Content-Type", "application/json")
	clientRouter(gw).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "https://cdn/img-1.jpg")
	gw.AssertNumberOfCalls(t, "ListFor", 2)
}

func TestCreateRecordRejectsCategoryOfOtherKind(t *testing.T) {
	gw := new(mocks.MockGateway)

	body := bytes.NewBufferString(`{"name":"Go"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/clients/user-1/records/student-skills", body)
	req.Header.Set("Content-Type", "application/json")
	clientRouter(gw).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	gw.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteRecordReturnsRemainingList(t *testing.T) {
	gw := new(mocks.MockGateway)
	gw.On("ListProfiles", mock.Anything, platform.ClientKind).Return(clientListing(), nil)
	gw.On("ListFor", mock.Anything, platform.Services, "user-1").
		Return([]types.ChildRecord{{"_id": "svc-1"}, {"_id": "svc-2"}}, nil)
	gw.On("Delete", mock.Anything, platform.Services, "svc-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/clients/user-1/records/services/svc-1", nil)
	clientRouter(gw).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "svc-1")
	assert.Contains(t, w.Body.String(), "svc-2")
}

func TestDeleteAccountReportsByName(t *testing.T) {
	gw := new(mocks.MockGateway)
	gw.On("ListProfiles", mock.Anything, platform.ClientKind).Return(clientListing(), nil)
	gw.On("ListFor", mock.Anything, mock.Anything, "user-1").Return([]types.ChildRecord{}, nil)
	// The root delete is keyed by the profile document id, not the
	// account id the children are scoped by.
	gw.On("DeleteProfile", mock.Anything, platform.ClientKind, "profile-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/clients/profile-1", nil)
	clientRouter(gw).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ada's account and all associated data deleted successfully")
	gw.AssertExpectations(t)
}

func TestUpdateProfileReturnsEchoAndNotice(t *testing.T) {
	gw := new(mocks.MockGateway)
	gw.On("UpdateProfile", mock.Anything, platform.ClientKind, "profile-1", mock.Anything).
		Return(types.Profile{ID: "profile-1", Name: "Ada L."}, nil)

	body := bytes.NewBufferString(`{"name":"Ada L."}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/clients/profile-1/profile", body)
	req.Header.Set("Content-Type", "application/json")
	clientRouter(gw).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ada L.")
	assert.Contains(t, w.Body.String(), "Profile updated successfully")
}
