package platform

import (
	"context"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListForUsesScopedEndpoint(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true,"data":[{"_id":"svc-1","userId":"user-1"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &stubSession{})
	records, err := c.ListFor(context.Background(), Services, "user-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "/services/public/user-1", gotPath)
}

func TestListForFiltersGlobalListing(t *testing.T) {
	// Categories without a per-user endpoint return everyone's records;
	// the gateway narrows them to the requested account.
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true,"data":[
			{"_id":"sk-1","userId":"user-1","skillName":"Go"},
			{"_id":"sk-2","userId":{"_id":"user-2","email":"b@x.y"},"skillName":"SQL"},
			{"_id":"sk-3","userId":"user-1","skillName":"Redis"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &stubSession{})
	records, err := c.ListFor(context.Background(), Skills, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "/student-skills/", gotPath)
	require.Len(t, records, 2)
	assert.Equal(t, "sk-1", records[0].RecordID())
	assert.Equal(t, "sk-3", records[1].RecordID())
}

func TestCreateSendsJSONWithoutFile(t *testing.T) {
	var gotPath, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"success":true,"data":{"_id":"svc-1","name":"Design"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &stubSession{})
	payload := NewPayload(nil)
	payload.Set("name", "Design")
	payload.Set("userId", "user-1")

	record, err := c.Create(context.Background(), Services, payload)
	require.NoError(t, err)
	assert.Equal(t, "/services/admin", gotPath)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "svc-1", record.RecordID())
}

func TestCreateSendsMultipartWithFile(t *testing.T) {
	var gotPath string
	var fields map[string][]string
	var fileField, fileName string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mediaType)

		reader := multipart.NewReader(r.Body, params["boundary"])
		form, err := reader.ReadForm(1 << 20)
		require.NoError(t, err)
		fields = form.Value
		for name, headers := range form.File {
			fileField = name
			fileName = headers[0].Filename
		}
		w.Write([]byte(`{"success":true,"data":{"_id":"img-1"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &stubSession{})
	payload := NewPayload(nil)
	payload.Set("name", "Storefront")
	payload.Set("userId", "user-1")
	payload.File = &Attachment{Field: "image", Filename: "front.jpg", Content: []byte("jpegbytes")}

	_, err := c.Create(context.Background(), Gallery, payload)
	require.NoError(t, err)
	assert.Equal(t, "/gallery/admin/upload", gotPath)
	assert.Equal(t, []string{"Storefront"}, fields["name"])
	assert.Equal(t, []string{"user-1"}, fields["userId"])
	assert.Equal(t, "image", fileField)
	assert.Equal(t, "front.jpg", fileName)
}

func TestUpdateAndDeleteHitAdminRecordRoute(t *testing.T) {
	var paths []string
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		methods = append(methods, r.Method)
		w.Write([]byte(`{"success":true,"data":{"_id":"sk-1"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, &stubSession{})
	payload := NewPayload(nil)
	payload.Set("skillName", "Go")

	_, err := c.Update(context.Background(), Skills, "sk-1", payload)
	require.NoError(t, err)
	require.NoError(t, c.Delete(context.Background(), Skills, "sk-1"))

	assert.Equal(t, []string{"/student-skills/sk-1/admin", "/student-skills/sk-1/admin"}, paths)
	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, methods)
}

func TestCategoryRouteShapes(t *testing.T) {
	assert.Equal(t, "/services/admin", Services.createPath())
	assert.Equal(t, "/products/admin/upload", Products.createPath())
	assert.Equal(t, "/student-projects/admin/create", Projects.createPath())
	assert.Equal(t, "/testimonials/public/user-1", Testimonials.scopedListPath("user-1"))

	cat, ok := CategoryByName("student-achievements")
	require.True(t, ok)
	assert.Equal(t, StudentKind, cat.Kind)
	assert.False(t, cat.ScopedList)

	_, ok = CategoryByName("unknown")
	assert.False(t, ok)

	assert.True(t, strings.HasPrefix(StudentKind.profileBase(), "/student"))
	assert.Equal(t, "/profile", ClientKind.profileBase())
}
