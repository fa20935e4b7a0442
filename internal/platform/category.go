package platform

import "fmt"

// ProfileKind selects between the client and student halves of the
// platform API, which expose parallel but differently shaped route trees.
type ProfileKind string

const (
	ClientKind  ProfileKind = "client"
	StudentKind ProfileKind = "student"
)

func (k ProfileKind) profileBase() string {
	if k == StudentKind {
		return "/student-profile"
	}
	return "/profile"
}

// Category describes one child-record collection and how its routes are
// shaped on the platform API.
type Category struct {
	// Name is the route segment, e.g. "services" or "student-skills".
	Name string
	// Kind is the profile half the category belongs to.
	Kind ProfileKind
	// ScopedList is true when the API offers a per-user listing endpoint.
	// Categories without one are listed globally and filtered client-side.
	ScopedList bool
	// UploadCreate is true for client media categories whose create route
	// is /{cat}/admin/upload rather than /{cat}/admin.
	UploadCreate bool
	// MediaField is the multipart field name for the category's binary
	// attachment, empty when the category carries none.
	MediaField string
}

var (
	Services     = Category{Name: "services", Kind: ClientKind, ScopedList: true}
	Gallery      = Category{Name: "gallery", Kind: ClientKind, ScopedList: true, UploadCreate: true, MediaField: "image"}
	Products     = Category{Name: "products", Kind: ClientKind, ScopedList: true, UploadCreate: true, MediaField: "image"}
	Testimonials = Category{Name: "testimonials", Kind: ClientKind, ScopedList: true}

	Skills       = Category{Name: "student-skills", Kind: StudentKind}
	Projects     = Category{Name: "student-projects", Kind: StudentKind, MediaField: "projectImage"}
	Experience   = Category{Name: "student-experiences", Kind: StudentKind}
	Education    = Category{Name: "student-educations", Kind: StudentKind}
	Achievements = Category{Name: "student-achievements", Kind: StudentKind, MediaField: "certificateImage"}
)

// Categories returns the child-record categories belonging to a profile kind.
func Categories(kind ProfileKind) []Category {
	if kind == StudentKind {
		return []Category{Skills, Projects, Experience, Education, Achievements}
	}
	return []Category{Services, Gallery, Products, Testimonials}
}

// CategoryByName looks a category up by its route segment across both kinds.
func CategoryByName(name string) (Category, bool) {
	for _, kind := range []ProfileKind{ClientKind, StudentKind} {
		for _, cat := range Categories(kind) {
			if cat.Name == name {
				return cat, true
			}
		}
	}
	return Category{}, false
}

func (c Category) listPath() string {
	return fmt.Sprintf("/%s/", c.Name)
}

// scopedListPath is only built for client categories; every student
// category lists globally and is filtered by owner in ListFor.
func (c Category) scopedListPath(userID string) string {
	return fmt.Sprintf("/%s/public/%s", c.Name, userID)
}

func (c Category) createPath() string {
	if c.Kind == StudentKind {
		return fmt.Sprintf("/%s/admin/create", c.Name)
	}
	if c.UploadCreate {
		return fmt.Sprintf("/%s/admin/upload", c.Name)
	}
	return fmt.Sprintf("/%s/admin", c.Name)
}

func (c Category) recordPath(id string) string {
	return fmt.Sprintf("/%s/%s/admin", c.Name, id)
}
