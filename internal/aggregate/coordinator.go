// Package aggregate assembles the full detail view for a resolved account
// by combining independent per-category fetches.
package aggregate

import (
	"context"
	"log"
	"sync"

	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/types"
)

// Gateway is the slice of the record gateway the coordinator needs.
type Gateway interface {
	ListFor(ctx context.Context, cat platform.Category, userID string) ([]types.ChildRecord, error)
}

// View is the merged per-category model for one detail screen. Categories
// that do not apply to the profile kind, returned nothing, or failed to
// load are empty slices.
type View struct {
	Services     []types.ChildRecord `json:"services"`
	Gallery      []types.ChildRecord `json:"gallery"`
	Products     []types.ChildRecord `json:"products"`
	Testimonials []types.ChildRecord `json:"testimonials"`
	Skills       []types.ChildRecord `json:"skills"`
	Projects     []types.ChildRecord `json:"projects"`
	Experience   []types.ChildRecord `json:"experience"`
	Education    []types.ChildRecord `json:"education"`
	Achievements []types.ChildRecord `json:"achievements"`
}

// NewView returns a view with every category initialized to empty.
func NewView() *View {
	return &View{
		Services:     []types.ChildRecord{},
		Gallery:      []types.ChildRecord{},
		Products:     []types.ChildRecord{},
		Testimonials: []types.ChildRecord{},
		Skills:       []types.ChildRecord{},
		Projects:     []types.ChildRecord{},
		Experience:   []types.ChildRecord{},
		Education:    []types.ChildRecord{},
		Achievements: []types.ChildRecord{},
	}
}

// Records returns the view's slice for a category name.
func (v *View) Records(name string) []types.ChildRecord {
	if s := v.slot(name); s != nil {
		return *s
	}
	return nil
}

func (v *View) set(name string, records []types.ChildRecord) {
	if s := v.slot(name); s != nil && records != nil {
		*s = records
	}
}

func (v *View) slot(name string) *[]types.ChildRecord {
	switch name {
	case platform.Services.Name:
		return &v.Services
	case platform.Gallery.Name:
		return &v.Gallery
	case platform.Products.Name:
		return &v.Products
	case platform.Testimonials.Name:
		return &v.Testimonials
	case platform.Skills.Name:
		return &v.Skills
	case platform.Projects.Name:
		return &v.Projects
	case platform.Experience.Name:
		return &v.Experience
	case platform.Education.Name:
		return &v.Education
	case platform.Achievements.Name:
		return &v.Achievements
	}
	return nil
}

// Coordinator fans out category fetches and merges the results.
type Coordinator struct {
	gw  Gateway
	log *log.Logger
}

// NewCoordinator creates a coordinator over the given gateway.
func NewCoordinator(gw Gateway, logger *log.Logger) *Coordinator {
	if logger == nil {
		logger = log.Default()
	}
	return &Coordinator{gw: gw, log: logger}
}

// Aggregate fetches every child-record category of the profile kind for
// one account, concurrently. Each fetch's outcome is independent: a
// category that fails to load degrades to an empty slice and is only
// logged, never surfaced, and never blocks the other categories.
// Completion order is not assumed anywhere in the merge.
func (c *Coordinator) Aggregate(ctx context.Context, kind platform.ProfileKind, userID string) *View {
	view := NewView()

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, cat := range platform.Categories(kind) {
		wg.Add(1)
		go func(cat platform.Category) {
			defer wg.Done()
			records, err := c.gw.ListFor(ctx, cat, userID)
			if err != nil {
				c.log.Printf("no %s loaded for user %s: %v", cat.Name, userID, err)
				return
			}
			mu.Lock()
			view.set(cat.Name, records)
			mu.Unlock()
		}(cat)
	}
	wg.Wait()

	return view
}
