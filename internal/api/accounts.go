package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitecards/admin-console/internal/aggregate"
	"github.com/elitecards/admin-console/internal/cascade"
	"github.com/elitecards/admin-console/internal/identity"
	"github.com/elitecards/admin-console/internal/mutate"
	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/types"
)

// AccountGateway is the slice of the record gateway the account handler
// needs directly; aggregation, mutation, and cascade go through their own
// components.
type AccountGateway interface {
	mutate.Gateway
	ListProfiles(ctx context.Context, kind platform.ProfileKind) ([]types.Profile, error)
	GetProfile(ctx context.Context, kind platform.ProfileKind, id string) (types.Profile, error)
}

// AccountHandler serves the client and student console pages: listing,
// detail aggregation, profile and child-record mutations, and full
// account deletion. One handler instance serves one profile kind.
type AccountHandler struct {
	kind      platform.ProfileKind
	gw        AccountGateway
	agg       *aggregate.Coordinator
	sequencer *cascade.Sequencer
	log       *log.Logger
}

// NewAccountHandler creates a handler for one profile kind.
func NewAccountHandler(kind platform.ProfileKind, gw AccountGateway, agg *aggregate.Coordinator, seq *cascade.Sequencer, logger *log.Logger) *AccountHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &AccountHandler{kind: kind, gw: gw, agg: agg, sequencer: seq, log: logger}
}

// RegisterRoutes registers the account routes under the given base
// segment ("clients" or "students").
func (h *AccountHandler) RegisterRoutes(router *gin.RouterGroup, base string) {
	group := router.Group("/" + base)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Detail)
		group.PUT("/:id/profile", h.UpdateProfile)
		group.DELETE("/:id", h.DeleteAccount)
		group.POST("/:id/records/:category", h.CreateRecord)
		group.PUT("/:id/records/:category/:recordId", h.UpdateRecord)
		group.DELETE("/:id/records/:category/:recordId", h.DeleteRecord)
	}
}

// List returns the bulk profile listing.
func (h *AccountHandler) List(c *gin.Context) {
	profiles, err := h.gw.ListProfiles(c.Request.Context(), h.kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profiles})
}

// resolve turns the route identifier into the profile and the canonical
// account id that scopes every child-record operation for the view.
func (h *AccountHandler) resolve(ctx context.Context, routeID string) (types.Profile, string, error) {
	profiles, err := h.gw.ListProfiles(ctx, h.kind)
	if err != nil {
		return types.Profile{}, "", err
	}
	profile, err := identity.Resolve(routeID, profiles)
	if err != nil {
		return types.Profile{}, "", err
	}
	return profile, identity.CanonicalUserID(profile, routeID), nil
}

// Detail resolves the route identifier and assembles the aggregated view.
// The listing row that resolution found may be a thin projection, so the
// full profile is refetched by its document id; if that fetch fails the
// listing row is served as-is.
func (h *AccountHandler) Detail(c *gin.Context) {
	profile, userID, err := h.resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if full, err := h.gw.GetProfile(c.Request.Context(), h.kind, profile.ID); err == nil {
		profile = full
	} else {
		h.log.Printf("detail refetch of %s failed, serving listing row: %v", profile.ID, err)
	}

	view := h.agg.Aggregate(c.Request.Context(), h.kind, userID)
	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"userId":  userID,
		"records": view,
	})
}

// UpdateProfile updates or first-time-completes the profile and returns
// the server echo.
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	routeID := c.Param("id")
	orch := mutate.NewOrchestrator(h.gw, h.kind, nil)

	targetID := routeID
	if h.kind == platform.StudentKind {
		// Student profile updates are keyed by the account id, not the
		// route id.
		if _, userID, err := h.resolve(c.Request.Context(), routeID); err == nil {
			targetID = userID
		}
	}

	profile, err := orch.UpdateProfile(c.Request.Context(), targetID, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile, "notice": orch.Notice()})
}

// parseCategory validates that the route category exists and belongs to
// this handler's profile kind.
func (h *AccountHandler) parseCategory(c *gin.Context) (platform.Category, bool) {
	name := c.Param("category")
	cat, ok := platform.CategoryByName(name)
	if !ok || cat.Kind != h.kind {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown category %q", name)})
		return platform.Category{}, false
	}
	return cat, true
}

// orchestratorFor builds a mutation orchestrator seeded with the current
// server-side list for one category. A failed seed leaves the category
// empty; mutations still apply.
func (h *AccountHandler) orchestratorFor(ctx context.Context, cat platform.Category, userID string) *mutate.Orchestrator {
	orch := mutate.NewOrchestrator(h.gw, h.kind, nil)
	records, err := h.gw.ListFor(ctx, cat, userID)
	if err != nil {
		h.log.Printf("seeding %s for %s failed: %v", cat.Name, userID, err)
		return orch
	}
	orch.Seed(cat, records)
	return orch
}

// CreateRecord adds a child record to a category.
func (h *AccountHandler) CreateRecord(c *gin.Context) {
	cat, ok := h.parseCategory(c)
	if !ok {
		return
	}
	_, userID, err := h.resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	payload, err := bindRecordForm(c, cat, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	orch := h.orchestratorFor(c.Request.Context(), cat, userID)
	record, err := orch.CreateChild(c.Request.Context(), cat, payload, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if cat.MediaField != "" {
		// Media records come back from processing with server-assigned
		// URLs the create echo may not carry yet.
		if err := orch.Resync(c.Request.Context(), cat, userID); err != nil {
			h.log.Printf("resync of %s after create failed: %v", cat.Name, err)
		}
	}
	c.JSON(http.StatusCreated, gin.H{
		"data":    record,
		"records": orch.Records(cat),
		"notice":  orch.Notice(),
	})
}

// UpdateRecord replaces a child record's fields.
func (h *AccountHandler) UpdateRecord(c *gin.Context) {
	cat, ok := h.parseCategory(c)
	if !ok {
		return
	}
	_, userID, err := h.resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	payload, err := bindRecordForm(c, cat, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	orch := h.orchestratorFor(c.Request.Context(), cat, userID)
	record, err := orch.UpdateChild(c.Request.Context(), cat, c.Param("recordId"), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":    record,
		"records": orch.Records(cat),
		"notice":  orch.Notice(),
	})
}

// DeleteRecord removes one child record.
func (h *AccountHandler) DeleteRecord(c *gin.Context) {
	cat, ok := h.parseCategory(c)
	if !ok {
		return
	}
	_, userID, err := h.resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	orch := h.orchestratorFor(c.Request.Context(), cat, userID)
	if err := orch.DeleteChild(c.Request.Context(), cat, c.Param("recordId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"records": orch.Records(cat),
		"notice":  orch.Notice(),
	})
}

// DeleteAccount removes the account's child records across every category
// and then the account itself. Success or failure follows the root delete
// alone.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	profile, userID, err := h.resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.sequencer.DeleteAccount(c.Request.Context(), h.kind, userID, profile.ID); err != nil {
		respondError(c, err)
		return
	}

	name := profile.Name
	if name == "" {
		name = profile.FullName
	}
	if name == "" {
		name = userID
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s's account and all associated data deleted successfully", name),
	})
}
