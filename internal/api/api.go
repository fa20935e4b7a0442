package api

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/elitecards/admin-console/internal/aggregate"
	"github.com/elitecards/admin-console/internal/cascade"
	"github.com/elitecards/admin-console/internal/mailer"
	"github.com/elitecards/admin-console/internal/middleware"
	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/session"
)

// SetupAPI wires every console handler onto the router. Routes under the
// authorized group require a stored, unexpired session.
func SetupAPI(router *gin.Engine, gw *platform.Client, sessions session.Store, logger *log.Logger) {
	coordinator := aggregate.NewCoordinator(gw, logger)
	sequencer := cascade.NewSequencer(gw, logger)
	mailService := mailer.NewService(gw)

	authHandler := NewAuthHandler(gw, sessions)
	clientHandler := NewAccountHandler(platform.ClientKind, gw, coordinator, sequencer, logger)
	studentHandler := NewAccountHandler(platform.StudentKind, gw, coordinator, sequencer, logger)
	mailHandler := NewMailHandler(mailService)
	inquiryHandler := NewInquiryHandler(gw)
	dashboardHandler := NewDashboardHandler(gw)

	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1)
	inquiryHandler.RegisterPublicRoutes(v1)

	authorized := v1.Group("")
	authorized.Use(middleware.RequireSession(sessions))
	{
		clientHandler.RegisterRoutes(authorized, "clients")
		studentHandler.RegisterRoutes(authorized, "students")
		mailHandler.RegisterRoutes(authorized)
		inquiryHandler.RegisterRoutes(authorized)
		dashboardHandler.RegisterRoutes(authorized)
	}
}
