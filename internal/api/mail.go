package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitecards/admin-console/internal/mailer"
	"github.com/elitecards/admin-console/internal/platform"
)

// MailHandler serves bulk mail composition and the audit listing.
type MailHandler struct {
	mail *mailer.Service
}

// NewMailHandler creates a mail handler.
func NewMailHandler(mail *mailer.Service) *MailHandler {
	return &MailHandler{mail: mail}
}

// RegisterRoutes registers the mail routes.
func (h *MailHandler) RegisterRoutes(router *gin.RouterGroup) {
	mail := router.Group("/mail")
	{
		mail.POST("/send", h.Send)
		mail.GET("/tracking", h.Tracking)
	}
}

// Send dispatches a composed message to the selected clients. The body is
// multipart: subject, message, repeated clientIds fields, and attachment
// files. Selection and draft validation happen before any platform call.
func (h *MailHandler) Send(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mail form"})
		return
	}

	sel := mailer.NewSelection()
	sel.SelectAll(form.Value["clientIds"])

	draft := platform.MailDraft{}
	if v := form.Value["subject"]; len(v) > 0 {
		draft.Subject = v[0]
	}
	if v := form.Value["message"]; len(v) > 0 {
		draft.Message = v[0]
	}
	for _, header := range form.File["attachments"] {
		content, name := readFile(header)
		if content == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable attachment"})
			return
		}
		draft.Attachments = append(draft.Attachments, platform.Attachment{Filename: name, Content: content})
	}

	if err := h.mail.Send(c.Request.Context(), sel, draft); err != nil {
		if errors.Is(err, mailer.ErrNoRecipients) || errors.Is(err, mailer.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "mail sent successfully", "recipients": sel.Count()})
}

// Tracking returns the mail audit listing.
func (h *MailHandler) Tracking(c *gin.Context) {
	records, err := h.mail.Tracking(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}
