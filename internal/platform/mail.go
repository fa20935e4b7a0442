package platform

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/elitecards/admin-console/internal/types"
)

// MailDraft is the composed message forwarded to the platform's mail
// dispatcher. Attachments are passed through verbatim.
type MailDraft struct {
	Subject     string
	Message     string
	Attachments []Attachment
}

// SendSingleMail dispatches a draft to exactly one client.
func (c *Client) SendSingleMail(ctx context.Context, clientID string, draft MailDraft) error {
	body, contentType, err := encodeMailForm(draft, func(w *multipart.Writer) error {
		return w.WriteField("clientId", clientID)
	})
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/mail/send-single", body, contentType, nil)
}

// SendGroupMail dispatches a draft to two or more clients.
func (c *Client) SendGroupMail(ctx context.Context, clientIDs []string, draft MailDraft) error {
	body, contentType, err := encodeMailForm(draft, func(w *multipart.Writer) error {
		for i, id := range clientIDs {
			if err := w.WriteField(fmt.Sprintf("clientIds[%d]", i), id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/mail/send-group", body, contentType, nil)
}

// ListMail returns the mail audit listing.
func (c *Client) ListMail(ctx context.Context) ([]types.MailRecord, error) {
	var records []types.MailRecord
	if err := c.getJSON(ctx, "/mail/", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// encodeMailForm builds the multipart mail body shared by both dispatch
// endpoints; recipients writes the endpoint-specific recipient fields.
func encodeMailForm(draft MailDraft, recipients func(*multipart.Writer) error) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := recipients(w); err != nil {
		return nil, "", fmt.Errorf("encode recipients: %w", err)
	}
	if err := w.WriteField("subject", draft.Subject); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("message", draft.Message); err != nil {
		return nil, "", err
	}
	for _, att := range draft.Attachments {
		fw, err := w.CreateFormFile("attachments", att.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("attach %s: %w", att.Filename, err)
		}
		if _, err := fw.Write(att.Content); err != nil {
			return nil, "", fmt.Errorf("attach %s: %w", att.Filename, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
