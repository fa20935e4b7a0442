package platform

import (
	"context"
	"net/http"

	"github.com/elitecards/admin-console/internal/types"
)

// InquirySubmission is the public contact-form payload.
type InquirySubmission struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

// SubmitInquiry creates an inquiry from an unauthenticated submitter.
func (c *Client) SubmitInquiry(ctx context.Context, sub InquirySubmission) (types.Inquiry, error) {
	var inquiry types.Inquiry
	if err := c.sendJSON(ctx, http.MethodPost, "/inquiries/", sub, &inquiry); err != nil {
		return types.Inquiry{}, err
	}
	return inquiry, nil
}

// ListInquiries returns all inquiries for the admin listing.
func (c *Client) ListInquiries(ctx context.Context) ([]types.Inquiry, error) {
	var inquiries []types.Inquiry
	if err := c.getJSON(ctx, "/inquiries/", &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

// GetInquiry fetches one inquiry by id.
func (c *Client) GetInquiry(ctx context.Context, id string) (types.Inquiry, error) {
	var inquiry types.Inquiry
	if err := c.getJSON(ctx, "/inquiries/"+id, &inquiry); err != nil {
		return types.Inquiry{}, err
	}
	return inquiry, nil
}

// DeleteInquiry removes an inquiry.
func (c *Client) DeleteInquiry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/inquiries/"+id, nil, "", nil)
}
