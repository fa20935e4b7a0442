package types

import "time"

// Account is an authentication identity owned by the platform's auth
// subsystem. The console reads it, never mutates it.
type Account struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Profile is a client or student's public-facing card data. A freshly
// registered account may not have one yet; that is a valid state, not an
// error.
type Profile struct {
	ID          string            `json:"_id"`
	UserID      UserRef           `json:"userId,omitempty"`
	Name        string            `json:"name,omitempty"`
	FullName    string            `json:"fullName,omitempty"`
	Email       string            `json:"email,omitempty"`
	Profession  string            `json:"profession,omitempty"`
	About       string            `json:"about,omitempty"`
	Phone1      string            `json:"phone1,omitempty"`
	Phone2      string            `json:"phone2,omitempty"`
	Location    string            `json:"location,omitempty"`
	Website     string            `json:"website,omitempty"`
	SocialMedia map[string]string `json:"socialMedia,omitempty"`
	TemplateID  string            `json:"templateId,omitempty"`
	CreatedAt   time.Time         `json:"createdAt,omitempty"`
	UpdatedAt   time.Time         `json:"updatedAt,omitempty"`
}

// MailRecord is an immutable audit entry for a sent message.
type MailRecord struct {
	ID            string    `json:"_id"`
	SenderEmail   string    `json:"senderEmail"`
	SenderRole    string    `json:"senderRole"`
	RecipientType string    `json:"recipientType"`
	Recipients    []string  `json:"recipients"`
	ClientIDs     []UserRef `json:"clientIds"`
	Subject       string    `json:"subject"`
	Attachments   []string  `json:"attachments"`
	SentAt        time.Time `json:"sentAt"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Inquiry is a public contact-form submission.
type Inquiry struct {
	ID        string    `json:"_id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
