package mutate

import "github.com/elitecards/admin-console/internal/platform"

// The console's edit forms use semantic field names that differ from the
// platform's schema (title vs projectName, desc vs description). Each form
// type owns that translation, so "collect form values" is a pure function
// of typed state. Empty fields are omitted; the owning account id is
// always included.

// ServiceForm edits one client service.
type ServiceForm struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price"`
}

func (f ServiceForm) Payload(userID string) platform.Payload {
	return buildPayload(userID, nil, map[string]string{
		"name":        f.Name,
		"description": f.Description,
		"price":       f.Price,
	})
}

// GalleryForm edits one gallery item; the image travels multipart when set.
type GalleryForm struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Image       []byte `json:"-"`
	ImageName   string `json:"-"`
}

func (f GalleryForm) Payload(userID string) platform.Payload {
	return buildPayload(userID, file(platform.Gallery.MediaField, f.ImageName, f.Image), map[string]string{
		"title":       f.Title,
		"description": f.Description,
	})
}

// ProductForm edits one product; the image travels multipart when set.
type ProductForm struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price"`
	Image       []byte `json:"-"`
	ImageName   string `json:"-"`
}

func (f ProductForm) Payload(userID string) platform.Payload {
	return buildPayload(userID, file(platform.Products.MediaField, f.ImageName, f.Image), map[string]string{
		"name":        f.Name,
		"description": f.Description,
		"price":       f.Price,
	})
}

// TestimonialForm edits one testimonial.
type TestimonialForm struct {
	ClientName string `json:"clientName" form:"clientName"`
	Message    string `json:"message" form:"message"`
	Rating     string `json:"rating" form:"rating"`
}

func (f TestimonialForm) Payload(userID string) platform.Payload {
	return buildPayload(userID, nil, map[string]string{
		"clientName": f.ClientName,
		"message":    f.Message,
		"rating":     f.Rating,
	})
}

// SkillForm edits one student skill.
type SkillForm struct {
	Name  string `json:"name" form:"name"`
	Level string `json:"level" form:"level"`
}

func (f SkillForm) Payload(userID string) platform.Payload {
	return buildPayload(userID, nil, map[string]string{
		"name":  f.Name,
		"level": f.Level,
	})
}

// ProjectForm edits one student project. Field names translate to the
// platform schema: title→projectName, desc→description, tech→technologies,
// link→projectUrl; the image field is projectImage.
type ProjectForm struct {
	Title     string `json:"title" form:"title"`
	Desc      string `json:"desc" form:"desc"`
	Tech      string `json:"tech" form:"tech"`
	Link      string `json:"link" form:"link"`
	Image     []byte `json:"-"`
	ImageName string `json:"-"`
}

func (f ProjectForm) Payload(userID string) platform.Payload {
	return buildPayload(userID, file(platform.Projects.MediaField, f.ImageName, f.Image), map[string]string{
		"projectName":  f.Title,
		"description":  f.Desc,
		"technologies": f.Tech,
		"projectUrl":   f.Link,
	})
}

// ExperienceForm edits one student experience entry.
type ExperienceForm struct {
	Company     string `json:"company" form:"company"`
	Position    string `json:"position" form:"position"`
	Duration    string `json:"duration" form:"duration"`
	Description string `json:"description" form:"description"`
}

func (f ExperienceForm) Payload(userID string) platform.Payload {
	return buildPayload(userID, nil, map[string]string{
		"company":     f.Company,
		"position":    f.Position,
		"duration":    f.Duration,
		"description": f.Description,
	})
}

// EducationForm edits one student education entry.
type EducationForm struct {
	Institution string `json:"institution" form:"institution"`
	Degree      string `json:"degree" form:"degree"`
	Year        string `json:"year" form:"year"`
	Grade       string `json:"grade" form:"grade"`
}

func (f EducationForm) Payload(userID string) platform.Payload {
	return buildPayload(userID, nil, map[string]string{
		"institution": f.Institution,
		"degree":      f.Degree,
		"year":        f.Year,
		"grade":       f.Grade,
	})
}

// AchievementForm edits one student achievement; the certificate travels
// multipart under certificateImage when set.
type AchievementForm struct {
	Title           string `json:"title" form:"title"`
	Date            string `json:"date" form:"date"`
	Desc            string `json:"desc" form:"desc"`
	Certificate     []byte `json:"-"`
	CertificateName string `json:"-"`
}

func (f AchievementForm) Payload(userID string) platform.Payload {
	return buildPayload(userID, file(platform.Achievements.MediaField, f.CertificateName, f.Certificate), map[string]string{
		"title":       f.Title,
		"date":        f.Date,
		"description": f.Desc,
	})
}

func buildPayload(userID string, att *platform.Attachment, fields map[string]string) platform.Payload {
	p := platform.Payload{Fields: make(map[string]string), File: att}
	for k, v := range fields {
		if v != "" {
			p.Fields[k] = v
		}
	}
	if userID != "" {
		p.Fields["userId"] = userID
	}
	return p
}

func file(field, name string, content []byte) *platform.Attachment {
	if len(content) == 0 {
		return nil
	}
	return &platform.Attachment{Field: field, Filename: name, Content: content}
}
