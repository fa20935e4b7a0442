package api

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/elitecards/admin-console/internal/mutate"
	"github.com/elitecards/admin-console/internal/platform"
)

// bindRecordForm reads a child-record edit form from the request and
// translates it into a gateway payload. JSON bodies carry the semantic
// field names; multipart bodies additionally carry the binary attachment
// under "image" (or "certificate" for achievements).
func bindRecordForm(c *gin.Context, cat platform.Category, userID string) (platform.Payload, error) {
	switch cat.Name {
	case platform.Services.Name:
		var f mutate.ServiceForm
		if err := bindForm(c, &f); err != nil {
			return platform.Payload{}, err
		}
		return f.Payload(userID), nil
	case platform.Gallery.Name:
		var f mutate.GalleryForm
		if err := bindForm(c, &f); err != nil {
			return platform.Payload{}, err
		}
		f.Image, f.ImageName = formFile(c, "image")
		return f.Payload(userID), nil
	case platform.Products.Name:
		var f mutate.ProductForm
		if err := bindForm(c, &f); err != nil {
			return platform.Payload{}, err
		}
		f.Image, f.ImageName = formFile(c, "image")
		return f.Payload(userID), nil
	case platform.Testimonials.Name:
		var f mutate.TestimonialForm
		if err := bindForm(c, &f); err != nil {
			return platform.Payload{}, err
		}
		return f.Payload(userID), nil
	case platform.Skills.Name:
		var f mutate.SkillForm
		if err := bindForm(c, &f); err != nil {
			return platform.Payload{}, err
		}
		return f.Payload(userID), nil
	case platform.Projects.Name:
		var f mutate.ProjectForm
		if err := bindForm(c, &f); err != nil {
			return platform.Payload{}, err
		}
		f.Image, f.ImageName = formFile(c, "image")
		return f.Payload(userID), nil
	case platform.Experience.Name:
		var f mutate.ExperienceForm
		if err := bindForm(c, &f); err != nil {
			return platform.Payload{}, err
		}
		return f.Payload(userID), nil
	case platform.Education.Name:
		var f mutate.EducationForm
		if err := bindForm(c, &f); err != nil {
			return platform.Payload{}, err
		}
		return f.Payload(userID), nil
	case platform.Achievements.Name:
		var f mutate.AchievementForm
		if err := bindForm(c, &f); err != nil {
			return platform.Payload{}, err
		}
		f.Certificate, f.CertificateName = formFile(c, "certificate")
		return f.Payload(userID), nil
	}
	return platform.Payload{}, fmt.Errorf("unknown category %q", cat.Name)
}

// bindForm binds either a JSON body or multipart form fields into the
// typed form struct.
func bindForm(c *gin.Context, form any) error {
	if c.ContentType() == "application/json" {
		return c.ShouldBindJSON(form)
	}
	return c.ShouldBind(form)
}

// formFile reads an uploaded file by field name, returning nil content
// when the request carries none.
func formFile(c *gin.Context, field string) ([]byte, string) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, ""
	}
	content, name := readFile(header)
	return content, name
}

func readFile(header *multipart.FileHeader) ([]byte, string) {
	f, err := header.Open()
	if err != nil {
		return nil, ""
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, ""
	}
	return content, header.Filename
}
