package platform

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
)

// Attachment is a binary file carried by a media payload or a mail draft.
type Attachment struct {
	Field    string
	Filename string
	Content  []byte
}

// Payload is the wire form of a create or update. Fields hold the already
// backend-named values; File, when present, switches the encoding to
// multipart. Both encodings must produce the same server-side effect.
type Payload struct {
	Fields map[string]string
	File   *Attachment
}

// NewPayload returns a payload over a copy of the given fields.
func NewPayload(fields map[string]string) Payload {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return Payload{Fields: copied}
}

// Set adds or replaces a field.
func (p *Payload) Set(key, value string) {
	if p.Fields == nil {
		p.Fields = make(map[string]string)
	}
	p.Fields[key] = value
}

// HasFile reports whether the payload carries a binary attachment.
func (p Payload) HasFile() bool {
	return p.File != nil
}

// jsonBody returns the plain structured form of the payload.
func (p Payload) jsonBody() map[string]string {
	return p.Fields
}

// multipartBody encodes the payload's fields and file into a multipart
// body, returning the body and its content type. Fields are written in
// sorted order so the encoding is deterministic.
func (p Payload) multipartBody() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(p.Fields))
	for k := range p.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, p.Fields[k]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", k, err)
		}
	}

	if p.File != nil {
		fw, err := w.CreateFormFile(p.File.Field, p.File.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("create form file: %w", err)
		}
		if _, err := fw.Write(p.File.Content); err != nil {
			return nil, "", fmt.Errorf("write form file: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
