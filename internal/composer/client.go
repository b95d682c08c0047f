package composer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// HTTPStore talks to the article storage collaborator over REST: a JSON GET
// for hydration and a single multipart POST per submission.
type HTTPStore struct {
	base   string
	token  string
	client *http.Client
}

// NewHTTPStore creates a store rooted at base (e.g. "http://localhost:5000").
// token, when non-empty, is sent as a bearer credential.
func NewHTTPStore(base, token string) *HTTPStore {
	return &HTTPStore{
		base:   strings.TrimRight(base, "/"),
		token:  token,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch implements Store.
func (h *HTTPStore) Fetch(ctx context.Context, id string) (*StoredArticle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.base+"/api/articles/"+id, nil)
	if err != nil {
		return nil, err
	}
	h.authorize(req)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var stored StoredArticle
	if err := json.NewDecoder(resp.Body).Decode(&stored); err != nil {
		return nil, fmt.Errorf("decode article: %w", err)
	}
	return &stored, nil
}

// Submit implements Store. Success is any 2xx status; everything else is a
// save failure.
func (h *HTTPStore) Submit(ctx context.Context, sub *Submission) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fields := map[string]string{
		"title":  sub.Title,
		"author": sub.Author,
		"date":   sub.Date,
		"status": string(sub.Status),
		"font":   sub.Font,
		"color":  sub.Color,
	}
	if sub.ID != "" {
		fields["id"] = sub.ID
	}

	blocks, err := json.Marshal(sub.Blocks)
	if err != nil {
		return fmt.Errorf("encode blocks: %w", err)
	}
	fields["blocks"] = string(blocks)

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return err
		}
	}

	if err := writeFilePart(mw, "coverImage", sub.Cover); err != nil {
		return err
	}
	if err := writeFilePart(mw, "pdf", sub.PDF); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.base+"/api/articles", &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	h.authorize(req)

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (h *HTTPStore) authorize(req *http.Request) {
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
}

func writeFilePart(mw *multipart.Writer, field string, att *FileAttachment) error {
	if att == nil {
		return nil
	}
	part, err := mw.CreateFormFile(field, att.Name)
	if err != nil {
		return err
	}
	_, err = part.Write(att.Content)
	return err
}
