package composer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStoreFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/articles/9", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(StoredArticle{ID: "9", Title: "Hello", Status: StatusDraft})
	}))
	defer srv.Close()

	store := NewHTTPStore(srv.URL, "tok")
	got, err := store.Fetch(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, "9", got.ID)
	assert.Equal(t, "Hello", got.Title)
}

func TestHTTPStoreFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPStore(srv.URL, "").Fetch(context.Background(), "9")
	require.Error(t, err)
}

func TestHTTPStoreSubmitMultipart(t *testing.T) {
	var (
		gotFields map[string]string
		gotBlocks []WireBlock
		gotFiles  []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/articles", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		gotFields = map[string]string{}
		for name, vals := range r.MultipartForm.Value {
			gotFields[name] = vals[0]
		}
		for name := range r.MultipartForm.File {
			gotFiles = append(gotFiles, name)
		}
		require.NoError(t, json.Unmarshal([]byte(gotFields["blocks"]), &gotBlocks))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	sub := &Submission{
		Title:  "T",
		Author: "A",
		Date:   "2025-01-01",
		Font:   "Lora",
		Color:  "#000",
		Status: StatusPublished,
		Blocks: []WireBlock{
			{ID: "y", Type: "plain-text", Content: "Y"},
			{ID: "x", Type: "plain-text", Content: "X"},
			{ID: "z", Type: "plain-text", Content: "Z"},
		},
		Cover: &FileAttachment{Name: "c.png", Content: []byte{0xFF}},
		PDF:   &FileAttachment{Name: "issue.pdf", Content: []byte("%PDF")},
	}

	require.NoError(t, NewHTTPStore(srv.URL, "").Submit(context.Background(), sub))

	assert.Equal(t, "T", gotFields["title"])
	assert.Equal(t, "published", gotFields["status"])
	assert.Equal(t, "Lora", gotFields["font"])

	// The storage collaborator receives blocks in exact list order.
	require.Len(t, gotBlocks, 3)
	assert.Equal(t, []string{"y", "x", "z"}, []string{gotBlocks[0].ID, gotBlocks[1].ID, gotBlocks[2].ID})

	assert.ElementsMatch(t, []string{"coverImage", "pdf"}, gotFiles)
}

func TestHTTPStoreSubmitNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewHTTPStore(srv.URL, "").Submit(context.Background(), &Submission{})
	require.Error(t, err)
}
