package docs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDOCXFromServer(t *testing.T) {
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>Οδηγός πρακτικής άσκησης</w:t></w:r></w:p></w:body>
</w:document>`
	payload := buildDOCX(t, doc)

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		require.Equal(t, "/odigos.docx", r.URL.Path)
		w.Write(payload)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, 5*time.Second)

	text := f.Fetch(context.Background(), "odigos.docx")
	assert.Contains(t, text, "Οδηγός πρακτικής άσκησης")

	// second fetch is served from the memo, not the server
	f.Fetch(context.Background(), "odigos.docx")
	assert.Equal(t, 1, requests)
}

func TestFetchMissingDocument(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, 5*time.Second)

	assert.Empty(t, f.Fetch(context.Background(), "leipei.pdf"))

	// the failure is memoized too
	assert.Empty(t, f.Fetch(context.Background(), "leipei.pdf"))
	assert.Equal(t, 1, requests)
}

func TestFetchUnsupportedFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text"))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, 5*time.Second)
	assert.Empty(t, f.Fetch(context.Background(), "simeioseis.txt"))
}

func TestFetchUnreachableServer(t *testing.T) {
	f := NewFetcher("http://127.0.0.1:1", time.Second)
	assert.Empty(t, f.Fetch(context.Background(), "kanonismos.pdf"))
}

func TestInvalidateForcesRedownload(t *testing.T) {
	payload := buildDOCX(t, `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p><w:r><w:t>κείμενο</w:t></w:r></w:p></w:body>
</w:document>`)

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write(payload)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, 5*time.Second)
	f.Fetch(context.Background(), "a.docx")
	f.Invalidate()
	f.Fetch(context.Background(), "a.docx")

	assert.Equal(t, 2, requests)
}
