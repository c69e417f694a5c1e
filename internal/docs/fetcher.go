// Package docs retrieves the official reference documents (PDF and DOCX)
// from the department's document store and extracts their plain text.
package docs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"

	"github.com/placement-bot/backend/pkg/logger"
)

type Fetcher struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	cache map[string]string
}

func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &Fetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: make(map[string]string),
	}
}

// Fetch downloads the named document once per process and returns its
// extracted text. Every failure (network, HTTP status, unsupported format,
// parse error) yields an empty string and a log entry; callers treat "" as
// "document unavailable" and carry on.
func (f *Fetcher) Fetch(ctx context.Context, name string) string {
	f.mu.Lock()
	if text, ok := f.cache[name]; ok {
		f.mu.Unlock()
		return text
	}
	f.mu.Unlock()

	text := f.download(ctx, name)

	// failures are cached too: one attempt per process, not one per query
	f.mu.Lock()
	f.cache[name] = text
	f.mu.Unlock()

	return text
}

// Invalidate clears the memoized texts so the next Fetch re-downloads.
func (f *Fetcher) Invalidate() {
	f.mu.Lock()
	f.cache = make(map[string]string)
	f.mu.Unlock()
}

func (f *Fetcher) download(ctx context.Context, name string) string {
	docURL := f.baseURL + "/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, docURL, nil)
	if err != nil {
		logger.Warn("Invalid document URL", zap.String("name", name), zap.Error(err))
		return ""
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Warn("Document download failed", zap.String("name", name), zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("Document download failed",
			zap.String("name", name),
			zap.Int("status", resp.StatusCode),
		)
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		logger.Warn("Document read failed", zap.String("name", name), zap.Error(err))
		return ""
	}

	var text string
	switch strings.ToLower(path.Ext(name)) {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	default:
		err = fmt.Errorf("unsupported document format %q", path.Ext(name))
	}
	if err != nil {
		logger.Warn("Document text extraction failed", zap.String("name", name), zap.Error(err))
		return ""
	}

	logger.Info("Document fetched",
		zap.String("name", name),
		zap.Int("chars", len(text)),
	)
	return text
}

func extractPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		page, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		b.WriteString(page)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}
