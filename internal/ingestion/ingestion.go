// Package ingestion turns a job posting source (text file or URL) into the
// cleaned description text the match engine embeds.
package ingestion

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/internodyssey/intern-match/internal/fetch"
)

// Metadata describes an ingested posting description.
type Metadata struct {
	URL       string `json:"url,omitempty"`
	Source    string `json:"source"`    // "file" or "url"
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the cleaned text
}

// IngestFromFile reads a posting description from a text file and cleans it.
func IngestFromFile(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read posting file: %w", err)
	}

	cleaned := CleanText(string(data))
	if cleaned == "" {
		return "", nil, fmt.Errorf("posting file %s contains no text", path)
	}

	return cleaned, newMetadata(cleaned, "file", ""), nil
}

// IngestFromURL fetches a posting page, extracts the description text with
// job-board selectors, and cleans it. When useBrowser is set and the plain
// HTTP fetch yields too little text, the page is re-rendered in a headless
// browser before extraction.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool) (string, *Metadata, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch posting page: %w", err)
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", nil, fmt.Errorf("failed to extract posting text: %w", err)
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr)
		if browserErr != nil {
			// Keep the HTTP content when the browser path fails.
			log.Printf("browser rendering failed for %s: %v", urlStr, browserErr)
		} else if rendered, exErr := fetch.ExtractMainText(browserHTML, fetch.JobPostingSelectors()); exErr == nil {
			text = rendered
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil, fmt.Errorf("no posting text extracted from %s", urlStr)
	}

	return cleaned, newMetadata(cleaned, "url", urlStr), nil
}

// CleanText normalizes line endings and whitespace while preserving line
// structure.
func CleanText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
			line = ""
		} else {
			blankRun = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// newMetadata stamps the cleaned content with its source and hash.
func newMetadata(content, source, url string) *Metadata {
	hash := sha256.Sum256([]byte(content))
	return &Metadata{
		URL:       url,
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      hex.EncodeToString(hash[:]),
	}
}
