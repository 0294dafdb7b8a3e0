package bible

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/forgedbygrace/forge-bible-bot/textutil"
)

const defaultESVBaseURL = "https://api.esv.org"

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	htmlTagRE    = regexp.MustCompile(`<[^>]*>`)
)

// esvClient talks to the ESV passage API. Requests need a free API key.
type esvClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func (ec *esvClient) http() *http.Client {
	if ec.HTTPClient != nil {
		return ec.HTTPClient
	}
	return &http.Client{Timeout: 5 * time.Second}
}

func (ec *esvClient) base() string {
	if ec.BaseURL != "" {
		return ec.BaseURL
	}
	return defaultESVBaseURL
}

// PassageText fetches a passage as plain text with inline verse numbers.
func (ec *esvClient) PassageText(ctx context.Context, reference string) (*Verse, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, ec.base()+"/v3/passage/text/", nil)
	q := req.URL.Query()
	q.Set("q", reference)
	q.Set("include-headings", "false")
	q.Set("include-footnotes", "false")
	q.Set("include-verse-numbers", "true")
	q.Set("include-short-copyright", "false")
	q.Set("include-passage-references", "true")
	q.Set("indent-paragraphs", "0")
	q.Set("indent-poetry", "false")
	q.Set("wrapping-column", "0")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "Token "+ec.APIKey)
	resp, err := ec.http().Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("failed to close response body", slog.Any("err", err))
		}
	}()
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("esv api: invalid api key")
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("esv api: rate limited")
	}
	var body struct {
		Canonical string   `json:"canonical"`
		Passages  []string `json:"passages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Passages) == 0 {
		return nil, fmt.Errorf("esv api: passage not found")
	}
	text := strings.TrimSpace(whitespaceRE.ReplaceAllString(body.Passages[0], " "))
	if text == "" {
		return nil, fmt.Errorf("esv api: empty passage")
	}
	ref := body.Canonical
	if ref == "" {
		ref = reference
	}
	return &Verse{Text: text, Reference: ref, Translation: "ESV"}, nil
}

// Search queries the ESV keyword search endpoint.
func (ec *esvClient) Search(ctx context.Context, query string, limit int) ([]SearchResult, int, error) {
	if limit <= 0 {
		limit = 5
	}
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, ec.base()+"/v3/passage/search/", nil)
	q := url.Values{}
	q.Set("q", query)
	q.Set("page-size", fmt.Sprintf("%d", limit))
	q.Set("page", "1")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "Token "+ec.APIKey)
	resp, err := ec.http().Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("failed to close response body", slog.Any("err", err))
		}
	}()
	var body struct {
		Results []struct {
			Reference string `json:"reference"`
			Content   string `json:"content"`
		} `json:"results"`
		TotalResults int `json:"total_results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, 0, err
	}
	out := make([]SearchResult, 0, len(body.Results))
	for _, r := range body.Results {
		text := htmlTagRE.ReplaceAllString(r.Content, "")
		text = strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
		text = textutil.Clip(text, 200)
		out = append(out, SearchResult{Reference: r.Reference, Text: text})
	}
	total := body.TotalResults
	if total == 0 {
		total = len(out)
	}
	return out, total, nil
}
