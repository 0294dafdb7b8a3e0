package bible

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBibleAPIBaseURL = "https://bible-api.com"

// bibleAPITranslations maps requested translations onto what bible-api.com
// actually serves. Anything not listed is passed through as-is.
var bibleAPITranslations = map[string]string{
	"esv":  "web",
	"nlt":  "web",
	"nasb": "web",
	"nkjv": "kjv",
	"niv":  "web",
	"csb":  "web",
	"amp":  "web",
}

// bibleAPIClient talks to bible-api.com, the keyless fallback source.
type bibleAPIClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (bc *bibleAPIClient) http() *http.Client {
	if bc.HTTPClient != nil {
		return bc.HTTPClient
	}
	return &http.Client{Timeout: 5 * time.Second}
}

func (bc *bibleAPIClient) base() string {
	if bc.BaseURL != "" {
		return bc.BaseURL
	}
	return defaultBibleAPIBaseURL
}

// Fetch looks up a passage. When the requested translation is not served it
// substitutes the closest available one and records the substitution in
// FallbackFrom so callers can tell the user.
func (bc *bibleAPIClient) Fetch(ctx context.Context, reference, translation string) (*Verse, error) {
	code := strings.ToLower(translation)
	apiCode := code
	if mapped, ok := bibleAPITranslations[code]; ok {
		apiCode = mapped
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet,
		bc.base()+"/"+url.PathEscape(reference)+"?translation="+url.QueryEscape(apiCode), nil)
	resp, err := bc.http().Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("failed to close response body", slog.Any("err", err))
		}
	}()
	var body struct {
		Reference string `json:"reference"`
		Text      string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	text := strings.TrimSpace(whitespaceRE.ReplaceAllString(body.Text, " "))
	if text == "" {
		return nil, fmt.Errorf("bible-api: passage not found")
	}
	ref := body.Reference
	if ref == "" {
		ref = reference
	}
	v := &Verse{Text: text, Reference: ref, Translation: strings.ToUpper(code)}
	if apiCode != code {
		v.FallbackFrom = strings.ToUpper(apiCode)
	}
	return v, nil
}
