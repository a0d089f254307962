// Package ratings is a client for the external movie ratings/metadata API.
package ratings

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/filmstash/filmstash/util/common"

	json "github.com/goccy/go-json"
)

// DefaultTimeout bounds the upstream call so a slow API never blocks a
// request indefinitely.
const DefaultTimeout = 10 * time.Second

// MovieInfo is the subset of the upstream JSON document the library needs.
// AudienceScore is a pointer so an absent score can be told apart from a
// genuine zero.
type MovieInfo struct {
	Title    string   `json:"title"`
	Synopsis string   `json:"synopsis"`
	Genres   []string `json:"genres"`
	Ratings  struct {
		AudienceScore *int `json:"audience_score"`
	} `json:"ratings"`
	Posters struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"posters"`
}

// missingField reports the first required field absent from the document.
// The API answers with partial records for obscure titles, and a partial
// record must never replace existing metadata.
func (m *MovieInfo) missingField() string {
	switch {
	case m.Title == "":
		return "title"
	case m.Synopsis == "":
		return "synopsis"
	case len(m.Genres) == 0:
		return "genres"
	case m.Ratings.AudienceScore == nil:
		return "ratings.audience_score"
	case m.Posters.Thumbnail == "":
		return "posters.thumbnail"
	}
	return ""
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Lookup fetches metadata for the given title. The upstream may answer with
// a gzip-compressed body, announced via the Content-Encoding header; it is
// decompressed transparently before decoding.
func (c *Client) Lookup(ctx context.Context, title string) (*MovieInfo, error) {
	reqURL := fmt.Sprintf("%s/%s.json?apikey=%s", c.baseURL, url.PathEscape(title), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Encoding", "gzip, identity")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ratings api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, common.NewErrorf("ratings api returned status %d", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("ratings api gzip body: %w", err)
		}
		defer gz.Close()
		body = gz
	}

	info := &MovieInfo{}
	if err := json.NewDecoder(body).Decode(info); err != nil {
		return nil, fmt.Errorf("parse ratings response: %w", err)
	}

	if field := info.missingField(); field != "" {
		return nil, common.NewErrorf("ratings api response for %q missing %s", title, field)
	}
	return info, nil
}
