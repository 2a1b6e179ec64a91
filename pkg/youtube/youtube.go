// Package youtube resolves linked videos: URL validation, video id
// extraction and metadata lookup through the public oEmbed endpoint.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/pkg/errors"
)

var (
	urlPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+`)

	idPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)([^&\n?#/]+)`),
		regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#/]+)`),
	}
)

// Metadata is the subset of oEmbed fields the application stores.
type Metadata struct {
	Title     string `json:"title"`
	Author    string `json:"author_name"`
	Thumbnail string `json:"thumbnail_url"`
}

func IsValidURL(url string) bool {
	return urlPattern.MatchString(url)
}

// ExtractID pulls the video id out of the watch, short, embed and /v/ URL
// forms. Empty result means no id could be found.
func ExtractID(url string) string {
	for _, p := range idPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

func EmbedURL(videoID string) string {
	return "https://www.youtube.com/embed/" + videoID
}

var client = &http.Client{Timeout: 5 * time.Second}

// FetchMetadata asks the oEmbed endpoint for title/author/thumbnail. Callers
// fall back to their own defaults on error.
func FetchMetadata(ctx context.Context, videoID string) (*Metadata, error) {
	url := fmt.Sprintf("https://www.youtube.com/oembed?url=https://www.youtube.com/watch?v=%s&format=json", videoID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.WithMessage(err, "oembed request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("oembed returned status %d", resp.StatusCode)
	}

	var meta Metadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, errors.WithMessage(err, "failed to decode oembed response")
	}
	return &meta, nil
}
