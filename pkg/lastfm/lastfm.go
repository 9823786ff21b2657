// Package lastfm implements the music.TagSource interface using the Last.fm
// web API. Only the two tag endpoints needed by the genre lookups are
// supported. An API key is required; keys are issued through the Last.fm
// developer account pages. The client performs no authentication beyond
// sending the key with each request.
package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"Music-Info-Go/pkg/metrics"
	"Music-Info-Go/pkg/music"
)

// DefaultBaseURL is the public Last.fm API root used when BaseURL is empty.
const DefaultBaseURL = "https://ws.audioscrobbler.com/2.0/"

// Client queries the Last.fm API. APIKey must be set. If HTTP is nil each
// request uses a client with a 10 second timeout, so a bounded wait applies
// even when callers pass no deadline on the context. The struct itself is
// never mutated after construction and may be shared across goroutines.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

// Ensure interface compliance.
var _ music.TagSource = (*Client)(nil)

// TrackTags fetches the tags attached to the named track via track.getInfo.
// A payload without a track object means Last.fm does not know the track
// and is reported as music.ErrNotFound.
func (c *Client) TrackTags(ctx context.Context, track, artist string) (music.TrackTags, error) {
	var body struct {
		Track *struct {
			Name    string `json:"name"`
			TopTags struct {
				Tag []music.Tag `json:"tag"`
			} `json:"toptags"`
		} `json:"track"`
	}
	params := url.Values{"track": {track}, "artist": {artist}}
	if err := c.get(ctx, "track.getInfo", params, &body); err != nil {
		return music.TrackTags{}, err
	}
	if body.Track == nil {
		return music.TrackTags{}, fmt.Errorf("track %q by %q: %w", track, artist, music.ErrNotFound)
	}
	return music.TrackTags{Track: body.Track.Name, Tags: body.Track.TopTags.Tag}, nil
}

// ArtistTopTags fetches the artist's top tags via artist.getTopTags. An
// artist without tags, or an unknown artist, yields an empty slice and no
// error so a single obscure name cannot fail a whole aggregation.
func (c *Client) ArtistTopTags(ctx context.Context, artist string) ([]music.Tag, error) {
	var body struct {
		TopTags struct {
			Tag []music.Tag `json:"tag"`
		} `json:"toptags"`
	}
	params := url.Values{"artist": {artist}}
	if err := c.get(ctx, "artist.getTopTags", params, &body); err != nil {
		return nil, err
	}
	return body.TopTags.Tag, nil
}

// get issues one API request for the given method and decodes the JSON
// response into out. Transport failures, non-200 statuses and malformed
// bodies are all reported as music.ErrUnavailable.
func (c *Client) get(ctx context.Context, method string, params url.Values, out any) (err error) {
	if c.APIKey == "" {
		return fmt.Errorf("lastfm %s: api key required: %w", method, music.ErrUnavailable)
	}
	defer func() { metrics.ObserveRequest("lastfm", method, err) }()
	// Resolve the HTTP client into a local: the genre aggregation fans
	// out one goroutine per artist over a shared Client, so the receiver
	// must not be written here.
	h := c.HTTP
	if h == nil {
		h = &http.Client{Timeout: 10 * time.Second}
	}
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	params.Set("method", method)
	params.Set("api_key", c.APIKey)
	params.Set("format", "json")
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	resp, err := h.Do(req)
	if err != nil {
		return fmt.Errorf("lastfm %s: %w: %w", method, music.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("lastfm %s: %s: %w", method, resp.Status, music.ErrUnavailable)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// Invalid JSON means the API changed or the key is invalid.
		return fmt.Errorf("lastfm %s: decode: %w: %w", method, music.ErrUnavailable, err)
	}
	return nil
}
