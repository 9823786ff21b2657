// Package spotify wraps the official Spotify client library to resolve a
// track identifier to the album that owns it. It authenticates using the
// client credentials flow, which is sufficient for catalog reads and needs
// no user login. Errors are classified with the music package sentinels so
// callers can tell an unknown track from an outage.
//
// The exported method accepts a context parameter. The wrapped library does
// not provide context support so cancellation is checked explicitly before
// each call.
package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/zmb3/spotify"
	"golang.org/x/oauth2/clientcredentials"

	"Music-Info-Go/pkg/metrics"
	"Music-Info-Go/pkg/music"
)

// trackGetter defines the subset of the spotify.Client used by this package.
// It allows the concrete client to be replaced in tests.
type trackGetter interface {
	GetTrack(id spotify.ID) (*spotify.FullTrack, error)
}

// Client wraps the official Spotify client providing the album lookup used
// by the music service.
type Client struct {
	client trackGetter
}

// Compile-time interface check ensuring Client satisfies the generic
// music.AlbumSource interface used by the rest of the application.
var _ music.AlbumSource = (*Client)(nil)

// NewClient authenticates using the client credentials flow and returns a
// Client ready for API calls. clientID and clientSecret are obtained from
// the Spotify developer dashboard.
func NewClient(clientID, clientSecret string) (*Client, error) {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotify.TokenURL,
	}
	token, err := config.Token(context.Background())
	if err != nil {
		return nil, fmt.Errorf("spotify token: %w: %w", music.ErrUnavailable, err)
	}
	c := spotify.Authenticator{}.NewClient(token)
	return &Client{client: &c}, nil
}

// TrackAlbum implements music.AlbumSource by fetching the full track record
// and extracting the album fields. A 404 from the API is reported as
// music.ErrNotFound; any other failure as music.ErrUnavailable.
func (c *Client) TrackAlbum(ctx context.Context, trackID string) (music.AlbumInfo, error) {
	// The wrapped client does not accept a context, but we honour the
	// provided one by checking for cancellation before the call. An
	// expired context still counts as an attempted, failed request.
	if err := ctx.Err(); err != nil {
		metrics.ObserveRequest("spotify", "tracks.get", err)
		return music.AlbumInfo{}, fmt.Errorf("spotify track %q: %w: %w", trackID, music.ErrUnavailable, err)
	}
	ft, err := c.client.GetTrack(spotify.ID(trackID))
	if err != nil {
		var apiErr spotify.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			metrics.ObserveRequest("spotify", "tracks.get", nil)
			return music.AlbumInfo{}, fmt.Errorf("track %q: %w", trackID, music.ErrNotFound)
		}
		metrics.ObserveRequest("spotify", "tracks.get", err)
		return music.AlbumInfo{}, fmt.Errorf("spotify track %q: %w: %w", trackID, music.ErrUnavailable, err)
	}
	metrics.ObserveRequest("spotify", "tracks.get", nil)
	return music.AlbumInfo{
		Track:       ft.Name,
		AlbumType:   ft.Album.AlbumType,
		Album:       ft.Album.Name,
		ReleaseDate: ft.Album.ReleaseDate,
	}, nil
}
