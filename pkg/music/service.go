// Package music defines the data structures and source interfaces for the
// genre and album lookups. Implementations can wrap Last.fm, Spotify or any
// other metadata provider. By depending on this package the rest of the
// application can remain agnostic about the underlying platform.
package music

import (
	"context"
	"errors"
)

// DefaultLimit is the number of genres returned when the caller does not
// specify a positive limit.
const DefaultLimit = 5

// Sentinel errors classifying lookup failures. Errors returned by Service
// and by the provider clients wrap one of these so callers can classify
// them with errors.Is.
var (
	// ErrInvalidArgument reports missing or empty required input. It is
	// raised locally before any remote call is made.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports that the remote explicitly has no record for
	// the requested entity.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable reports a transport or API failure. It is never
	// retried internally.
	ErrUnavailable = errors.New("remote unavailable")
)

// Tag is a free-text genre or style label attached to a track or artist by
// a remote provider. Equality is exact string match; no case or locale
// folding is performed.
type Tag struct {
	Name string `json:"name"`
}

// TrackTags holds the tag list for a single track as returned by the tag
// provider. Track is the name as echoed by the remote, which may differ in
// capitalisation from the query.
type TrackTags struct {
	Track string
	Tags  []Tag
}

// GenreResult is the shaped response of the genre lookups. Genres is never
// longer than the requested limit. NotFound is set when the remote reported
// the track as unknown; in that case Genres is empty but non-nil, matching
// the "always return a shaped result for recognised absence" contract.
type GenreResult struct {
	Track    string   `json:"track,omitempty"`
	Artists  []string `json:"artists"`
	Genres   []string `json:"genres"`
	NotFound bool     `json:"not_found,omitempty"`
}

// AlbumInfo describes the album owning a track. All fields are taken
// verbatim from the catalog provider.
type AlbumInfo struct {
	Track       string `json:"track"`
	AlbumType   string `json:"album_type"`
	Album       string `json:"album"`
	ReleaseDate string `json:"release_date"`
}

// TagSource fetches genre tags from a remote provider. Implementations
// return an error wrapping ErrNotFound when the remote reports the track as
// unknown, and wrap ErrUnavailable for transport failures. A missing tag
// list is not an error: ArtistTopTags returns an empty slice.
type TagSource interface {
	// TrackTags returns the tags attached to the named track by the
	// given artist, in the order the remote lists them.
	TrackTags(ctx context.Context, track, artist string) (TrackTags, error)

	// ArtistTopTags returns the artist's top tags in remote order. An
	// artist without tags yields an empty slice and a nil error.
	ArtistTopTags(ctx context.Context, artist string) ([]Tag, error)
}

// AlbumSource resolves a track identifier to its owning album.
type AlbumSource interface {
	// TrackAlbum returns album details for the track with the given
	// provider ID. An unknown ID yields an error wrapping ErrNotFound.
	TrackAlbum(ctx context.Context, trackID string) (AlbumInfo, error)
}
