// This file implements the genre lookup service which shapes provider
// responses into GenreResult and AlbumInfo values. The only non-trivial
// piece is ArtistGenres, which merges tag occurrences across several
// artists into a frequency-ranked list.
package music

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Service bundles the remote sources used by the lookups. Construct one at
// startup and pass it to callers; it holds no per-request state and is safe
// for concurrent use.
type Service struct {
	Tags   TagSource
	Albums AlbumSource
}

// TrackGenres fetches the tags for a single track/artist pair and returns
// the first limit tags in remote order. A track the remote does not know
// yields a result with NotFound set and an empty genre list, not an error.
// A limit of zero or less falls back to DefaultLimit.
func (s Service) TrackGenres(ctx context.Context, track, artist string, limit int) (GenreResult, error) {
	if artist == "" {
		return GenreResult{}, fmt.Errorf("%w: at least one artist name must be provided", ErrInvalidArgument)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	tt, err := s.Tags.TrackTags(ctx, track, artist)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Echo the queried name so the shaped absence result
			// identifies what was not found.
			return GenreResult{Track: track, Artists: []string{artist}, Genres: []string{}, NotFound: true}, nil
		}
		return GenreResult{}, remoteErr(fmt.Sprintf("tags for track %q", track), err)
	}
	genres := make([]string, 0, limit)
	for _, t := range tt.Tags {
		if len(genres) == limit {
			break
		}
		genres = append(genres, t.Name)
	}
	return GenreResult{Track: tt.Track, Artists: []string{artist}, Genres: genres}, nil
}

// ArtistGenres fetches the top tags of every named artist and returns the
// limit most frequent tags overall. Every occurrence counts, including a
// tag repeated within one artist's list. Equal counts rank in the order the
// tag was first encountered across the artist sequence as given, so the
// per-artist fetches may run concurrently without affecting the result.
//
// An artist without tags contributes nothing and does not fail the call; a
// transport failure for any artist fails the whole aggregation.
func (s Service) ArtistGenres(ctx context.Context, artists []string, limit int) (GenreResult, error) {
	if len(artists) == 0 {
		return GenreResult{}, fmt.Errorf("%w: at least one artist name must be provided", ErrInvalidArgument)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	type result struct {
		tags []Tag
		err  error
	}
	results := make([]result, len(artists))
	var wg sync.WaitGroup
	for i, artist := range artists {
		wg.Add(1)
		go func(i int, artist string) {
			defer wg.Done()
			tags, err := s.Tags.ArtistTopTags(ctx, artist)
			results[i] = result{tags: tags, err: err}
		}(i, artist)
	}
	wg.Wait()
	// Fold in input order so the tie-break reflects the artist sequence,
	// not completion order.
	counts := newTagCounter()
	for i, r := range results {
		if r.err != nil {
			return GenreResult{}, remoteErr(fmt.Sprintf("top tags for artist %q", artists[i]), r.err)
		}
		if len(r.tags) == 0 {
			log.WithField("artist", artists[i]).Debug("no tags contributed")
			continue
		}
		for _, t := range r.tags {
			counts.add(t.Name)
		}
	}
	return GenreResult{Artists: artists, Genres: counts.top(limit)}, nil
}

// TrackAlbum resolves a track identifier to its album details. An unknown
// identifier is reported as ErrNotFound so callers can distinguish absence
// from an outage.
func (s Service) TrackAlbum(ctx context.Context, trackID string) (AlbumInfo, error) {
	if trackID == "" {
		return AlbumInfo{}, fmt.Errorf("%w: track id must not be empty", ErrInvalidArgument)
	}
	info, err := s.Albums.TrackAlbum(ctx, trackID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AlbumInfo{}, fmt.Errorf("album for track %q: %w", trackID, err)
		}
		return AlbumInfo{}, remoteErr(fmt.Sprintf("album for track %q", trackID), err)
	}
	return info, nil
}

// remoteErr classifies err as ErrUnavailable unless the provider already
// did so.
func remoteErr(op string, err error) error {
	if errors.Is(err, ErrUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

// tagCounter accumulates tag occurrences for a single aggregation. It
// remembers first-insertion order, which is the tie-break for equal counts.
type tagCounter struct {
	counts map[string]int
	order  []string
}

func newTagCounter() *tagCounter {
	return &tagCounter{counts: make(map[string]int)}
}

func (c *tagCounter) add(name string) {
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

// top returns up to n tags ranked by descending count. The stable sort over
// the insertion-ordered slice preserves first-seen order for equal counts.
func (c *tagCounter) top(n int) []string {
	ranked := make([]string, len(c.order))
	copy(ranked, c.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return c.counts[ranked[i]] > c.counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
