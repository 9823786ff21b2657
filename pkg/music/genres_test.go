package music

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeTags implements TagSource with canned responses so the service can be
// tested without hitting a real API.
type fakeTags struct {
	track    TrackTags
	trackErr error
	top      map[string][]Tag
	topErr   map[string]error
}

func (f fakeTags) TrackTags(context.Context, string, string) (TrackTags, error) {
	return f.track, f.trackErr
}

func (f fakeTags) ArtistTopTags(_ context.Context, artist string) ([]Tag, error) {
	if err := f.topErr[artist]; err != nil {
		return nil, err
	}
	return f.top[artist], nil
}

type fakeAlbums struct {
	info AlbumInfo
	err  error
}

func (f fakeAlbums) TrackAlbum(context.Context, string) (AlbumInfo, error) {
	return f.info, f.err
}

func tags(names ...string) []Tag {
	ts := make([]Tag, len(names))
	for i, n := range names {
		ts[i] = Tag{Name: n}
	}
	return ts
}

// TestArtistGenresRanking checks the frequency merge: duplicate occurrences
// count multiply and ties break by first-encountered order.
func TestArtistGenresRanking(t *testing.T) {
	svc := Service{Tags: fakeTags{top: map[string][]Tag{
		"Artist1": tags("rock", "pop", "rock"),
		"Artist2": tags("pop", "jazz"),
	}}}
	res, err := svc.ArtistGenres(context.Background(), []string{"Artist1", "Artist2"}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// rock and pop both count 2; rock appears first in Artist1's list.
	if len(res.Genres) != 2 || res.Genres[0] != "rock" || res.Genres[1] != "pop" {
		t.Fatalf("unexpected genres %v", res.Genres)
	}
}

// TestArtistGenresTieBreak verifies equal single counts rank in artist
// sequence order.
func TestArtistGenresTieBreak(t *testing.T) {
	svc := Service{Tags: fakeTags{top: map[string][]Tag{
		"A": tags("rock"),
		"B": tags("pop"),
	}}}
	res, err := svc.ArtistGenres(context.Background(), []string{"A", "B"}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Genres) != 2 || res.Genres[0] != "rock" || res.Genres[1] != "pop" {
		t.Fatalf("expected [rock pop] got %v", res.Genres)
	}
}

// TestArtistGenresLimit ensures no more than limit genres are returned and
// every returned genre came from an underlying fetch.
func TestArtistGenresLimit(t *testing.T) {
	fetched := map[string][]Tag{
		"A": tags("rock", "pop", "jazz", "metal"),
		"B": tags("folk", "blues"),
	}
	svc := Service{Tags: fakeTags{top: fetched}}
	res, err := svc.ArtistGenres(context.Background(), []string{"A", "B"}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Genres) != 3 {
		t.Fatalf("expected 3 genres got %d", len(res.Genres))
	}
	union := map[string]bool{}
	for _, ts := range fetched {
		for _, tag := range ts {
			union[tag.Name] = true
		}
	}
	for _, g := range res.Genres {
		if !union[g] {
			t.Errorf("genre %q not in fetched tags", g)
		}
	}
}

// TestArtistGenresDefaultLimit checks a non-positive limit falls back to
// the default of five.
func TestArtistGenresDefaultLimit(t *testing.T) {
	svc := Service{Tags: fakeTags{top: map[string][]Tag{
		"A": tags("a", "b", "c", "d", "e", "f", "g"),
	}}}
	res, err := svc.ArtistGenres(context.Background(), []string{"A"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Genres) != DefaultLimit {
		t.Fatalf("expected %d genres got %d", DefaultLimit, len(res.Genres))
	}
}

func TestArtistGenresEmptyInput(t *testing.T) {
	svc := Service{Tags: fakeTags{}}
	if _, err := svc.ArtistGenres(context.Background(), nil, 5); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument got %v", err)
	}
}

// TestArtistGenresSkipsMissingTags ensures an artist without tags
// contributes nothing instead of failing the aggregation.
func TestArtistGenresSkipsMissingTags(t *testing.T) {
	svc := Service{Tags: fakeTags{top: map[string][]Tag{
		"Known": tags("rock"),
	}}}
	res, err := svc.ArtistGenres(context.Background(), []string{"Unknown", "Known"}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Genres) != 1 || res.Genres[0] != "rock" {
		t.Fatalf("unexpected genres %v", res.Genres)
	}
}

// TestArtistGenresRemoteFailure verifies a transport failure for any single
// artist fails the whole aggregation.
func TestArtistGenresRemoteFailure(t *testing.T) {
	svc := Service{Tags: fakeTags{
		top:    map[string][]Tag{"A": tags("rock")},
		topErr: map[string]error{"B": errors.New("connection refused")},
	}}
	_, err := svc.ArtistGenres(context.Background(), []string{"A", "B"}, 5)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable got %v", err)
	}
}

func TestTrackGenresNoArtist(t *testing.T) {
	svc := Service{Tags: fakeTags{}}
	if _, err := svc.TrackGenres(context.Background(), "Song", "", 5); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument got %v", err)
	}
}

// TestTrackGenresNotFound checks an unknown track is a shaped result with
// the marker set and an empty genre list, not an error.
func TestTrackGenresNotFound(t *testing.T) {
	svc := Service{Tags: fakeTags{trackErr: fmt.Errorf("track: %w", ErrNotFound)}}
	res, err := svc.TrackGenres(context.Background(), "Nope", "Nobody", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.NotFound {
		t.Fatal("expected NotFound marker")
	}
	if res.Genres == nil || len(res.Genres) != 0 {
		t.Fatalf("expected empty genre list got %v", res.Genres)
	}
	if res.Track != "Nope" {
		t.Fatalf("expected queried track name echoed, got %q", res.Track)
	}
}

// TestTrackGenresTruncates checks the tag list is cut to limit in remote
// order without re-sorting.
func TestTrackGenresTruncates(t *testing.T) {
	svc := Service{Tags: fakeTags{track: TrackTags{
		Track: "Karma Police",
		Tags:  tags("alternative", "rock", "britpop", "indie", "90s", "melancholic"),
	}}}
	res, err := svc.TrackGenres(context.Background(), "karma police", "Radiohead", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Track != "Karma Police" {
		t.Fatalf("expected remote-echoed name, got %q", res.Track)
	}
	want := []string{"alternative", "rock", "britpop", "indie", "90s"}
	if len(res.Genres) != len(want) {
		t.Fatalf("expected %d genres got %d", len(want), len(res.Genres))
	}
	for i, g := range want {
		if res.Genres[i] != g {
			t.Errorf("genre %d: expected %q got %q", i, g, res.Genres[i])
		}
	}
}

// TestTrackGenresFewerThanLimit ensures a short tag list is returned as-is
// with no padding.
func TestTrackGenresFewerThanLimit(t *testing.T) {
	svc := Service{Tags: fakeTags{track: TrackTags{Track: "Song", Tags: tags("rock", "pop")}}}
	res, err := svc.TrackGenres(context.Background(), "Song", "Artist", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Genres) != 2 {
		t.Fatalf("expected 2 genres got %v", res.Genres)
	}
}

func TestTrackGenresRemoteFailure(t *testing.T) {
	svc := Service{Tags: fakeTags{trackErr: errors.New("timeout")}}
	if _, err := svc.TrackGenres(context.Background(), "Song", "Artist", 5); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable got %v", err)
	}
}

func TestTrackAlbum(t *testing.T) {
	want := AlbumInfo{Track: "Exit Music", AlbumType: "album", Album: "OK Computer", ReleaseDate: "1997-05-21"}
	svc := Service{Albums: fakeAlbums{info: want}}
	got, err := svc.TrackAlbum(context.Background(), "id123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected album info %+v", got)
	}
}

func TestTrackAlbumEmptyID(t *testing.T) {
	svc := Service{Albums: fakeAlbums{}}
	if _, err := svc.TrackAlbum(context.Background(), ""); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument got %v", err)
	}
}

func TestTrackAlbumNotFound(t *testing.T) {
	svc := Service{Albums: fakeAlbums{err: fmt.Errorf("track: %w", ErrNotFound)}}
	if _, err := svc.TrackAlbum(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestTrackAlbumRemoteFailure(t *testing.T) {
	svc := Service{Albums: fakeAlbums{err: errors.New("boom")}}
	if _, err := svc.TrackAlbum(context.Background(), "id"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable got %v", err)
	}
}
