// Command musicinfo looks up genre tags and album details using the
// Last.fm and Spotify APIs. Configuration is provided via environment
// variables, optionally from a .env file. The result of the selected lookup
// is printed as JSON on stdout.
//
// Usage:
//
//	musicinfo -track "Karma Police" -artists Radiohead
//	musicinfo -artists "Radiohead,Portishead" -limit 3
//	musicinfo -album 6rqhFgbbKwnb9MLmUQDhG6

package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"Music-Info-Go/pkg/config"
	"Music-Info-Go/pkg/lastfm"
	"Music-Info-Go/pkg/music"
	"Music-Info-Go/pkg/spotify"
)

// main configures the provider clients and runs one lookup.
func main() {
	track := flag.String("track", "", "track name for a single-track genre lookup")
	artists := flag.String("artists", "", "comma separated artist names")
	album := flag.String("album", "", "Spotify track ID for an album lookup")
	limit := flag.Int("limit", music.DefaultLimit, "maximum number of genres to return")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	svc := music.Service{
		Tags: &lastfm.Client{APIKey: cfg.LastFM.APIKey, BaseURL: cfg.LastFM.BaseURL},
	}
	// The Spotify client performs a token exchange on construction, so it
	// is only built when the album lookup actually needs it.
	if *album != "" {
		sc, err := spotify.NewClient(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret)
		if err != nil {
			log.Fatalf("spotify client init: %v", err)
		}
		svc.Albums = sc
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	names := splitNames(*artists)
	var out any
	switch {
	case *album != "":
		out, err = svc.TrackAlbum(ctx, *album)
	case *track != "":
		var artist string
		if len(names) > 0 {
			artist = names[0]
		}
		out, err = svc.TrackGenres(ctx, *track, artist, *limit)
	case len(names) > 0:
		out, err = svc.ArtistGenres(ctx, names, *limit)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode result: %v", err)
	}
}

// splitNames turns a comma separated flag value into trimmed, non-empty
// names.
func splitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
