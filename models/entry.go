package models

import (
	"strings"
	"time"
)

// ContentType is the kind of catalog item an entry refers to.
type ContentType string

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeTVShow ContentType = "tv-show"
)

// Valid reports whether c is one of the supported content types.
func (c ContentType) Valid() bool {
	return c == ContentTypeMovie || c == ContentTypeTVShow
}

// ContentTypeFromProvider maps the "Type" field of the search provider
// ("movie", "series", "episode") to a ContentType.
// It returns false when the provider type is unknown.
func ContentTypeFromProvider(providerType string) (ContentType, bool) {
	switch strings.ToLower(strings.TrimSpace(providerType)) {
	case "movie":
		return ContentTypeMovie, true
	case "series", "episode", "tv", "tv-show":
		return ContentTypeTVShow, true
	default:
		return "", false
	}
}

// WatchlistEntry is a movie or show the user has watched, with opinion data.
type WatchlistEntry struct {
	// ID is the external catalog identifier, unique within a user's watchlist.
	ID          string      `json:"id"`
	ContentType ContentType `json:"contentType"`
	Title       string      `json:"title"`
	Poster      string      `json:"poster"`
	Review      string      `json:"review"`

	// Rating is 0 (unrated) or an integer in [1,5].
	Rating int `json:"rating"`

	// Runtime is the duration in whole minutes, never negative.
	Runtime int `json:"runtime"`

	// AddedAt is set once at insertion and is the sole sort key.
	AddedAt time.Time `json:"addedAt"`
}

// BacklogEntry is a movie or show the user intends to watch.
type BacklogEntry struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Poster  string    `json:"poster"`
	Runtime int       `json:"runtime"`
	AddedAt time.Time `json:"addedAt"`
}

// WatchlistEntryInput is the client-submitted shape of a new watchlist entry.
// Only the fields listed here are accepted; everything else is assigned by
// the server.
type WatchlistEntryInput struct {
	ID          string      `json:"id"`
	ContentType ContentType `json:"contentType"`

	// ProviderType is the raw type reported by the search provider. It is
	// used to derive ContentType when the latter is absent.
	ProviderType string `json:"type,omitempty"`

	Title  string `json:"title"`
	Poster string `json:"poster"`
	Review string `json:"review"`

	// Runtime accepts either a number or a free-text duration like "142 min".
	Runtime any `json:"runtime"`
}

// BacklogEntryInput is the client-submitted shape of a new backlog entry.
type BacklogEntryInput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Poster  string `json:"poster"`
	Runtime any    `json:"runtime"`
}
