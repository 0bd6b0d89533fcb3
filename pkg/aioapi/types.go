package aioapi

import "time"

// LibraryGame is one entry of the user's aggregated game library as served
// by the AIO backend.
type LibraryGame struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	CoverImage  string     `json:"cover_image,omitempty"`
	Store       string     `json:"store"`
	StoreGameID string     `json:"store_game_id"`
	AppName     string     `json:"app_name,omitempty"`
	IsInstalled bool       `json:"is_installed"`
	IsFavorite  bool       `json:"is_favorite"`
	PlayTime    int        `json:"play_time"` // minutes
	LastPlayed  *time.Time `json:"last_played,omitempty"`
}

type libraryResponse struct {
	Games []LibraryGame `json:"games"`
}

type healthResponse struct {
	Status string `json:"status"`
}
