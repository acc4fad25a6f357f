package api

import "github.com/barnettben/Datastream/pkg/datastream"

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port          int
	Bind          string
	APIKey        string
	Strict        bool  // Default strict mode for uploads; ?strict= overrides it
	MaxUploadSize int64 // Largest accepted upload body in bytes; 0 means unlimited
}

// AnimalView is everything a stored file says about one animal
type AnimalView struct {
	Animal     *datastream.Animal          `json:"animal"`
	Statement  *datastream.AnimalStatement `json:"statement,omitempty"`
	Lactations []datastream.Lactation      `json:"lactations"`
}
