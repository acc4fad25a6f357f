// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"go.uber.org/zap"

	"github.com/barnettben/Datastream/pkg/datastream"
	"github.com/barnettben/Datastream/pkg/storage"
)

// Archive is the document store behind the datastream endpoints
type Archive interface {
	Put(source string, doc *datastream.Document) (storage.Entry, error)
	Get(id string) (*datastream.Document, error)
	Entry(id string) (storage.Entry, error)
	List() ([]storage.Entry, error)
	Delete(id string) error
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves the API until ctx is cancelled
	StartServer(ctx context.Context, archive Archive, config ServerConfig, log *zap.Logger) error
}

// ServerFactory defines the interface for creating server starters
type ServerFactory interface {
	CreateServerStarter() ServerStarter
}
