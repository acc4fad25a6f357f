// Package di provides dependency injection container
package di

import (
	"fmt"
	"os"

	"github.com/barnettben/Datastream/pkg/api"
	"github.com/barnettben/Datastream/pkg/storage"
)

// Archive is a document store the CLI can close when it is done
type Archive interface {
	api.Archive
	Close() error
}

// ArchiveFactory opens the archive kept in dir
type ArchiveFactory func(dir string) (Archive, error)

// OpenStorage opens a pebble archive, creating dir if needed
func OpenStorage(dir string) (Archive, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	archive, err := storage.Open(dir)
	if err != nil {
		return nil, err
	}
	return archive, nil
}

// Container holds all the dependencies for the application
type Container struct {
	archiveFactory ArchiveFactory
	serverFactory  api.ServerFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		archiveFactory: OpenStorage,
		serverFactory:  api.NewServerFactory(),
	}
}

// OpenArchive opens the archive in dir with the configured factory
func (c *Container) OpenArchive(dir string) (Archive, error) {
	return c.archiveFactory(dir)
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetArchiveFactory allows overriding how archives are opened (for testing)
func (c *Container) SetArchiveFactory(factory ArchiveFactory) {
	c.archiveFactory = factory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}
