package main

import (
	"github.com/barnettben/Datastream/cmd/datastream/cmd"
	"github.com/barnettben/Datastream/pkg/di"
)

func main() {
	// Initialize dependency injection container
	container := di.NewContainer()

	// Inject dependencies into cmd package
	cmd.SetContainer(container)

	cmd.Execute()
}
