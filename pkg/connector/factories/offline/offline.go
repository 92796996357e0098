// Package offline provides an inert object factory for validating
// configurations without touching a live content engine.
package offline

import (
	"context"
	"fmt"

	"github.com/docbridge/docbridge/pkg/connector/core"
	"github.com/docbridge/docbridge/pkg/errors"
)

// Name is the registry name of the offline factory.
const Name = "offline"

// Factory refuses every connection attempt. Selecting it lets a
// deployment run full configuration validation, including display-URL
// resolution, before engine credentials or network access exist.
type Factory struct{}

// NewFactory constructs the offline factory.
func NewFactory() (core.ObjectFactory, error) {
	return &Factory{}, nil
}

// GetConnection implements core.ObjectFactory.
func (f *Factory) GetConnection(ctx context.Context, engineURL, username, password string) (core.Connection, error) {
	return nil, errors.New(errors.ErrorTypeCapability,
		fmt.Sprintf("offline factory cannot open a connection to %s", engineURL))
}

// GetObjectStore implements core.ObjectFactory.
func (f *Factory) GetObjectStore(ctx context.Context, conn core.Connection, name string) (core.ObjectStore, error) {
	return nil, errors.New(errors.ErrorTypeCapability,
		fmt.Sprintf("offline factory cannot open object store %s", name))
}
