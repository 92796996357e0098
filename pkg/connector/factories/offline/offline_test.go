package offline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbridge/docbridge/pkg/connector/registry"
	"github.com/docbridge/docbridge/pkg/errors"
)

func TestRegisteredGlobally(t *testing.T) {
	assert.True(t, registry.Has(Name))

	info, err := registry.GetFactoryInfo(Name)
	require.NoError(t, err)
	assert.Equal(t, Name, info.Name)
}

func TestRefusesConnections(t *testing.T) {
	factory, err := NewFactory()
	require.NoError(t, err)

	_, err = factory.GetConnection(context.Background(), "http://ce.example.com", "user", "pw")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeCapability))

	_, err = factory.GetObjectStore(context.Background(), nil, "Store1")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeCapability))
}
