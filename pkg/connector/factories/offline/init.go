package offline

import (
	"github.com/docbridge/docbridge/pkg/connector/registry"
)

func init() {
	// Register the offline factory
	_ = registry.Register(Name, NewFactory)

	// Register factory info
	_ = registry.RegisterFactoryInfo(&registry.FactoryInfo{
		Name:        Name,
		Description: "Inert factory that validates configuration without opening engine connections",
		Version:     "1.0.0",
		Capabilities: []string{
			"dry-run",
		},
	})
}
