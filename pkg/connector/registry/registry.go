package registry

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/docbridge/docbridge/pkg/connector/core"
	"github.com/docbridge/docbridge/pkg/errors"
	"github.com/docbridge/docbridge/pkg/logger"
	"github.com/docbridge/docbridge/pkg/metrics"
)

// Registry manages object factory registration and instantiation.
// Configuration selects a factory by name; the registry resolves that
// name to a constructor and builds the single instance used for the
// process lifetime.
type Registry struct {
	factories map[string]FactoryFunc
	mu        sync.RWMutex
	logger    *zap.Logger
}

// FactoryFunc is a no-argument constructor for an object factory
// implementation.
type FactoryFunc func() (core.ObjectFactory, error)

// Global registry instance
var globalRegistry = NewRegistry()

// NewRegistry creates a new object factory registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]FactoryFunc),
		logger:    logger.Get().With(zap.String("component", "factory_registry")),
	}
}

// Register registers an object factory constructor under name
func (r *Registry) Register(name string, factory FactoryFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return errors.New(errors.ErrorTypeConfig, fmt.Sprintf("object factory %s already registered", name))
	}

	r.factories[name] = factory
	metrics.FactoryRegistrations.WithLabelValues(name).Inc()
	r.logger.Info("object factory registered", zap.String("name", name))
	return nil
}

// Create constructs the object factory registered under name. An
// unknown name is reported as a not_found error so callers can wrap it
// into their own configuration diagnostics.
func (r *Registry) Create(name string) (core.ObjectFactory, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.New(errors.ErrorTypeNotFound, fmt.Sprintf("object factory %s not registered", name))
	}

	instance, err := factory()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, fmt.Sprintf("failed to construct object factory %s", name))
	}

	return instance, nil
}

// List returns the registered factory names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has checks if a factory is registered under name
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.factories[name]
	return exists
}

// Clear removes all registered factories (mainly for testing)
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]FactoryFunc)
}

// Global registry functions

// Register registers an object factory in the global registry
func Register(name string, factory FactoryFunc) error {
	return globalRegistry.Register(name, factory)
}

// Create constructs an object factory from the global registry
func Create(name string) (core.ObjectFactory, error) {
	return globalRegistry.Create(name)
}

// List returns registered factory names from the global registry
func List() []string {
	return globalRegistry.List()
}

// Has checks if a factory is registered in the global registry
func Has(name string) bool {
	return globalRegistry.Has(name)
}

// GetRegistry returns the global registry instance.
// This is the primary way to access the factory registry.
func GetRegistry() *Registry {
	return globalRegistry
}

// FactoryInfo provides information about a registered factory
type FactoryInfo struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
}

// Catalog manages factory metadata
type Catalog struct {
	factories map[string]*FactoryInfo
	mu        sync.RWMutex
}

// NewCatalog creates a new factory catalog
func NewCatalog() *Catalog {
	return &Catalog{
		factories: make(map[string]*FactoryInfo),
	}
}

// Register adds a factory description to the catalog
func (c *Catalog) Register(info *FactoryInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.factories[info.Name]; exists {
		return errors.New(errors.ErrorTypeConfig, fmt.Sprintf("factory %s already in catalog", info.Name))
	}

	c.factories[info.Name] = info
	return nil
}

// Get retrieves a factory description
func (c *Catalog) Get(name string) (*FactoryInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, exists := c.factories[name]
	if !exists {
		return nil, errors.New(errors.ErrorTypeNotFound, fmt.Sprintf("factory %s not found in catalog", name))
	}

	return info, nil
}

// List returns all factory descriptions sorted by name
func (c *Catalog) List() []*FactoryInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	infos := make([]*FactoryInfo, 0, len(c.factories))
	for _, info := range c.factories {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Global catalog instance
var globalCatalog = NewCatalog()

// RegisterFactoryInfo registers a factory description in the global catalog
func RegisterFactoryInfo(info *FactoryInfo) error {
	return globalCatalog.Register(info)
}

// GetFactoryInfo retrieves a factory description from the global catalog
func GetFactoryInfo(name string) (*FactoryInfo, error) {
	return globalCatalog.Get(name)
}

// ListFactoryInfo lists all factory descriptions in the global catalog
func ListFactoryInfo() []*FactoryInfo {
	return globalCatalog.List()
}
