package gapfill

import (
	"fmt"
	"sort"
	"sync"
)

type FillerFactory interface {
	NewFiller() Filler
}

type FillerFactoryFunc func() Filler

func (fn FillerFactoryFunc) NewFiller() Filler {
	return fn()
}

type fillerFactoryWithPriority struct {
	Name     string
	Priority int
	FillerFactory
}

var (
	fillerFactoryRegistry       = map[string]fillerFactoryWithPriority{}
	fillerFactoryRegistryLocker sync.Mutex
)

// Register makes a Filler strategy available by name. The strategy with the highest
// priority is the default one.
func Register(
	name string,
	priority int,
	factory FillerFactory,
) {
	fillerFactoryRegistryLocker.Lock()
	defer fillerFactoryRegistryLocker.Unlock()
	if _, ok := fillerFactoryRegistry[name]; ok {
		panic(fmt.Errorf("there is already registered a gap filler with name %q", name))
	}
	fillerFactoryRegistry[name] = fillerFactoryWithPriority{
		Name:          name,
		Priority:      priority,
		FillerFactory: factory,
	}
}

func sortedFactories() []fillerFactoryWithPriority {
	fillerFactoryRegistryLocker.Lock()
	defer fillerFactoryRegistryLocker.Unlock()
	var factories []fillerFactoryWithPriority
	for _, factory := range fillerFactoryRegistry {
		factories = append(factories, factory)
	}
	sort.Slice(factories, func(i, j int) bool {
		if factories[i].Priority != factories[j].Priority {
			return factories[i].Priority > factories[j].Priority
		}
		return factories[i].Name < factories[j].Name
	})
	return factories
}

// Names returns the registered strategy names, the default one first.
func Names() []string {
	var names []string
	for _, factory := range sortedFactories() {
		names = append(names, factory.Name)
	}
	return names
}

// New returns a Filler of the strategy with the given name.
// An empty name selects the default strategy.
func New(name string) (Filler, error) {
	factories := sortedFactories()
	if len(factories) == 0 {
		return nil, fmt.Errorf("no gap filler strategy is registered")
	}
	if name == "" {
		return factories[0].NewFiller(), nil
	}
	for _, factory := range factories {
		if factory.Name == name {
			return factory.NewFiller(), nil
		}
	}
	return nil, fmt.Errorf("unknown gap filler strategy %q, known strategies: %v", name, Names())
}
