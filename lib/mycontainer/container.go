package mycontainer

import (
	"fmt"
	"sort"
	"sync"
)

type Container struct {
	sync.Mutex
	parameters  map[string]any
	definitions map[string]*Definition
	aliases     map[string]Alias
	synthetic   map[string]any
	shared      map[string]any
	types       map[string]TypeSpec
	compiled    bool
}

func New() *Container {
	return &Container{
		parameters:  map[string]any{},
		definitions: map[string]*Definition{},
		aliases:     map[string]Alias{},
		synthetic:   map[string]any{},
		shared:      map[string]any{},
		types:       map[string]TypeSpec{},
	}
}

func (c *Container) mustNotBeCompiled(operation string) {
	if c.compiled {
		panic(fmt.Sprintf("mycontainer: %s on a compiled container", operation))
	}
}

// SetParameter stores a parameter, replacing any earlier value under the same name.
func (c *Container) SetParameter(name string, value any) {
	c.Lock()
	defer c.Unlock()

	c.mustNotBeCompiled("SetParameter")
	c.parameters[name] = value
}

func (c *Container) GetParameter(name string) (any, bool) {
	c.Lock()
	defer c.Unlock()

	value, found := c.parameters[name]
	return value, found
}

func (c *Container) HasParameter(name string) bool {
	_, found := c.GetParameter(name)
	return found
}

// Parameters returns a copy of all parameters.
func (c *Container) Parameters() map[string]any {
	c.Lock()
	defer c.Unlock()

	out := make(map[string]any, len(c.parameters))
	for name, value := range c.parameters {
		out[name] = value
	}
	return out
}

// Set registers an already constructed service supplied by the host. It is always public.
func (c *Container) Set(id string, service any) {
	c.Lock()
	defer c.Unlock()

	c.mustNotBeCompiled("Set")
	delete(c.definitions, id)
	delete(c.aliases, id)
	c.synthetic[id] = service
}

// SetDefinition registers def under id, replacing any definition or alias with that id.
func (c *Container) SetDefinition(id string, def *Definition) {
	c.Lock()
	defer c.Unlock()

	c.mustNotBeCompiled("SetDefinition")
	delete(c.aliases, id)
	delete(c.synthetic, id)
	c.definitions[id] = def.Clone()
}

func (c *Container) GetDefinition(id string) (*Definition, bool) {
	c.Lock()
	defer c.Unlock()

	def, found := c.definitions[id]
	return def.Clone(), found
}

func (c *Container) HasDefinition(id string) bool {
	_, found := c.GetDefinition(id)
	return found
}

// Definitions returns the ids of all definitions, sorted.
func (c *Container) Definitions() []string {
	c.Lock()
	defer c.Unlock()

	return sortedIDs(c.definitions)
}

func (c *Container) SetAlias(alias string, target string, public bool) {
	c.Lock()
	defer c.Unlock()

	c.mustNotBeCompiled("SetAlias")
	delete(c.definitions, alias)
	delete(c.synthetic, alias)
	c.aliases[alias] = Alias{Target: target, Public: public}
}

func (c *Container) GetAlias(alias string) (Alias, bool) {
	c.Lock()
	defer c.Unlock()

	a, found := c.aliases[alias]
	return a, found
}

// Aliases returns a copy of all aliases.
func (c *Container) Aliases() map[string]Alias {
	c.Lock()
	defer c.Unlock()

	out := make(map[string]Alias, len(c.aliases))
	for alias, target := range c.aliases {
		out[alias] = target
	}
	return out
}

// RegisterType makes a service type constructible. Registering a name twice panics.
func (c *Container) RegisterType(name string, spec TypeSpec) {
	c.Lock()
	defer c.Unlock()

	if _, exists := c.types[name]; exists {
		panic(fmt.Sprintf("mycontainer: type %q already registered", name))
	}
	if spec.New == nil {
		panic(fmt.Sprintf("mycontainer: type %q has no constructor", name))
	}
	c.types[name] = spec
}

func (c *Container) IsCompiled() bool {
	c.Lock()
	defer c.Unlock()

	return c.compiled
}

func sortedIDs[T any](m map[string]T) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
