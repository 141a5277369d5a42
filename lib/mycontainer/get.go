package mycontainer

import (
	"fmt"
	"strings"

	"github.com/MarcGrol/mobilpaybundle/lib/myerrors"
)

// Get returns the public service registered under id, constructing it on first use.
// Host services set with Set are available at any time; definitions only after Compile.
func (c *Container) Get(id string) (any, error) {
	c.Lock()
	defer c.Unlock()

	if service, found := c.synthetic[id]; found {
		return service, nil
	}

	public := false
	if alias, found := c.aliases[id]; found {
		if !alias.Public {
			return nil, myerrors.NewNotFoundErrorf("service %q is private", id)
		}
		target, err := c.resolveAlias(id)
		if err != nil {
			return nil, err
		}
		if service, found := c.synthetic[target]; found {
			return service, nil
		}
		id = target
		public = true
	}

	def, found := c.definitions[id]
	if !found {
		return nil, myerrors.NewNotFoundErrorf("service %q not found", id)
	}
	if !def.Public && !public {
		return nil, myerrors.NewNotFoundErrorf("service %q is private", id)
	}
	if !c.compiled {
		return nil, myerrors.NewConflictError(fmt.Errorf("container must be compiled before service %q can be retrieved", id))
	}

	return c.service(id, nil)
}

// service returns a shared instance regardless of visibility.
func (c *Container) service(id string, path []string) (any, error) {
	if service, found := c.synthetic[id]; found {
		return service, nil
	}
	if _, found := c.aliases[id]; found {
		target, err := c.resolveAlias(id)
		if err != nil {
			return nil, err
		}
		return c.service(target, path)
	}
	if service, found := c.shared[id]; found {
		return service, nil
	}
	for _, building := range path {
		if building == id {
			return nil, myerrors.NewConflictError(fmt.Errorf("circular reference detected for service %q, path: %s", id, strings.Join(append(path, id), " -> ")))
		}
	}

	def, found := c.definitions[id]
	if !found {
		return nil, myerrors.NewNotFoundErrorf("service %q not found", id)
	}

	service, err := c.construct(def, append(path, id))
	if err != nil {
		return nil, fmt.Errorf("error creating service %q: %w", id, err)
	}
	c.shared[id] = service
	return service, nil
}

// construct builds a fresh instance of def: constructor first, then every call in order.
func (c *Container) construct(def *Definition, path []string) (any, error) {
	spec, found := c.types[def.Type]
	if !found {
		return nil, myerrors.NewNotFoundErrorf("no type %q registered", def.Type)
	}

	args, err := c.arguments(def.Arguments, path)
	if err != nil {
		return nil, err
	}
	obj, err := spec.New(args)
	if err != nil {
		return nil, fmt.Errorf("error constructing %s: %w", def.Type, err)
	}

	for _, call := range def.Calls {
		method, found := spec.Methods[call.Method]
		if !found {
			return nil, myerrors.NewNotFoundErrorf("type %q has no method %q", def.Type, call.Method)
		}
		callArgs, err := c.arguments(call.Arguments, path)
		if err != nil {
			return nil, err
		}
		if err := method(obj, callArgs); err != nil {
			return nil, fmt.Errorf("error calling %s.%s: %w", def.Type, call.Method, err)
		}
	}
	return obj, nil
}

func (c *Container) arguments(in []any, path []string) ([]any, error) {
	out := make([]any, 0, len(in))
	for _, arg := range in {
		value, err := c.argument(arg, path)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

func (c *Container) argument(arg any, path []string) (any, error) {
	switch typed := arg.(type) {
	case Reference:
		return c.service(typed.ID, path)
	case *Definition:
		return c.construct(typed, path)
	case []any:
		return c.arguments(typed, path)
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			value, err := c.argument(item, path)
			if err != nil {
				return nil, err
			}
			out[key] = value
		}
		return out, nil
	default:
		return arg, nil
	}
}

// resolveAlias follows a chain of aliases to the id it finally points at.
func (c *Container) resolveAlias(id string) (string, error) {
	seen := []string{id}
	for {
		alias, found := c.aliases[id]
		if !found {
			return id, nil
		}
		id = alias.Target
		for _, visited := range seen {
			if visited == id {
				return "", myerrors.NewConflictError(fmt.Errorf("circular alias detected: %s", strings.Join(append(seen, id), " -> ")))
			}
		}
		seen = append(seen, id)
	}
}
