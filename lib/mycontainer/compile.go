package mycontainer

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/MarcGrol/mobilpaybundle/lib/myerrors"
)

var (
	placeholderPattern     = regexp.MustCompile(`%%|%([^%\s]+)%`)
	fullPlaceholderPattern = regexp.MustCompile(`^%([^%\s]+)%$`)
	envPattern             = regexp.MustCompile(`^env\(([A-Za-z_][A-Za-z0-9_]*)\)$`)
)

// LookupEnvFunc has the signature of os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// Compile resolves all parameter placeholders, verifies that every reference and alias
// points to a known service and freezes the container. A nil lookupEnv uses os.LookupEnv.
func (c *Container) Compile(lookupEnv LookupEnvFunc) error {
	c.Lock()
	defer c.Unlock()

	if c.compiled {
		return myerrors.NewConflictError(fmt.Errorf("container is already compiled"))
	}
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	r := &resolver{
		raw:       c.parameters,
		resolved:  map[string]any{},
		resolving: map[string]bool{},
		lookupEnv: lookupEnv,
	}

	parameters := make(map[string]any, len(c.parameters))
	for _, name := range sortedIDs(c.parameters) {
		value, err := r.parameter(name)
		if err != nil {
			return err
		}
		parameters[name] = value
	}

	definitions := make(map[string]*Definition, len(c.definitions))
	for _, id := range sortedIDs(c.definitions) {
		def, err := r.definition(c.definitions[id])
		if err != nil {
			return fmt.Errorf("error resolving service %q: %w", id, err)
		}
		definitions[id] = def
	}

	for _, alias := range sortedIDs(c.aliases) {
		if !c.knows(c.aliases[alias].Target, definitions) {
			return myerrors.NewNotFoundErrorf("alias %q points to unknown service %q", alias, c.aliases[alias].Target)
		}
		if _, err := c.resolveAlias(alias); err != nil {
			return err
		}
	}
	for _, id := range sortedIDs(definitions) {
		if err := c.checkReferences(definitions[id], definitions); err != nil {
			return fmt.Errorf("error checking service %q: %w", id, err)
		}
	}

	c.parameters = parameters
	c.definitions = definitions
	c.compiled = true

	return nil
}

func (c *Container) knows(id string, definitions map[string]*Definition) bool {
	if _, found := definitions[id]; found {
		return true
	}
	if _, found := c.synthetic[id]; found {
		return true
	}
	_, found := c.aliases[id]
	return found
}

func (c *Container) checkReferences(def *Definition, definitions map[string]*Definition) error {
	if _, found := c.types[def.Type]; !found {
		return myerrors.NewNotFoundErrorf("no type %q registered", def.Type)
	}
	check := func(args []any) error {
		for _, arg := range args {
			if err := c.checkArgument(arg, definitions); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(def.Arguments); err != nil {
		return err
	}
	for _, call := range def.Calls {
		if _, found := c.types[def.Type].Methods[call.Method]; !found {
			return myerrors.NewNotFoundErrorf("type %q has no method %q", def.Type, call.Method)
		}
		if err := check(call.Arguments); err != nil {
			return err
		}
	}
	return nil
}

func (c *Container) checkArgument(arg any, definitions map[string]*Definition) error {
	switch typed := arg.(type) {
	case Reference:
		if !c.knows(typed.ID, definitions) {
			return myerrors.NewNotFoundErrorf("reference to unknown service %q", typed.ID)
		}
	case *Definition:
		return c.checkReferences(typed, definitions)
	case []any:
		for _, item := range typed {
			if err := c.checkArgument(item, definitions); err != nil {
				return err
			}
		}
	case map[string]any:
		for _, item := range typed {
			if err := c.checkArgument(item, definitions); err != nil {
				return err
			}
		}
	}
	return nil
}

type resolver struct {
	raw       map[string]any
	resolved  map[string]any
	resolving map[string]bool
	lookupEnv LookupEnvFunc
}

func (r *resolver) parameter(name string) (any, error) {
	if value, found := r.resolved[name]; found {
		return value, nil
	}
	raw, found := r.raw[name]
	if !found {
		return nil, myerrors.NewNotFoundErrorf("unknown parameter %q", name)
	}
	if r.resolving[name] {
		return nil, myerrors.NewConflictError(fmt.Errorf("circular reference detected for parameter %q", name))
	}

	r.resolving[name] = true
	value, err := r.resolveValue(raw)
	delete(r.resolving, name)
	if err != nil {
		return nil, err
	}

	r.resolved[name] = value
	return value, nil
}

// placeholder resolves the name found between two percent signs.
func (r *resolver) placeholder(name string) (any, error) {
	if match := envPattern.FindStringSubmatch(name); match != nil {
		value, found := r.lookupEnv(match[1])
		if !found {
			return nil, myerrors.NewNotFoundErrorf("environment variable %q not found", match[1])
		}
		return value, nil
	}
	return r.parameter(name)
}

func (r *resolver) resolveValue(in any) (any, error) {
	switch typed := in.(type) {
	case string:
		return r.resolveString(typed)
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			value, err := r.resolveValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			value, err := r.resolveValue(item)
			if err != nil {
				return nil, err
			}
			out[key] = value
		}
		return out, nil
	case *Definition:
		return r.definition(typed)
	default:
		return in, nil
	}
}

// resolveString resolves placeholders. A string that is exactly one placeholder takes the
// parameter's value as is; embedded placeholders must resolve to scalars.
func (r *resolver) resolveString(s string) (any, error) {
	if match := fullPlaceholderPattern.FindStringSubmatch(s); match != nil {
		return r.placeholder(match[1])
	}

	var firstErr error
	out := placeholderPattern.ReplaceAllStringFunc(s, func(token string) string {
		if token == "%%" {
			return "%"
		}
		if firstErr != nil {
			return token
		}
		name := strings.Trim(token, "%")
		value, err := r.placeholder(name)
		if err != nil {
			firstErr = err
			return token
		}
		switch value.(type) {
		case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			return fmt.Sprint(value)
		case nil:
			return ""
		default:
			firstErr = myerrors.NewInvalidInputErrorf("parameter %q of type %T cannot be embedded in string %q", name, value, s)
			return token
		}
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

func (r *resolver) definition(def *Definition) (*Definition, error) {
	out := &Definition{Type: def.Type, Public: def.Public}

	args, err := r.args(def.Arguments)
	if err != nil {
		return nil, err
	}
	out.Arguments = args

	for _, call := range def.Calls {
		callArgs, err := r.args(call.Arguments)
		if err != nil {
			return nil, fmt.Errorf("error resolving call %s: %w", call.Method, err)
		}
		out.Calls = append(out.Calls, MethodCall{Method: call.Method, Arguments: callArgs})
	}
	return out, nil
}

func (r *resolver) args(in []any) ([]any, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]any, 0, len(in))
	for _, arg := range in {
		value, err := r.resolveValue(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}
