package mycontainer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/MarcGrol/mobilpaybundle/lib/myerrors"
)

type yamlFile struct {
	Parameters map[string]any          `yaml:"parameters"`
	Services   map[string]*yamlService `yaml:"services"`
}

type yamlService struct {
	Type      string  `yaml:"type"`
	Alias     string  `yaml:"alias"`
	Arguments []any   `yaml:"arguments"`
	Calls     [][]any `yaml:"calls"`
	Public    *bool   `yaml:"public"`
}

// LoadYAML adds the parameters, services and aliases declared in a YAML document.
// Strings in arguments follow the "@" reference convention of InflateString.
// Services and aliases are private unless declared public.
func (c *Container) LoadYAML(name string, data []byte) error {
	file := yamlFile{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	err := decoder.Decode(&file)
	if err != nil && !errors.Is(err, io.EOF) {
		return myerrors.NewInvalidInputError(fmt.Errorf("error parsing %s: %s", name, err))
	}

	definitions := map[string]*Definition{}
	aliases := map[string]Alias{}
	for _, id := range sortedIDs(file.Services) {
		svc := file.Services[id]
		if svc == nil {
			return myerrors.NewInvalidInputErrorf("%s: service %q is empty", name, id)
		}
		public := svc.Public != nil && *svc.Public

		if svc.Alias != "" {
			if svc.Type != "" || len(svc.Arguments) > 0 || len(svc.Calls) > 0 {
				return myerrors.NewInvalidInputErrorf("%s: alias %q cannot declare type, arguments or calls", name, id)
			}
			aliases[id] = Alias{Target: svc.Alias, Public: public}
			continue
		}

		def, err := svc.toDefinition(public)
		if err != nil {
			return myerrors.NewInvalidInputErrorf("%s: service %q: %s", name, id, err)
		}
		definitions[id] = def
	}

	for _, key := range sortedIDs(file.Parameters) {
		c.SetParameter(key, file.Parameters[key])
	}
	for _, id := range sortedIDs(definitions) {
		c.SetDefinition(id, definitions[id])
	}
	for _, id := range sortedIDs(aliases) {
		c.SetAlias(id, aliases[id].Target, aliases[id].Public)
	}

	return nil
}

func (s *yamlService) toDefinition(public bool) (*Definition, error) {
	if s.Type == "" {
		return nil, fmt.Errorf("missing type")
	}

	b := NewDefinitionBuilder(s.Type).SetPublic(public)
	for _, arg := range s.Arguments {
		b.AddArgument(inflateArgument(arg))
	}
	for idx, call := range s.Calls {
		if len(call) == 0 || len(call) > 2 {
			return nil, fmt.Errorf("call %d must be [method] or [method, [arguments]]", idx)
		}
		method, ok := call[0].(string)
		if !ok || method == "" {
			return nil, fmt.Errorf("call %d has no method name", idx)
		}
		args := []any{}
		if len(call) == 2 {
			list, ok := call[1].([]any)
			if !ok {
				return nil, fmt.Errorf("arguments of call %s must be a list", method)
			}
			for _, arg := range list {
				args = append(args, inflateArgument(arg))
			}
		}
		b.AddMethodCall(method, args...)
	}
	return b.Build(), nil
}

func inflateArgument(arg any) any {
	switch typed := arg.(type) {
	case string:
		return InflateString(typed)
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, inflateArgument(item))
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = inflateArgument(item)
		}
		return out
	default:
		return arg
	}
}
