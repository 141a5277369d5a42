package mycontainer

// TypeSpec tells the container how to build one service type.
//
// New receives the resolved constructor arguments. Every method named in a
// Definition's calls must be present in Methods; it receives the object returned by
// New and the resolved call arguments.
type TypeSpec struct {
	New     func(args []any) (any, error)
	Methods map[string]func(target any, args []any) error
}

// ContainerBuilder is what a bundle may do to the container while it is loaded.
//
//go:generate mockgen -source=api.go -package mycontainer -destination container_builder_mock.go ContainerBuilder
type ContainerBuilder interface {
	LoadYAML(name string, data []byte) error
	SetParameter(name string, value any)
	SetDefinition(id string, def *Definition)
}

type TypeRegistrar interface {
	RegisterType(name string, spec TypeSpec)
}

// Alias makes a definition reachable under a second id.
type Alias struct {
	Target string
	Public bool
}
