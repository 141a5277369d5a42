package mykernel

import (
	"context"

	"github.com/MarcGrol/mobilpaybundle/lib/mycontainer"
)

// Bundle contributes types, parameters and service definitions to the container.
//
//go:generate mockgen -source=api.go -package mykernel -destination bundle_mock.go Bundle
type Bundle interface {
	Alias() string
	Build(types mycontainer.TypeRegistrar)
	Load(c context.Context, configs []map[string]any, container mycontainer.ContainerBuilder) error
}
