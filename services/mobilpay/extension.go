package mobilpay

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/MarcGrol/mobilpaybundle/lib/mycontainer"
	"github.com/MarcGrol/mobilpaybundle/lib/mylog"
)

// Alias is the configuration section and parameter namespace of the bundle.
const Alias = "netopia_mobilpay"

//go:embed resources/services.yaml
var servicesYAML []byte

type Extension struct {
	logger mylog.Logger
}

func NewExtension() *Extension {
	return &Extension{
		logger: mylog.New("mobilpay"),
	}
}

func (e *Extension) Alias() string {
	return Alias
}

func (e *Extension) Build(types mycontainer.TypeRegistrar) {
	RegisterTypes(types)
}

// Load runs once per boot, before the container is compiled.
func (e *Extension) Load(c context.Context, configs []map[string]any, container mycontainer.ContainerBuilder) error {
	// Load bundle's services
	err := container.LoadYAML("services.yaml", servicesYAML)
	if err != nil {
		return fmt.Errorf("error loading bundle services: %w", err)
	}

	// Process bundle's configurations
	config, err := processConfiguration(configs)
	if err != nil {
		e.logger.Log(c, Alias, mylog.SeverityError, "Invalid configuration: %s", err)
		return err
	}

	inflateServicesInConfig(&config.tree)
	assignParametersToContainer(container, config)

	// Services definition with configurations
	injectAndConfigureServices(container, config)

	e.logger.Log(c, Alias, mylog.SeverityInfo, "Registered %s", PaymentServiceID)

	return nil
}
