package mobilpay

import (
	"github.com/MarcGrol/mobilpaybundle/lib/mycontainer"
)

const (
	PaymentServiceID = "netopia_mobilpay.payment"
	RouterServiceID  = "router"
	LoggerServiceID  = "logger"

	// rootDirPrefix locates certificate files relative to the application root.
	rootDirPrefix = "%kernel.root_dir%/../"
)

type DefinitionSetter interface {
	SetDefinition(id string, def *mycontainer.Definition)
}

// injectAndConfigureServices registers the public payment service. Its configuration
// is passed inline so it can never be fetched on its own.
func injectAndConfigureServices(defs DefinitionSetter, config NormalizedConfig) {
	paymentConfiguration := mycontainer.NewDefinitionBuilder(PaymentConfigurationType).
		AddMethodCall("SetPaymentURL", config.Get(OptionPaymentURL)).
		AddMethodCall("SetPublicCert", rootDirPrefix+config.String(OptionPublicCert)).
		AddMethodCall("SetPrivateKey", rootDirPrefix+config.String(OptionPrivateKey)).
		AddMethodCall("SetSignature", config.Get(OptionSignature)).
		AddMethodCall("SetConfirmURL", config.Get(OptionConfirmURL)).
		AddMethodCall("SetReturnURL", config.Get(OptionReturnURL)).
		AddArgument(mycontainer.NewReference(RouterServiceID)).
		SetPublic(false).
		Build()

	paymentService := mycontainer.NewDefinitionBuilder(PaymentServiceType).
		AddArgument(paymentConfiguration).
		AddArgument(mycontainer.NewReference(RouterServiceID)).
		AddArgument(mycontainer.NewReference(LoggerServiceID)).
		SetPublic(true).
		Build()

	defs.SetDefinition(PaymentServiceID, paymentService)
}
