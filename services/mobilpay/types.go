package mobilpay

import (
	"github.com/gorilla/mux"

	"github.com/MarcGrol/mobilpaybundle/lib/mycontainer"
	"github.com/MarcGrol/mobilpaybundle/lib/myerrors"
	"github.com/MarcGrol/mobilpaybundle/lib/mylog"
)

const (
	PaymentConfigurationType = "mobilpay.PaymentConfiguration"
	PaymentServiceType       = "mobilpay.PaymentService"
)

// RegisterTypes makes the bundle's services constructible by the container.
func RegisterTypes(types mycontainer.TypeRegistrar) {
	types.RegisterType(PaymentConfigurationType, mycontainer.TypeSpec{
		New: func(args []any) (any, error) {
			if len(args) != 1 {
				return nil, myerrors.NewInvalidInputErrorf("%s expects 1 argument, got %d", PaymentConfigurationType, len(args))
			}
			router, ok := args[0].(*mux.Router)
			if !ok {
				return nil, myerrors.NewInvalidInputErrorf("%s expects a *mux.Router, got %T", PaymentConfigurationType, args[0])
			}
			return NewPaymentConfiguration(router), nil
		},
		Methods: map[string]func(target any, args []any) error{
			"SetPaymentURL": stringSetter("SetPaymentURL", (*PaymentConfiguration).SetPaymentURL),
			"SetPublicCert": stringSetter("SetPublicCert", (*PaymentConfiguration).SetPublicCert),
			"SetPrivateKey": stringSetter("SetPrivateKey", (*PaymentConfiguration).SetPrivateKey),
			"SetSignature":  stringSetter("SetSignature", (*PaymentConfiguration).SetSignature),
			"SetConfirmURL": stringSetter("SetConfirmURL", (*PaymentConfiguration).SetConfirmURL),
			"SetReturnURL":  stringSetter("SetReturnURL", (*PaymentConfiguration).SetReturnURL),
		},
	})

	types.RegisterType(PaymentServiceType, mycontainer.TypeSpec{
		New: func(args []any) (any, error) {
			if len(args) != 3 {
				return nil, myerrors.NewInvalidInputErrorf("%s expects 3 arguments, got %d", PaymentServiceType, len(args))
			}
			configuration, ok := args[0].(*PaymentConfiguration)
			if !ok {
				return nil, myerrors.NewInvalidInputErrorf("%s expects a *PaymentConfiguration, got %T", PaymentServiceType, args[0])
			}
			router, ok := args[1].(*mux.Router)
			if !ok {
				return nil, myerrors.NewInvalidInputErrorf("%s expects a *mux.Router, got %T", PaymentServiceType, args[1])
			}
			logger, ok := args[2].(mylog.Logger)
			if !ok {
				return nil, myerrors.NewInvalidInputErrorf("%s expects a mylog.Logger, got %T", PaymentServiceType, args[2])
			}
			return NewPaymentService(configuration, router, logger)
		},
	})
}

func stringSetter(method string, set func(*PaymentConfiguration, string)) func(target any, args []any) error {
	return func(target any, args []any) error {
		configuration, ok := target.(*PaymentConfiguration)
		if !ok {
			return myerrors.NewInternalErrorf("%s called on %T", method, target)
		}
		if len(args) != 1 {
			return myerrors.NewInvalidInputErrorf("%s expects 1 argument, got %d", method, len(args))
		}
		value, ok := args[0].(string)
		if !ok {
			return myerrors.NewInvalidInputErrorf("%s expects a string, got %T", method, args[0])
		}
		set(configuration, value)
		return nil
	}
}
