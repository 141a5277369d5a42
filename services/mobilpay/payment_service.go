package mobilpay

import (
	"context"
	"fmt"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/mobilpaybundle/lib/myerrors"
	"github.com/MarcGrol/mobilpaybundle/lib/mylog"
)

// PaymentService is the public entry point of the bundle.
type PaymentService struct {
	configuration *PaymentConfiguration
	router        *mux.Router
	logger        mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewPaymentService(configuration *PaymentConfiguration, router *mux.Router, logger mylog.Logger) (*PaymentService, error) {
	if configuration == nil {
		return nil, myerrors.NewInvalidInputErrorf("payment service needs a configuration")
	}
	if logger == nil {
		return nil, myerrors.NewInvalidInputErrorf("payment service needs a logger")
	}

	return &PaymentService{
		configuration: configuration,
		router:        router,
		logger:        logger,
	}, nil
}

func (s *PaymentService) Configuration() *PaymentConfiguration {
	return s.configuration
}

func (s *PaymentService) Router() *mux.Router {
	return s.router
}

// Describe logs and returns a one line summary of the active configuration.
func (s *PaymentService) Describe(c context.Context) (string, error) {
	confirmURL, err := s.configuration.ConfirmURL()
	if err != nil {
		return "", myerrors.NewInvalidInputError(err)
	}
	returnURL, err := s.configuration.ReturnURL()
	if err != nil {
		return "", myerrors.NewInvalidInputError(err)
	}

	summary := fmt.Sprintf("payment url %s, confirm url %s, return url %s, public cert %s", s.configuration.PaymentURL(), confirmURL, returnURL, s.configuration.PublicCert())
	s.logger.Log(c, Alias, mylog.SeverityInfo, "Payment service ready: %s", summary)

	return summary, nil
}
