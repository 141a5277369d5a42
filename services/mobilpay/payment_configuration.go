package mobilpay

import (
	"fmt"
	"path/filepath"

	"github.com/gorilla/mux"
)

// PaymentConfiguration holds the merchant settings used to talk to mobilPay.
type PaymentConfiguration struct {
	router     *mux.Router
	paymentURL string
	publicCert string
	privateKey string
	signature  string
	confirmURL string
	returnURL  string
}

func NewPaymentConfiguration(router *mux.Router) *PaymentConfiguration {
	return &PaymentConfiguration{
		router: router,
	}
}

func (c *PaymentConfiguration) SetPaymentURL(paymentURL string) {
	c.paymentURL = paymentURL
}

func (c *PaymentConfiguration) SetPublicCert(path string) {
	c.publicCert = filepath.Clean(path)
}

func (c *PaymentConfiguration) SetPrivateKey(path string) {
	c.privateKey = filepath.Clean(path)
}

func (c *PaymentConfiguration) SetSignature(signature string) {
	c.signature = signature
}

func (c *PaymentConfiguration) SetConfirmURL(confirmURL string) {
	c.confirmURL = confirmURL
}

func (c *PaymentConfiguration) SetReturnURL(returnURL string) {
	c.returnURL = returnURL
}

func (c *PaymentConfiguration) PaymentURL() string {
	return c.paymentURL
}

func (c *PaymentConfiguration) PublicCert() string {
	return c.publicCert
}

func (c *PaymentConfiguration) PrivateKey() string {
	return c.privateKey
}

func (c *PaymentConfiguration) Signature() string {
	return c.signature
}

// ConfirmURL returns the url mobilPay posts payment notifications to.
func (c *PaymentConfiguration) ConfirmURL() (string, error) {
	return c.resolveURL(c.confirmURL)
}

// ReturnURL returns the url the shopper is sent back to.
func (c *PaymentConfiguration) ReturnURL() (string, error) {
	return c.resolveURL(c.returnURL)
}

// resolveURL treats value as a route name when the router knows it.
func (c *PaymentConfiguration) resolveURL(value string) (string, error) {
	if c.router == nil {
		return value, nil
	}
	route := c.router.Get(value)
	if route == nil {
		return value, nil
	}
	u, err := route.URL()
	if err != nil {
		return "", fmt.Errorf("error building url for route %s: %s", value, err)
	}
	return u.String(), nil
}
