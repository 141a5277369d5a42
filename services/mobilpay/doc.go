// Package mobilpay wires the Netopia mobilPay payment gateway into the service container.
//
// The extension validates the netopia_mobilpay configuration section, publishes the
// six options as netopia_mobilpay.* parameters and registers the public
// netopia_mobilpay.payment service, built from a private PaymentConfiguration.
//
// Example configuration:
//
//	netopia_mobilpay:
//	  payment_url: '%netopia_mobilpay.sandbox_payment_url%'
//	  public_cert: certs/sandbox.public.cer
//	  private_key: certs/sandbox.private.key
//	  signature: '%env(NETOPIA_SIGNATURE)%'
//	  confirm_url: https://shop.example/mobilpay/confirm
//	  return_url: https://shop.example/mobilpay/return
//
// A value starting with "@" is a reference to another service; "@@" escapes a literal "@".
package mobilpay
