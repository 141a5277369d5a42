package mobilpay

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	formcodec "github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"

	"github.com/MarcGrol/mobilpaybundle/lib/myconfig"
	"github.com/MarcGrol/mobilpaybundle/lib/myerrors"
)

const (
	OptionPaymentURL = "payment_url"
	OptionPublicCert = "public_cert"
	OptionPrivateKey = "private_key"
	OptionSignature  = "signature"
	OptionConfirmURL = "confirm_url"
	OptionReturnURL  = "return_url"
)

// options in the order they are published and applied.
var options = []string{
	OptionPaymentURL,
	OptionPublicCert,
	OptionPrivateKey,
	OptionSignature,
	OptionConfirmURL,
	OptionReturnURL,
}

// Config is the schema of the netopia_mobilpay section.
type Config struct {
	PaymentURL string `form:"payment_url" validate:"required"`
	PublicCert string `form:"public_cert" validate:"required"`
	PrivateKey string `form:"private_key" validate:"required"`
	Signature  string `form:"signature" validate:"required"`
	ConfirmURL string `form:"confirm_url" validate:"required"`
	ReturnURL  string `form:"return_url" validate:"required"`
}

func (c Config) ToForm() (url.Values, error) {
	values, err := formcodec.NewEncoder().Encode(c)
	if err != nil {
		return nil, fmt.Errorf("error encoding form: %s", err)
	}

	return values, nil
}

func (c Config) value(option string) string {
	switch option {
	case OptionPaymentURL:
		return c.PaymentURL
	case OptionPublicCert:
		return c.PublicCert
	case OptionPrivateKey:
		return c.PrivateKey
	case OptionSignature:
		return c.Signature
	case OptionConfirmURL:
		return c.ConfirmURL
	case OptionReturnURL:
		return c.ReturnURL
	default:
		return ""
	}
}

// SchemaValidationError names the configuration path that is absent or malformed.
type SchemaValidationError struct {
	Path   string
	Reason string
	Err    error
}

func newSchemaValidationError(option string, reason string, err error) *SchemaValidationError {
	path := Alias
	if option != "" {
		path = Alias + "." + option
	}
	return &SchemaValidationError{Path: path, Reason: reason, Err: err}
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("invalid configuration for path %q: %s", e.Path, e.Reason)
}

func (e *SchemaValidationError) Unwrap() error {
	return e.Err
}

func (e *SchemaValidationError) GetErrorKind() myerrors.Kind {
	return myerrors.KindInvalidInput
}

// NormalizedConfig is the merged and validated configuration. After inflation an
// option holds either a string or a mycontainer.Reference.
type NormalizedConfig struct {
	Config Config
	tree   myconfig.Value
}

func (n NormalizedConfig) Get(option string) any {
	entry, found := n.tree.Get(option)
	if !found {
		return nil
	}
	return entry.Scalar
}

// String returns the option as text. References render as their service id.
func (n NormalizedConfig) String(option string) string {
	value := n.Get(option)
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
	})
	return v
}

// NormalizeConfiguration merges and validates the configuration fragments without
// touching a container.
func NormalizeConfiguration(configs []map[string]any) (Config, error) {
	normalized, err := processConfiguration(configs)
	if err != nil {
		return Config{}, err
	}
	return normalized.Config, nil
}

func processConfiguration(configs []map[string]any) (NormalizedConfig, error) {
	merged := myconfig.NewMapping()
	for _, fragment := range configs {
		v, err := myconfig.FromAny(fragment)
		if err != nil {
			var unsupported myconfig.UnsupportedTypeError
			if errors.As(err, &unsupported) {
				return NormalizedConfig{}, newSchemaValidationError(unsupported.Path, fmt.Sprintf("unsupported value of type %s", unsupported.Type), err)
			}
			return NormalizedConfig{}, newSchemaValidationError("", err.Error(), err)
		}
		merged = myconfig.Merge(merged, v)
	}

	for _, key := range merged.Keys {
		if !isOption(key) {
			return NormalizedConfig{}, newSchemaValidationError(key, fmt.Sprintf("unrecognized option, available options are %s", strings.Join(options, ", ")), nil)
		}
		if entry := merged.Entries[key]; entry.Kind != myconfig.KindScalar {
			return NormalizedConfig{}, newSchemaValidationError(key, fmt.Sprintf("expected scalar, got %s", entry.Kind), nil)
		}
	}

	config := Config{}
	err := formcodec.NewDecoder().Decode(&config, myconfig.Flatten(merged))
	if err != nil {
		var decodeErrs formcodec.DecodeErrors
		if errors.As(err, &decodeErrs) {
			paths := make([]string, 0, len(decodeErrs))
			for path := range decodeErrs {
				paths = append(paths, path)
			}
			sort.Strings(paths)
			return NormalizedConfig{}, newSchemaValidationError(paths[0], decodeErrs[paths[0]].Error(), err)
		}
		return NormalizedConfig{}, newSchemaValidationError("", err.Error(), err)
	}

	config = Config{
		PaymentURL: strings.TrimSpace(config.PaymentURL),
		PublicCert: strings.TrimSpace(config.PublicCert),
		PrivateKey: strings.TrimSpace(config.PrivateKey),
		Signature:  strings.TrimSpace(config.Signature),
		ConfirmURL: strings.TrimSpace(config.ConfirmURL),
		ReturnURL:  strings.TrimSpace(config.ReturnURL),
	}

	err = validate.Struct(config)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			first := validationErrs[0]
			reason := fmt.Sprintf("failed %q validation", first.Tag())
			if first.Tag() == "required" {
				reason = "value is required"
			}
			return NormalizedConfig{}, newSchemaValidationError(first.Field(), reason, err)
		}
		return NormalizedConfig{}, newSchemaValidationError("", err.Error(), err)
	}

	tree := myconfig.NewMapping()
	for _, option := range options {
		tree.Set(option, myconfig.Scalar(config.value(option)))
	}

	return NormalizedConfig{Config: config, tree: tree}, nil
}

func isOption(key string) bool {
	for _, option := range options {
		if option == key {
			return true
		}
	}
	return false
}
