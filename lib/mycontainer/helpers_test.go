package mycontainer

import "fmt"

type mailer struct {
	transport any
	sender    string
	headers   []string
}

type transport struct {
	host string
}

const (
	mailerType    = "test.Mailer"
	transportType = "test.Transport"
)

func registerTestTypes(types TypeRegistrar) {
	types.RegisterType(transportType, TypeSpec{
		New: func(args []any) (any, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
			}
			host, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("host must be a string, got %T", args[0])
			}
			return &transport{host: host}, nil
		},
	})
	types.RegisterType(mailerType, TypeSpec{
		New: func(args []any) (any, error) {
			m := &mailer{}
			if len(args) > 0 {
				m.transport = args[0]
			}
			return m, nil
		},
		Methods: map[string]func(target any, args []any) error{
			"SetSender": func(target any, args []any) error {
				sender, ok := args[0].(string)
				if !ok {
					return fmt.Errorf("sender must be a string, got %T", args[0])
				}
				target.(*mailer).sender = sender
				return nil
			},
			"AddHeader": func(target any, args []any) error {
				target.(*mailer).headers = append(target.(*mailer).headers, fmt.Sprint(args[0]))
				return nil
			},
		},
	})
}
