package mobilpay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/mobilpaybundle/lib/mycontainer"
	"github.com/MarcGrol/mobilpaybundle/lib/mylog"
)

func expectedPaymentServiceDefinition() *mycontainer.Definition {
	return &mycontainer.Definition{
		Type: PaymentServiceType,
		Arguments: []any{
			&mycontainer.Definition{
				Type:      PaymentConfigurationType,
				Arguments: []any{mycontainer.Reference{ID: "router"}},
				Calls: []mycontainer.MethodCall{
					{Method: "SetPaymentURL", Arguments: []any{"https://sandboxsecure.mobilpay.ro"}},
					{Method: "SetPublicCert", Arguments: []any{"%kernel.root_dir%/../certs/sandbox.public.cer"}},
					{Method: "SetPrivateKey", Arguments: []any{"%kernel.root_dir%/../certs/sandbox.private.key"}},
					{Method: "SetSignature", Arguments: []any{"XXXX-XXXX-XXXX-XXXX-XXXX"}},
					{Method: "SetConfirmURL", Arguments: []any{"https://shop.example.com/mobilpay/confirm"}},
					{Method: "SetReturnURL", Arguments: []any{"https://shop.example.com/mobilpay/return"}},
				},
				Public: false,
			},
			mycontainer.Reference{ID: "router"},
			mycontainer.Reference{ID: "logger"},
		},
		Public: true,
	}
}

func TestExtensionLoad(t *testing.T) {
	ctx := context.TODO()

	setup := func(ctrl *gomock.Controller) (*Extension, *mycontainer.MockContainerBuilder, *bytes.Buffer) {
		out := &bytes.Buffer{}
		container := mycontainer.NewMockContainerBuilder(ctrl)
		return &Extension{logger: mylog.NewWriterLogger("mobilpay", out)}, container, out
	}

	t.Run("Parameters and services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sut, container, out := setup(ctrl)

		// Given
		gomock.InOrder(
			container.EXPECT().LoadYAML("services.yaml", servicesYAML).Return(nil),
			container.EXPECT().SetParameter("netopia_mobilpay.payment_url", "https://sandboxsecure.mobilpay.ro"),
			container.EXPECT().SetParameter("netopia_mobilpay.public_cert", "certs/sandbox.public.cer"),
			container.EXPECT().SetParameter("netopia_mobilpay.private_key", "certs/sandbox.private.key"),
			container.EXPECT().SetParameter("netopia_mobilpay.signature", "XXXX-XXXX-XXXX-XXXX-XXXX"),
			container.EXPECT().SetParameter("netopia_mobilpay.confirm_url", "https://shop.example.com/mobilpay/confirm"),
			container.EXPECT().SetParameter("netopia_mobilpay.return_url", "https://shop.example.com/mobilpay/return"),
			container.EXPECT().SetDefinition(PaymentServiceID, expectedPaymentServiceDefinition()),
		)

		// When
		err := sut.Load(ctx, []map[string]any{validConfig()}, container)

		// Then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Registered netopia_mobilpay.payment")
	})

	t.Run("References are published as references", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sut, container, _ := setup(ctrl)

		// Given
		config := validConfig()
		config["signature"] = "@app.signature_provider"
		config["return_url"] = "@@home"

		container.EXPECT().LoadYAML("services.yaml", gomock.Any()).Return(nil)
		container.EXPECT().SetParameter("netopia_mobilpay.signature", mycontainer.Reference{ID: "app.signature_provider"})
		container.EXPECT().SetParameter("netopia_mobilpay.return_url", "@home")
		container.EXPECT().SetParameter(gomock.Any(), gomock.Any()).AnyTimes()
		container.EXPECT().SetDefinition(PaymentServiceID, gomock.Any()).Do(func(id string, def *mycontainer.Definition) {
			configuration := def.Arguments[0].(*mycontainer.Definition)
			assert.Equal(t, []any{mycontainer.Reference{ID: "app.signature_provider"}}, configuration.Calls[3].Arguments)
			assert.Equal(t, []any{"@home"}, configuration.Calls[5].Arguments)
		})

		// When
		err := sut.Load(ctx, []map[string]any{config}, container)

		// Then
		require.NoError(t, err)
	})

	t.Run("Invalid configuration registers nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sut, container, out := setup(ctrl)

		// Given
		container.EXPECT().LoadYAML("services.yaml", gomock.Any()).Return(nil)

		// When
		err := sut.Load(ctx, []map[string]any{without("private_key")}, container)

		// Then
		var schemaErr *SchemaValidationError
		require.True(t, errors.As(err, &schemaErr))
		assert.Equal(t, "netopia_mobilpay.private_key", schemaErr.Path)
		assert.Contains(t, out.String(), "ERROR")
	})

	t.Run("Services file rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sut, container, _ := setup(ctrl)

		// Given
		container.EXPECT().LoadYAML("services.yaml", gomock.Any()).Return(fmt.Errorf("boom"))

		// When
		err := sut.Load(ctx, []map[string]any{validConfig()}, container)

		// Then
		require.Error(t, err)
		assert.Equal(t, "error loading bundle services: boom", err.Error())
	})
}

func TestExtensionBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	types := mycontainer.NewMockTypeRegistrar(ctrl)
	types.EXPECT().RegisterType(PaymentConfigurationType, gomock.Any())
	types.EXPECT().RegisterType(PaymentServiceType, gomock.Any())

	sut := NewExtension()
	assert.Equal(t, "netopia_mobilpay", sut.Alias())
	sut.Build(types)
}
