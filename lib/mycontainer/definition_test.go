package mycontainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionBuilder(t *testing.T) {
	inner := NewDefinitionBuilder(transportType).AddArgument("smtp.local").Build()

	b := NewDefinitionBuilder(mailerType).
		AddMethodCall("SetSender", "noreply@example.com").
		AddArgument(inner).
		AddArgument(NewReference("logger")).
		SetPublic(true)

	def := b.Build()

	assert.Equal(t, &Definition{
		Type:      mailerType,
		Arguments: []any{&Definition{Type: transportType, Arguments: []any{"smtp.local"}}, Reference{ID: "logger"}},
		Calls:     []MethodCall{{Method: "SetSender", Arguments: []any{"noreply@example.com"}}},
		Public:    true,
	}, def)

	t.Run("Built definition is detached from builder", func(t *testing.T) {
		b.AddMethodCall("AddHeader", "X-Later")
		assert.Len(t, def.Calls, 1)
	})

	t.Run("Clone copies inline definitions", func(t *testing.T) {
		cp := def.Clone()
		cp.Arguments[0].(*Definition).Arguments[0] = "changed"
		assert.Equal(t, "smtp.local", def.Arguments[0].(*Definition).Arguments[0])
	})

	t.Run("Clone of nil", func(t *testing.T) {
		var d *Definition
		require.Nil(t, d.Clone())
	})
}
