package mycontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrace(t *testing.T) {
	t.Run("No trace", func(t *testing.T) {
		assert.Equal(t, "", Trace(context.TODO()))
	})

	t.Run("Boot context without project", func(t *testing.T) {
		c := NewBootContext(context.TODO(), "", "abc")
		assert.Equal(t, "abc", Trace(c))
	})

	t.Run("Boot context with project", func(t *testing.T) {
		c := NewBootContext(context.TODO(), "myproject", "abc")
		assert.Equal(t, "projects/myproject/traces/abc", Trace(c))
	})
}
