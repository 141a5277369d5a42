package mycontainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInflateString(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		out  any
	}{
		{name: "Plain string", in: "foo", out: "foo"},
		{name: "Reference", in: "@foo", out: Reference{ID: "foo"}},
		{name: "Escaped prefix", in: "@@foo", out: "@foo"},
		{name: "Only one prefix removed", in: "@@@foo", out: "@@foo"},
		{name: "Prefix not at start", in: "foo@bar", out: "foo@bar"},
		{name: "Empty", in: "", out: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, InflateString(tc.in))
		})
	}
}

func TestReferenceString(t *testing.T) {
	assert.Equal(t, "router", NewReference("router").String())
}
