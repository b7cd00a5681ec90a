package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_KeepsFirstError(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(false, "port", "must be between 1 and 65535")
	v.Check(false, "port", "second message")
	v.Check(true, "env", "never added")

	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"port": "must be between 1 and 65535"}, v.Errors)
}

func TestValidator_ErrorIsSorted(t *testing.T) {
	v := New()
	v.AddError("b", "two")
	v.AddError("a", "one")

	assert.Equal(t, "a: one; b: two", v.Error())
}

func TestHelpers(t *testing.T) {
	assert.True(t, In("staging", "development", "staging", "production"))
	assert.False(t, In("qa", "development", "staging", "production"))

	assert.True(t, Unique([]string{"a", "b"}))
	assert.False(t, Unique([]string{"a", "a"}))

	assert.True(t, Matches("linqyard.com", HostRX))
	assert.True(t, Matches("localhost", HostRX))
	assert.False(t, Matches("-bad.com", HostRX))
	assert.False(t, Matches("https://linqyard.com", HostRX))

	assert.True(t, Matches("TEST", EnvVarRX))
	assert.False(t, Matches("1TEST", EnvVarRX))
}

func TestIsOrigin(t *testing.T) {
	for _, ok := range []string{"https://linqyard.com", "http://localhost:3000", "https://app.linqyard.com/"} {
		assert.True(t, IsOrigin(ok), ok)
	}
	for _, bad := range []string{"linqyard.com", "ftp://linqyard.com", "https://linqyard.com/app", "https://x.com?q=1", ""} {
		assert.False(t, IsOrigin(bad), bad)
	}
}
