package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "theatre:v1:form:abc", KeyFormSession("abc"))
	assert.Equal(t, "theatre:v1:form:abc:lock", KeyFormLock("abc"))
	assert.Equal(t, "theatre:v1:rl:forms:10.0.0.1", KeyRateLimit("forms", "10.0.0.1"))
}
