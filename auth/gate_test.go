package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateAuthorize(t *testing.T) {
	gate := NewGate("hunter2")

	assert.True(t, gate.Authorize("hunter2"))
	assert.False(t, gate.Authorize(""))
	assert.False(t, gate.Authorize("hunter"))
	assert.False(t, gate.Authorize("hunter2 "))
	assert.False(t, gate.Authorize("HUNTER2"))
}
