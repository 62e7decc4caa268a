package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTerminal(t *testing.T) {
	for _, status := range []string{
		"Completed", "completed", "COMPLETED",
		"Cancelled", "cancelled", "CANCELLED",
	} {
		assert.False(t, CanTransition(status), "status %q must be terminal", status)
	}
}

func TestCanTransitionActive(t *testing.T) {
	for _, status := range []string{"Pending", "Preparing", "Verified", "pending"} {
		assert.True(t, CanTransition(status), "status %q must be transitionable", status)
	}
}

func TestCanTransitionUnknownIsPermissive(t *testing.T) {
	// unrecognised values pass through; the order API is the backstop
	assert.True(t, CanTransition("Shipped"))
	assert.True(t, CanTransition(""))
	assert.True(t, CanTransition("complete?"))
}
