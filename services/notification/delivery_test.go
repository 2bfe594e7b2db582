package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "***4567", MaskPhone("5551234567"))
	assert.Equal(t, "***4567", MaskPhone("+15551234567"))
	assert.Equal(t, "***123", MaskPhone("123"))
	assert.Equal(t, "***", MaskPhone(""))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@example.com", MaskEmail("ana@example.com"))
	assert.Equal(t, "j***@club.travel", MaskEmail("jordan.lee@club.travel"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
	assert.Equal(t, "***", MaskEmail("@example.com"))
}

func TestCompose_SMS(t *testing.T) {
	n := NewDefaultDeliveryNotifier()

	method, message := n.Compose(MethodSMS, "5551234567", "")
	assert.Equal(t, MethodSMS, method)
	assert.Contains(t, message, "***4567")
	assert.NotContains(t, message, "5551234567")

	// Missing phone falls back to on-screen display.
	method, message = n.Compose(MethodSMS, "", "")
	assert.Equal(t, MethodDisplay, method)
	assert.Contains(t, message, "Displaying link instead")
}

func TestCompose_Email(t *testing.T) {
	n := NewDefaultDeliveryNotifier()

	method, message := n.Compose(MethodEmail, "", "ana@example.com")
	assert.Equal(t, MethodEmail, method)
	assert.Contains(t, message, "a***@example.com")

	method, message = n.Compose(MethodEmail, "", "")
	assert.Equal(t, MethodDisplay, method)
	assert.Contains(t, message, "Displaying link instead")
}

func TestCompose_DisplayDefault(t *testing.T) {
	n := NewDefaultDeliveryNotifier()

	method, message := n.Compose(MethodDisplay, "", "")
	assert.Equal(t, MethodDisplay, method)
	assert.Contains(t, message, "valid for 2 hours")

	// Unknown methods degrade to display.
	method, _ = n.Compose("carrier_pigeon", "", "")
	assert.Equal(t, MethodDisplay, method)
}
