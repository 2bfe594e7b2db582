package notification

// Delivery methods a member can ask for.
const (
	MethodDisplay = "display"
	MethodSMS     = "sms"
	MethodEmail   = "email"
)

// DeliveryNotifier composes the spoken confirmation for a booking link
// delivery. It performs no real delivery: the message is what the agent says
// to the member, and the effective method tells the UI where the link ended
// up. Contact details are masked so full PII never reaches logs or
// transcripts.
type DeliveryNotifier interface {
	// Compose returns the effective delivery method and the confirmation
	// message. When the contact field for the requested method is missing it
	// falls back to on-screen display with an explanatory message.
	Compose(method, memberPhone, memberEmail string) (effectiveMethod, message string)
}
