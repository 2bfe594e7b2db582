package notification

import (
	"fmt"
	"strings"
)

// DefaultDeliveryNotifier is the production implementation. It is a pure
// formatter with no side effects.
type DefaultDeliveryNotifier struct{}

func NewDefaultDeliveryNotifier() *DefaultDeliveryNotifier {
	return &DefaultDeliveryNotifier{}
}

func (n *DefaultDeliveryNotifier) Compose(method, memberPhone, memberEmail string) (string, string) {
	switch method {
	case MethodSMS:
		if memberPhone == "" {
			return MethodDisplay, "Phone number needed for SMS. Displaying link instead."
		}
		return MethodSMS, fmt.Sprintf("Text message sent to %s. The link is valid for 2 hours.", MaskPhone(memberPhone))
	case MethodEmail:
		if memberEmail == "" {
			return MethodDisplay, "Email needed. Displaying link instead."
		}
		return MethodEmail, fmt.Sprintf("Email sent to %s. The link is valid for 2 hours.", MaskEmail(memberEmail))
	default:
		return MethodDisplay, "Here's your personalized booking link. It's valid for 2 hours."
	}
}

// MaskPhone keeps only the last four digits of a phone number.
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return "***" + phone
	}
	return "***" + phone[len(phone)-4:]
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return "***"
	}
	return fmt.Sprintf("%s***@%s", local[:1], domain)
}
