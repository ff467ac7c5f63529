package domain

// EventKind is the closed set of provider webhook events the studio handles.
// Anything else falls through to an explicit unhandled branch.
type EventKind string

const (
	EventCheckoutSessionCompleted EventKind = "checkout.session.completed"
	EventSubscriptionCreated      EventKind = "customer.subscription.created"
	EventSubscriptionUpdated      EventKind = "customer.subscription.updated"
	EventSubscriptionDeleted      EventKind = "customer.subscription.deleted"
	EventInvoicePaid              EventKind = "invoice.paid"
	EventInvoicePaymentFailed     EventKind = "invoice.payment_failed"
)

// ParseEventKind maps a provider event type onto a known kind.
func ParseEventKind(s string) (EventKind, bool) {
	switch EventKind(s) {
	case EventCheckoutSessionCompleted,
		EventSubscriptionCreated,
		EventSubscriptionUpdated,
		EventSubscriptionDeleted,
		EventInvoicePaid,
		EventInvoicePaymentFailed:
		return EventKind(s), true
	default:
		return "", false
	}
}
