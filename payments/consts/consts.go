package consts

import (
	"time"
)

// Checkout session settings.
const (
	// SessionExpiry is how long a checkout session stays usable. Enforced by
	// Stripe, not by us; an expired session simply fails re-use.
	SessionExpiry = 30 * time.Minute

	// MetadataValueMaxLength is Stripe's per-value ceiling for session
	// metadata. Free-text fields are truncated to it, structured fields must
	// fit or the checkout is rejected.
	MetadataValueMaxLength = 500
)

// Session metadata keys.
const (
	MetadataKeyKind           = "checkout_kind"
	MetadataKeyCart           = "cart"
	MetadataKeyFirstName      = "first_name"
	MetadataKeyLastName       = "last_name"
	MetadataKeyEmail          = "email"
	MetadataKeyPhone          = "phone"
	MetadataKeyDeliveryMethod = "delivery_method"
	MetadataKeyShippingMethod = "shipping_method"
	MetadataKeyComments       = "comments"
	MetadataKeyStudioSession  = "studio_session_id"
	MetadataKeySeats          = "seats"
	MetadataKeyPlan           = "plan_id"
	MetadataKeyCustomer       = "customer_id"
)

// Checkout redirect paths, appended to the configured domain.
const (
	SuccessPathFormat = "%s/checkout/success?session_id={CHECKOUT_SESSION_ID}"
	CancelPathFormat  = "%s/checkout/canceled"
)
