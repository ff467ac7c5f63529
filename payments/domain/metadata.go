package domain

import (
	"encoding/json"
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	catalogDomain "github.com/atelieraurum/studio-api/catalog/domain"
	"github.com/atelieraurum/studio-api/payments/consts"
)

var (
	ErrMetadataTooLarge = errors.New("cart does not fit into session metadata")
	ErrUnknownKind      = errors.New("session metadata carries an unknown checkout kind")
	ErrMalformedCart    = errors.New("session metadata carries a malformed cart")
	ErrMissingMetadata  = errors.New("session metadata is missing")
	ErrInvalidContact   = errors.New("session metadata carries invalid contact details")
)

var validate = validator.New()

// metadataLine is the compact wire form of a cart line inside session
// metadata. Only what the finalizer needs survives the round trip.
type metadataLine struct {
	P string `json:"p"`
	Q int64  `json:"q"`
	U int64  `json:"u"`
}

// SessionMetadata is the typed view of a checkout session's metadata map.
// Every field is size bounded: free text is truncated at encode time, the
// serialized cart must fit Stripe's per-value ceiling or encoding fails.
type SessionMetadata struct {
	Kind           CheckoutKind
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	DeliveryMethod string
	ShippingMethod string
	Comments       string
	Cart           []catalogDomain.CartLine
	StudioSession  string
	Seats          int64
	PlanID         string
}

// Truncate shortens a free-text metadata value to the provider's per-value
// ceiling, cutting on a rune boundary so a multi-byte character is never
// split. Structured values are never truncated.
func Truncate(s string) string {
	if len(s) <= consts.MetadataValueMaxLength {
		return s
	}

	cut := consts.MetadataValueMaxLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}

// Encode renders the metadata as the string map Stripe accepts. Empty fields
// are omitted, long comments are truncated, an oversized cart is an error.
func (m *SessionMetadata) Encode() (map[string]string, error) {
	out := map[string]string{
		consts.MetadataKeyKind:      string(m.Kind),
		consts.MetadataKeyFirstName: Truncate(m.FirstName),
		consts.MetadataKeyLastName:  Truncate(m.LastName),
	}

	if m.Email != "" {
		out[consts.MetadataKeyEmail] = Truncate(m.Email)
	}

	if m.Phone != "" {
		out[consts.MetadataKeyPhone] = Truncate(m.Phone)
	}

	if m.DeliveryMethod != "" {
		out[consts.MetadataKeyDeliveryMethod] = m.DeliveryMethod
	}

	if m.ShippingMethod != "" {
		out[consts.MetadataKeyShippingMethod] = m.ShippingMethod
	}

	if m.Comments != "" {
		out[consts.MetadataKeyComments] = Truncate(m.Comments)
	}

	if len(m.Cart) > 0 {
		lines := make([]metadataLine, 0, len(m.Cart))

		for _, line := range m.Cart {
			lines = append(lines, metadataLine{P: line.ProductID, Q: line.Quantity, U: line.UnitPrice})
		}

		encoded, err := json.Marshal(lines)
		if err != nil {
			return nil, err
		}

		if len(encoded) > consts.MetadataValueMaxLength {
			return nil, ErrMetadataTooLarge
		}

		out[consts.MetadataKeyCart] = string(encoded)
	}

	if m.StudioSession != "" {
		out[consts.MetadataKeyStudioSession] = m.StudioSession
		out[consts.MetadataKeySeats] = strconv.FormatInt(m.Seats, 10)
	}

	if m.PlanID != "" {
		out[consts.MetadataKeyPlan] = m.PlanID
	}

	return out, nil
}

// DecodeSessionMetadata parses the metadata map of a provider session back
// into the typed form. Unknown kinds are rejected, not defaulted.
func DecodeSessionMetadata(metadata map[string]string) (*SessionMetadata, error) {
	if len(metadata) == 0 {
		return nil, ErrMissingMetadata
	}

	kind, ok := ParseCheckoutKind(metadata[consts.MetadataKeyKind])
	if !ok {
		return nil, ErrUnknownKind
	}

	m := &SessionMetadata{
		Kind:           kind,
		FirstName:      metadata[consts.MetadataKeyFirstName],
		LastName:       metadata[consts.MetadataKeyLastName],
		Email:          metadata[consts.MetadataKeyEmail],
		Phone:          metadata[consts.MetadataKeyPhone],
		DeliveryMethod: metadata[consts.MetadataKeyDeliveryMethod],
		ShippingMethod: metadata[consts.MetadataKeyShippingMethod],
		Comments:       metadata[consts.MetadataKeyComments],
		StudioSession:  metadata[consts.MetadataKeyStudioSession],
		PlanID:         metadata[consts.MetadataKeyPlan],
	}

	if raw, ok := metadata[consts.MetadataKeyCart]; ok && raw != "" {
		var lines []metadataLine

		if err := json.Unmarshal([]byte(raw), &lines); err != nil {
			return nil, ErrMalformedCart
		}

		m.Cart = make([]catalogDomain.CartLine, 0, len(lines))

		for _, line := range lines {
			m.Cart = append(m.Cart, catalogDomain.CartLine{
				ProductID: line.P,
				Quantity:  line.Q,
				UnitPrice: line.U,
			})
		}
	}

	if raw, ok := metadata[consts.MetadataKeySeats]; ok && raw != "" {
		seats, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, ErrMalformedCart
		}

		m.Seats = seats
	}

	// Metadata is editable in the provider dashboard, so the contact fields
	// are not trusted even on sessions we created ourselves.
	if m.Email != "" {
		if err := validate.Var(m.Email, "email"); err != nil {
			return nil, ErrInvalidContact
		}
	}

	return m, nil
}
