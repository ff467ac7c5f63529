//go:generate mockery --output=./mocks --all

package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/atelieraurum/studio-api/bookings/domain"
	"github.com/atelieraurum/studio-api/framework/connection"
)

const (
	sessionsCollection = "studioSessions"
	bookingsCollection = "bookings"

	fieldParticipants = "participants"
	fieldEmailSent    = "emailSent"
)

var (
	ErrSessionNotFound  = errors.New("studio session not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrSessionFull      = errors.New("studio session has no remaining capacity")
	ErrInvalidSeats     = errors.New("seat count must be positive")
	ErrMissingSessionID = errors.New("booking is missing a stripe session id")
)

//go:generate mockery --name Bookings --output ./mocks
type Bookings interface {
	GetSession(ctx context.Context, sessionID string) (*domain.StudioSession, error)
	ListSessions(ctx context.Context, kind domain.SessionKind) ([]*domain.StudioSession, error)
	IncrementParticipants(ctx context.Context, sessionID string, seats int64) error
	GetBookingBySessionID(ctx context.Context, stripeSessionID string) (*domain.Booking, error)
	CreateBookingIfAbsent(ctx context.Context, booking *domain.Booking) (bool, *domain.Booking, error)
	SetBookingEmailSent(ctx context.Context, stripeSessionID string) error
}

// BookingsFirestore is used to interact with studio sessions and bookings
// stored on Firestore. Booking documents are keyed by the Stripe checkout
// session id.
type BookingsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewBookingsFirestore returns a new BookingsFirestore instance with given project id.
func NewBookingsFirestore(ctx context.Context, projectID string) (*BookingsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewBookingsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewBookingsFirestoreWithClient returns a new BookingsFirestore using given client.
func NewBookingsFirestoreWithClient(fun connection.FirestoreFromContextFun) *BookingsFirestore {
	return &BookingsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *BookingsFirestore) sessionRef(ctx context.Context, sessionID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(sessionsCollection).Doc(sessionID)
}

func (d *BookingsFirestore) bookingRef(ctx context.Context, stripeSessionID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(bookingsCollection).Doc(stripeSessionID)
}

func (d *BookingsFirestore) GetSession(ctx context.Context, sessionID string) (*domain.StudioSession, error) {
	docSnap, err := d.sessionRef(ctx, sessionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrSessionNotFound
		}

		return nil, err
	}

	var session domain.StudioSession

	if err := docSnap.DataTo(&session); err != nil {
		return nil, err
	}

	session.ID = docSnap.Ref.ID

	return &session, nil
}

// ListSessions returns the sessions of the given kind, soonest first.
func (d *BookingsFirestore) ListSessions(ctx context.Context, kind domain.SessionKind) ([]*domain.StudioSession, error) {
	docSnaps, err := d.firestoreClientFun(ctx).
		Collection(sessionsCollection).
		Where("kind", "==", string(kind)).
		OrderBy("startTime", firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	sessions := make([]*domain.StudioSession, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		var session domain.StudioSession

		if err := docSnap.DataTo(&session); err != nil {
			return nil, err
		}

		session.ID = docSnap.Ref.ID

		sessions = append(sessions, &session)
	}

	return sessions, nil
}

// IncrementParticipants reserves seats on a session. The increment runs in a
// transaction guarded by the remaining capacity, so concurrent bookings can
// never overbook the session.
func (d *BookingsFirestore) IncrementParticipants(ctx context.Context, sessionID string, seats int64) error {
	if seats <= 0 {
		return ErrInvalidSeats
	}

	fs := d.firestoreClientFun(ctx)
	ref := d.sessionRef(ctx, sessionID)

	return fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrSessionNotFound
			}

			return err
		}

		var session domain.StudioSession

		if err := docSnap.DataTo(&session); err != nil {
			return err
		}

		if session.Participants+seats > session.Capacity {
			return ErrSessionFull
		}

		return tx.Update(ref, []firestore.Update{
			{Path: fieldParticipants, Value: session.Participants + seats},
		})
	})
}

func (d *BookingsFirestore) GetBookingBySessionID(ctx context.Context, stripeSessionID string) (*domain.Booking, error) {
	if stripeSessionID == "" {
		return nil, ErrMissingSessionID
	}

	docSnap, err := d.bookingRef(ctx, stripeSessionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrBookingNotFound
		}

		return nil, err
	}

	var booking domain.Booking

	if err := docSnap.DataTo(&booking); err != nil {
		return nil, err
	}

	booking.ID = docSnap.Ref.ID

	return &booking, nil
}

// CreateBookingIfAbsent inserts the booking only if none exists for its
// Stripe session id, same idempotency primitive as order creation.
func (d *BookingsFirestore) CreateBookingIfAbsent(ctx context.Context, booking *domain.Booking) (bool, *domain.Booking, error) {
	if booking.StripeSessionID == "" {
		return false, nil, ErrMissingSessionID
	}

	_, err := d.bookingRef(ctx, booking.StripeSessionID).Create(ctx, booking)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			existing, err := d.GetBookingBySessionID(ctx, booking.StripeSessionID)
			if err != nil {
				return false, nil, err
			}

			return false, existing, nil
		}

		return false, nil, err
	}

	booking.ID = booking.StripeSessionID

	return true, booking, nil
}

// SetBookingEmailSent marks the confirmation email as sent.
func (d *BookingsFirestore) SetBookingEmailSent(ctx context.Context, stripeSessionID string) error {
	_, err := d.bookingRef(ctx, stripeSessionID).Update(ctx, []firestore.Update{
		{Path: fieldEmailSent, Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrBookingNotFound
		}

		return err
	}

	return nil
}
