package service

import (
	"context"
	"errors"
	"time"

	"github.com/stripe/stripe-go/v74"

	bookingsDAL "github.com/atelieraurum/studio-api/bookings/dal"
	bookingsDomain "github.com/atelieraurum/studio-api/bookings/domain"
	customersDomain "github.com/atelieraurum/studio-api/customers/domain"
	"github.com/atelieraurum/studio-api/mailer"
	"github.com/atelieraurum/studio-api/payments/domain"
)

// finalizeBooking materializes a class or lab booking from a paid session.
// Same shape as order finalize: idempotent short-circuit, conditional
// capacity reservation, insert-only-if-absent booking record.
func (s *PaymentService) finalizeBooking(ctx context.Context, session *stripe.CheckoutSession, metadata *domain.SessionMetadata) (*domain.OrderResult, error) {
	l := s.loggerProvider(ctx)

	existing, err := s.bookingsDAL.GetBookingBySessionID(ctx, session.ID)
	if err == nil {
		return bookingResult(existing), nil
	}

	if !errors.Is(err, bookingsDAL.ErrBookingNotFound) {
		return nil, err
	}

	// Reserve the seats first. The transaction rejects the increment when
	// the session is full, so a paid-but-late booking never overbooks.
	if err := s.bookingsDAL.IncrementParticipants(ctx, metadata.StudioSession, metadata.Seats); err != nil {
		return nil, err
	}

	customer, err := s.customersDAL.ResolveOrCreate(ctx, customersDomain.Contact{
		FirstName: metadata.FirstName,
		LastName:  metadata.LastName,
		Email:     metadata.Email,
		Phone:     metadata.Phone,
	})
	if err != nil {
		return nil, err
	}

	kind := bookingsDomain.KindClass
	if metadata.Kind == domain.KindLab {
		kind = bookingsDomain.KindLab
	}

	booking := &bookingsDomain.Booking{
		StripeSessionID:   session.ID,
		StudioSessionID:   metadata.StudioSession,
		Kind:              kind,
		CustomerID:        customer.ID,
		CustomerFirstName: metadata.FirstName,
		CustomerLastName:  metadata.LastName,
		CustomerEmail:     metadata.Email,
		Seats:             metadata.Seats,
		TotalAmount:       session.AmountTotal,
		BookingDate:       time.Now().UTC(),
	}

	created, persisted, err := s.bookingsDAL.CreateBookingIfAbsent(ctx, booking)
	if err != nil {
		return nil, err
	}

	if !created {
		// Lost the race after reserving seats. The winner's booking stands;
		// log the double increment for manual reconciliation.
		l.Warningf("duplicate booking finalize for session %s, participants may be overcounted", session.ID)

		return bookingResult(persisted), nil
	}

	s.sendBookingConfirmation(ctx, persisted)

	return bookingResult(persisted), nil
}

func (s *PaymentService) sendBookingConfirmation(ctx context.Context, booking *bookingsDomain.Booking) {
	l := s.loggerProvider(ctx)

	if booking.CustomerEmail == "" {
		return
	}

	sn := &mailer.SimpleNotification{
		Subject:    "Your studio booking is confirmed",
		TemplateID: mailer.Config.DynamicTemplates.BookingConfirmation,
		Categories: []string{mailer.CategoryBookings},
	}

	params := map[string]interface{}{
		"first_name": booking.CustomerFirstName,
		"booking_id": booking.ID,
		"seats":      booking.Seats,
		"kind":       string(booking.Kind),
	}

	if err := s.notifications.SendNotification(sn, booking.CustomerEmail, params); err != nil {
		l.Errorf("failed to send booking confirmation for %s: %s", booking.ID, err)
		return
	}

	if err := s.bookingsDAL.SetBookingEmailSent(ctx, booking.ID); err != nil {
		l.Errorf("failed to mark booking %s email as sent: %s", booking.ID, err)
	}
}

func bookingResult(booking *bookingsDomain.Booking) *domain.OrderResult {
	return &domain.OrderResult{
		Success:     true,
		BookingID:   booking.ID,
		TotalAmount: booking.TotalAmount,
		Message:     "booking confirmed",
	}
}
