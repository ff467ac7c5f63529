package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v74"

	customersDAL "github.com/atelieraurum/studio-api/customers/dal"
	customersDomain "github.com/atelieraurum/studio-api/customers/domain"
	"github.com/atelieraurum/studio-api/payments/domain"
	subscriptionsDAL "github.com/atelieraurum/studio-api/subscriptions/dal"
	subscriptionsDomain "github.com/atelieraurum/studio-api/subscriptions/domain"
)

func membershipRequest(email, phone string) *domain.MembershipCheckoutRequest {
	return &domain.MembershipCheckoutRequest{
		PlanID: "price_lab_monthly",
		CustomerInfo: domain.CustomerInfo{
			FirstName: "Jane",
			LastName:  "Smith",
			Email:     email,
			Phone:     phone,
		},
	}
}

func TestPaymentService_CreateMembershipCheckout_RejectsActiveByEmail(t *testing.T) {
	ctx := context.Background()
	s, f := newService(t)

	f.customersDAL.On("GetCustomerByEmail", ctx, "jane@example.com").
		Return(&customersDomain.Customer{ID: "cust_1"}, nil)
	f.subsDAL.On("GetEntitledByCustomerAndPlan", ctx, "cust_1", "price_lab_monthly").
		Return(&subscriptionsDomain.Subscription{ID: "sub_1"}, nil)

	_, err := s.CreateMembershipCheckout(ctx, membershipRequest("jane@example.com", ""))

	assert.ErrorIs(t, err, ErrActiveMembershipExists)
	f.stripeClient.AssertNotCalled(t, "NewCheckoutSession", mock.Anything)
}

func TestPaymentService_CreateMembershipCheckout_RejectsActiveByPhone(t *testing.T) {
	ctx := context.Background()
	s, f := newService(t)

	// no email on the request, so resolution falls through to the phone lookup
	f.customersDAL.On("GetCustomerByPhone", ctx, "+15550100").
		Return(&customersDomain.Customer{ID: "cust_2"}, nil)
	f.subsDAL.On("GetEntitledByCustomerAndPlan", ctx, "cust_2", "price_lab_monthly").
		Return(&subscriptionsDomain.Subscription{ID: "sub_2"}, nil)

	_, err := s.CreateMembershipCheckout(ctx, membershipRequest("", "+15550100"))

	assert.ErrorIs(t, err, ErrActiveMembershipExists)
	f.stripeClient.AssertNotCalled(t, "NewCheckoutSession", mock.Anything)
}

func TestPaymentService_CreateMembershipCheckout_PhoneFallbackAfterUnknownEmail(t *testing.T) {
	ctx := context.Background()
	s, f := newService(t)

	f.customersDAL.On("GetCustomerByEmail", ctx, "jane@example.com").
		Return(nil, customersDAL.ErrCustomerNotFound)
	f.customersDAL.On("GetCustomerByPhone", ctx, "+15550100").
		Return(&customersDomain.Customer{ID: "cust_3"}, nil)
	f.subsDAL.On("GetEntitledByCustomerAndPlan", ctx, "cust_3", "price_lab_monthly").
		Return(&subscriptionsDomain.Subscription{ID: "sub_3"}, nil)

	_, err := s.CreateMembershipCheckout(ctx, membershipRequest("jane@example.com", "+15550100"))

	assert.ErrorIs(t, err, ErrActiveMembershipExists)
	f.stripeClient.AssertNotCalled(t, "NewCheckoutSession", mock.Anything)
}

func TestPaymentService_CreateMembershipCheckout_FirstTimeCustomer(t *testing.T) {
	ctx := context.Background()
	s, f := newService(t)

	f.customersDAL.On("GetCustomerByEmail", ctx, "jane@example.com").
		Return(nil, customersDAL.ErrCustomerNotFound)
	f.stripeClient.On("NewCheckoutSession", mock.AnythingOfType("*stripe.CheckoutSessionParams")).
		Return(&stripe.CheckoutSession{ID: "cs_new", URL: "https://pay.example.com/cs_new"}, nil)

	resp, err := s.CreateMembershipCheckout(ctx, membershipRequest("jane@example.com", ""))

	assert.NoError(t, err)
	assert.Equal(t, "cs_new", resp.ID)
}

func TestPaymentService_CreateMembershipCheckout_KnownCustomerNoMembership(t *testing.T) {
	ctx := context.Background()
	s, f := newService(t)

	f.customersDAL.On("GetCustomerByPhone", ctx, "+15550100").
		Return(&customersDomain.Customer{ID: "cust_4"}, nil)
	f.subsDAL.On("GetEntitledByCustomerAndPlan", ctx, "cust_4", "price_lab_monthly").
		Return(nil, subscriptionsDAL.ErrNoEntitledSubscription)
	f.stripeClient.On("NewCheckoutSession", mock.AnythingOfType("*stripe.CheckoutSessionParams")).
		Return(&stripe.CheckoutSession{ID: "cs_ok", URL: "https://pay.example.com/cs_ok"}, nil)

	resp, err := s.CreateMembershipCheckout(ctx, membershipRequest("", "+15550100"))

	assert.NoError(t, err)
	assert.Equal(t, "cs_ok", resp.ID)
}
