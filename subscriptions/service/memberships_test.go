package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v74"

	customersMock "github.com/atelieraurum/studio-api/customers/dal/mocks"
	customersDomain "github.com/atelieraurum/studio-api/customers/domain"
	"github.com/atelieraurum/studio-api/logger"
	mailerMock "github.com/atelieraurum/studio-api/mailer/mocks"
	subscriptionsMock "github.com/atelieraurum/studio-api/subscriptions/dal/mocks"
	"github.com/atelieraurum/studio-api/subscriptions/domain"
	serviceMock "github.com/atelieraurum/studio-api/subscriptions/service/mocks"
)

type fields struct {
	subscriptionsDAL *subscriptionsMock.Subscriptions
	customersDAL     *customersMock.Customers
	canceler         *serviceMock.SubscriptionCanceler
	notifications    *mailerMock.NotificationSender
}

func newService(f *fields) *MembershipService {
	return NewMembershipServiceWithDeps(
		logger.FromContext,
		f.subscriptionsDAL,
		f.customersDAL,
		f.canceler,
		f.notifications,
	)
}

func activeSubscription() *domain.Subscription {
	return &domain.Subscription{
		ID:                   "doc_1",
		StripeSubscriptionID: "sub_1",
		CustomerID:           "cust_1",
		PlanID:               "price_lab_monthly",
		Status:               domain.StatusActive,
		CurrentPeriodEnd:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		ManagementToken:      "tok-1",
	}
}

func TestMembershipService_CancelByToken(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		on      func(f *fields)
		wantErr error
	}{
		{
			name: "cancels at period end and confirms by email",
			on: func(f *fields) {
				sub := activeSubscription()
				f.subscriptionsDAL.On("GetByManagementToken", ctx, "tok-1").Return(sub, nil)
				f.canceler.On("CancelAtPeriodEnd", "sub_1").Return(&stripe.Subscription{ID: "sub_1"}, nil)
				f.subscriptionsDAL.On("UpdatePeriod", ctx, "sub_1", mock.MatchedBy(func(s *domain.Subscription) bool {
					return s.CancelAtPeriodEnd
				})).Return(nil)
				f.customersDAL.On("GetCustomer", ctx, "cust_1").
					Return(&customersDomain.Customer{ID: "cust_1", FirstName: "Jane", Email: "jane@example.com"}, nil)
				f.notifications.On("SendNotification", mock.Anything, "jane@example.com", mock.Anything).Return(nil)
			},
		},
		{
			name: "already canceled",
			on: func(f *fields) {
				sub := activeSubscription()
				sub.Status = domain.StatusCanceled
				f.subscriptionsDAL.On("GetByManagementToken", ctx, "tok-1").Return(sub, nil)
			},
			wantErr: ErrAlreadyCanceled,
		},
		{
			name: "cancellation already scheduled",
			on: func(f *fields) {
				sub := activeSubscription()
				sub.CancelAtPeriodEnd = true
				f.subscriptionsDAL.On("GetByManagementToken", ctx, "tok-1").Return(sub, nil)
			},
			wantErr: ErrAlreadyCanceled,
		},
		{
			name: "provider failure leaves the membership untouched",
			on: func(f *fields) {
				f.subscriptionsDAL.On("GetByManagementToken", ctx, "tok-1").Return(activeSubscription(), nil)
				f.canceler.On("CancelAtPeriodEnd", "sub_1").
					Return(nil, errors.New("stripe unavailable"))
			},
			wantErr: errors.New("stripe unavailable"),
		},
		{
			name: "local write failure is tolerated",
			on: func(f *fields) {
				f.subscriptionsDAL.On("GetByManagementToken", ctx, "tok-1").Return(activeSubscription(), nil)
				f.canceler.On("CancelAtPeriodEnd", "sub_1").Return(&stripe.Subscription{ID: "sub_1"}, nil)
				f.subscriptionsDAL.On("UpdatePeriod", ctx, "sub_1", mock.Anything).
					Return(errors.New("firestore unavailable"))
				f.customersDAL.On("GetCustomer", ctx, "cust_1").
					Return(nil, errors.New("firestore unavailable"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fields{
				subscriptionsDAL: subscriptionsMock.NewSubscriptions(t),
				customersDAL:     customersMock.NewCustomers(t),
				canceler:         serviceMock.NewSubscriptionCanceler(t),
				notifications:    mailerMock.NewNotificationSender(t),
			}

			if tt.on != nil {
				tt.on(f)
			}

			got, err := newService(f).CancelByToken(ctx, "tok-1")

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.True(t, got.CancelAtPeriodEnd)
		})
	}
}

func TestMembershipService_GetByToken(t *testing.T) {
	ctx := context.Background()

	f := &fields{
		subscriptionsDAL: subscriptionsMock.NewSubscriptions(t),
		customersDAL:     customersMock.NewCustomers(t),
		canceler:         serviceMock.NewSubscriptionCanceler(t),
		notifications:    mailerMock.NewNotificationSender(t),
	}

	want := activeSubscription()
	f.subscriptionsDAL.On("GetByManagementToken", ctx, "tok-1").Return(want, nil)

	got, err := newService(f).GetByToken(ctx, "tok-1")

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
