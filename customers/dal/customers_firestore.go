package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/atelieraurum/studio-api/customers/domain"
	"github.com/atelieraurum/studio-api/framework/connection"
)

const (
	customersCollection = "customers"

	fieldEmail     = "email"
	fieldPhone     = "phone"
	fieldFirstName = "firstName"
	fieldLastName  = "lastName"
	fieldOrders    = "orders"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMissingContact   = errors.New("customer must have an email or a phone number")
)

// CustomersFirestore is used to interact with customers stored on Firestore.
type CustomersFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewCustomersFirestore returns a new CustomersFirestore instance with given project id.
func NewCustomersFirestore(ctx context.Context, projectID string) (*CustomersFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewCustomersFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewCustomersFirestoreWithClient returns a new CustomersFirestore using given client.
func NewCustomersFirestoreWithClient(fun connection.FirestoreFromContextFun) *CustomersFirestore {
	return &CustomersFirestore{
		firestoreClientFun: fun,
	}
}

func (d *CustomersFirestore) GetRef(ctx context.Context, customerID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(customersCollection).Doc(customerID)
}

// GetCustomer returns customer's data.
func (d *CustomersFirestore) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	if customerID == "" {
		return nil, errors.New("invalid customer id")
	}

	docSnap, err := d.GetRef(ctx, customerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrCustomerNotFound
		}

		return nil, err
	}

	var customer domain.Customer

	if err := docSnap.DataTo(&customer); err != nil {
		return nil, err
	}

	customer.ID = docSnap.Ref.ID

	return &customer, nil
}

func (d *CustomersFirestore) getCustomerByField(ctx context.Context, field, value string) (*domain.Customer, error) {
	iter := d.firestoreClientFun(ctx).
		Collection(customersCollection).
		Where(field, "==", value).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, ErrCustomerNotFound
		}

		return nil, err
	}

	var customer domain.Customer

	if err := docSnap.DataTo(&customer); err != nil {
		return nil, err
	}

	customer.ID = docSnap.Ref.ID

	return &customer, nil
}

func (d *CustomersFirestore) GetCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if email == "" {
		return nil, ErrCustomerNotFound
	}

	return d.getCustomerByField(ctx, fieldEmail, email)
}

func (d *CustomersFirestore) GetCustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	if phone == "" {
		return nil, ErrCustomerNotFound
	}

	return d.getCustomerByField(ctx, fieldPhone, phone)
}

// ResolveOrCreate matches an existing customer by email first, then phone, and
// refreshes its name/contact fields; if no match exists a new customer
// document is created.
func (d *CustomersFirestore) ResolveOrCreate(ctx context.Context, contact domain.Contact) (*domain.Customer, error) {
	if !contact.HasIdentifier() {
		return nil, ErrMissingContact
	}

	customer, err := d.GetCustomerByEmail(ctx, contact.Email)
	if errors.Is(err, ErrCustomerNotFound) {
		customer, err = d.GetCustomerByPhone(ctx, contact.Phone)
	}

	if err != nil && !errors.Is(err, ErrCustomerNotFound) {
		return nil, err
	}

	if customer != nil {
		updates := []firestore.Update{
			{Path: fieldFirstName, Value: contact.FirstName},
			{Path: fieldLastName, Value: contact.LastName},
		}
		if contact.Email != "" {
			updates = append(updates, firestore.Update{Path: fieldEmail, Value: contact.Email})
		}

		if contact.Phone != "" {
			updates = append(updates, firestore.Update{Path: fieldPhone, Value: contact.Phone})
		}

		if _, err := d.GetRef(ctx, customer.ID).Update(ctx, updates); err != nil {
			return nil, err
		}

		customer.FirstName = contact.FirstName
		customer.LastName = contact.LastName

		return customer, nil
	}

	newCustomer := domain.Customer{
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Orders:    []string{},
	}

	docRef, _, err := d.firestoreClientFun(ctx).Collection(customersCollection).Add(ctx, newCustomer)
	if err != nil {
		return nil, err
	}

	newCustomer.ID = docRef.ID

	return &newCustomer, nil
}

// AttachOrder adds the order reference to the customer's orders set.
func (d *CustomersFirestore) AttachOrder(ctx context.Context, customerID, orderID string) error {
	_, err := d.GetRef(ctx, customerID).Update(ctx, []firestore.Update{
		{Path: fieldOrders, Value: firestore.ArrayUnion(orderID)},
	})

	return err
}
