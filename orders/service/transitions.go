package service

import (
	"fmt"

	"github.com/qmuntal/stateless"

	"github.com/atelieraurum/studio-api/orders/domain"
)

// Lifecycle triggers.
const (
	triggerConfirm = "confirm"
	triggerShip    = "ship"
	triggerFulfill = "fulfill"
	triggerDeliver = "deliver"

	invalidTrigger = "invalid"
)

// newLifecycleMachine builds the status machine for a single order. Pickup
// orders skip the shipped state: they go straight from confirmed to
// fulfilled, and fulfilled is their terminal state.
func newLifecycleMachine(order *domain.Order) *stateless.StateMachine {
	machine := stateless.NewStateMachine(string(order.OrderStatus))

	machine.Configure(string(domain.StatusPending)).
		Permit(triggerConfirm, string(domain.StatusConfirmed))

	confirmed := machine.Configure(string(domain.StatusConfirmed))

	if order.IsPickup() {
		confirmed.Permit(triggerFulfill, string(domain.StatusFulfilled))
	} else {
		confirmed.Permit(triggerShip, string(domain.StatusShipped))

		machine.Configure(string(domain.StatusShipped)).
			Permit(triggerFulfill, string(domain.StatusFulfilled))

		machine.Configure(string(domain.StatusFulfilled)).
			Permit(triggerDeliver, string(domain.StatusDelivered))
	}

	return machine
}

func defineTrigger(from, to domain.OrderStatus) string {
	type statusTransition struct {
		From domain.OrderStatus
		To   domain.OrderStatus
	}

	triggerMap := map[statusTransition]string{
		{From: domain.StatusPending, To: domain.StatusConfirmed}:   triggerConfirm,
		{From: domain.StatusConfirmed, To: domain.StatusShipped}:   triggerShip,
		{From: domain.StatusConfirmed, To: domain.StatusFulfilled}: triggerFulfill,
		{From: domain.StatusShipped, To: domain.StatusFulfilled}:   triggerFulfill,
		{From: domain.StatusFulfilled, To: domain.StatusDelivered}: triggerDeliver,
	}

	trigger, ok := triggerMap[statusTransition{From: from, To: to}]
	if !ok {
		return invalidTrigger
	}

	return trigger
}

// transition validates and applies a status change on the in-memory order.
func transition(order *domain.Order, target domain.OrderStatus) error {
	trigger := defineTrigger(order.OrderStatus, target)
	if trigger == invalidTrigger {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.OrderStatus, target)
	}

	machine := newLifecycleMachine(order)

	if err := machine.Fire(trigger); err != nil {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.OrderStatus, target)
	}

	order.OrderStatus = target

	return nil
}
