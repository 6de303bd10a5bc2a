package service

import (
	"fmt"

	"github.com/companieshouse/chs.go/log"

	"github.com/adilrabid/ppcp-checkout-api/models"
)

// Event names delivered by the Publisher. Every recorded transaction fires its
// flow-specific event first, then the generic one, so a listener can subscribe
// to one checkout flow or to all payments.
const (
	EventPaymentProcessed      = "payment_ipn_processed"
	EventCheckoutProcessed     = "paypal_checkout_ipn_processed"
	EventBuyNowProcessed       = "paypal_ppcp_buy_now_ipn_processed"
	EventSubscriptionProcessed = "paypal_ppcp_subscription_checkout_ipn_processed"
)

// TransactionEvent is emitted after a payment has been fully recorded. The
// record carried is the persisted transaction, never a partial one.
type TransactionEvent struct {
	Record *models.TransactionRecord
	Items  []models.CartItem
}

// TransactionListener receives transaction events. A listener error is logged
// and does not stop delivery to later listeners.
type TransactionListener func(event TransactionEvent) error

// Publisher fans a transaction event out to the listeners registered under
// each event name, in registration order.
type Publisher struct {
	listeners map[string][]TransactionListener
}

// Register appends a listener to the delivery list for an event name.
func (p *Publisher) Register(name string, listener TransactionListener) {
	if p.listeners == nil {
		p.listeners = make(map[string][]TransactionListener)
	}
	p.listeners[name] = append(p.listeners[name], listener)
}

// Publish delivers the event under its flow-specific name and then under the
// generic payment name. Delivery happens after the transaction has been
// persisted, so listener failures must not fail the payment.
func (p *Publisher) Publish(event TransactionEvent) {
	p.deliver(EventNameForGateway(event.Record.Gateway), event)
	p.deliver(EventPaymentProcessed, event)
}

func (p *Publisher) deliver(name string, event TransactionEvent) {
	for _, listener := range p.listeners[name] {
		if err := listener(event); err != nil {
			log.Error(fmt.Errorf("error delivering %s event for txn [%s]: [%v]", name, event.Record.TxnID, err))
		}
	}
}

// EventNameForGateway maps a record's gateway marker onto the flow-specific
// event name fired for it.
func EventNameForGateway(gateway string) string {
	switch gateway {
	case BuyNowGateway:
		return EventBuyNowProcessed
	case SubscriptionGateway:
		return EventSubscriptionProcessed
	default:
		return EventCheckoutProcessed
	}
}
