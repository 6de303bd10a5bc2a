package models

// Typed schema for the raw subscription JSON the storefront forwards from the
// PayPal onApprove callback. Every sub-object is optional by design: "field
// absent" is represented by a nil pointer or empty slice instead of scattered
// presence checks, and the normalizer degrades to empty field values rather
// than failing.

// SubscriptionResource is the Subscriptions v1 resource body.
type SubscriptionResource struct {
	ID          string       `json:"id"`
	PlanID      string       `json:"plan_id"`
	Status      string       `json:"status"`
	CreateTime  string       `json:"create_time"`
	Subscriber  *Subscriber  `json:"subscriber,omitempty"`
	BillingInfo *BillingInfo `json:"billing_info,omitempty"`
}

// Subscriber carries the buyer identity; absent for some guest checkouts, in
// which case the normalizer backfills via a subscription-details lookup.
type Subscriber struct {
	Name            *PayerName       `json:"name,omitempty"`
	EmailAddress    string           `json:"email_address,omitempty"`
	PayerID         string           `json:"payer_id,omitempty"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
}

// PayerName is PayPal's split name object.
type PayerName struct {
	GivenName string `json:"given_name,omitempty"`
	Surname   string `json:"surname,omitempty"`
}

// ShippingAddress wraps the portable address object.
type ShippingAddress struct {
	Address *PortableAddress `json:"address,omitempty"`
}

// PortableAddress is PayPal's portable address format; admin_area_2 is the
// city and admin_area_1 the state or region.
type PortableAddress struct {
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	AdminArea1   string `json:"admin_area_1,omitempty"`
	AdminArea2   string `json:"admin_area_2,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	CountryCode  string `json:"country_code,omitempty"`
}

// BillingInfo holds the billing state of a subscription.
type BillingInfo struct {
	LastPayment     *LastPayment     `json:"last_payment,omitempty"`
	CycleExecutions []CycleExecution `json:"cycle_executions,omitempty"`
}

// LastPayment is the most recent charge against the subscription.
type LastPayment struct {
	Amount *MoneyValue `json:"amount,omitempty"`
	Time   string      `json:"time,omitempty"`
}

// MoneyValue is PayPal's currency/value pair.
type MoneyValue struct {
	CurrencyCode string `json:"currency_code,omitempty"`
	Value        string `json:"value,omitempty"`
}

// CycleExecution describes one billing cycle; a first cycle with tenure type
// TRIAL marks a trial payment.
type CycleExecution struct {
	TenureType      string `json:"tenure_type,omitempty"`
	Sequence        int    `json:"sequence,omitempty"`
	CyclesCompleted int    `json:"cycles_completed,omitempty"`
}

// TrialTenure reports whether the first executed cycle is a trial.
func (b *BillingInfo) TrialTenure() bool {
	return b != nil && len(b.CycleExecutions) > 0 && b.CycleExecutions[0].TenureType == "TRIAL"
}
