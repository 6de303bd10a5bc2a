package models

// TransactionRecord is the flat, IPN-style view of a PayPal transaction. It is
// built once by the normalizer from the provider response plus locally cached
// request context, and is never mutated after that; the dispatcher only reads
// it. Field names keep the legacy IPN vocabulary so older store tooling can
// consume the records unchanged.
type TransactionRecord struct {
	Gateway       string `json:"gateway"`
	TxnType       string `json:"txn_type"`
	TxnID         string `json:"txn_id"`
	PaypalOrderID string `json:"paypal_order_id"`
	SubscrID      string `json:"subscr_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	McGross       string `json:"mc_gross"`
	McCurrency    string `json:"mc_currency"`
	Quantity      int    `json:"quantity"`

	PayerEmail string `json:"payer_email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	PayerID    string `json:"payer_id"`
	IPAddress  string `json:"ip_address"`

	AddressStreet  string `json:"address_street"`
	AddressCity    string `json:"address_city"`
	AddressState   string `json:"address_state"`
	AddressZip     string `json:"address_zip"`
	AddressCountry string `json:"address_country"`
	// Address is the assembled multi-line address string, kept because some
	// ledger consumers store the address as a single field.
	Address string `json:"address"`

	Custom     string `json:"custom"`
	CartID     string `json:"cart_id"`
	ItemNumber string `json:"item_number"`
	ItemName   string `json:"item_name"`

	// Subscription specific fields. TxnID holds the PayPal order id for
	// subscription approvals because the first capture settles asynchronously
	// and no capture id exists yet at approval time.
	PlanID             string `json:"plan_id,omitempty"`
	SubscriptionStatus string `json:"subscription_status,omitempty"`
	CreateTime         string `json:"create_time,omitempty"`
	IsTrialTxn         bool   `json:"is_trial_txn,omitempty"`

	IsLive       bool   `json:"is_live"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

// Complete reports whether capture data was present when the record was
// built. A record without a transaction id must not reach the ledgers.
func (t *TransactionRecord) Complete() bool {
	return t.TxnID != ""
}

// CartItem is a single normalized line item handed to the dispatcher, either
// from a cached cart snapshot or from a single-item buy now context. McGross
// is unit price times quantity, string formatted to two decimals.
type CartItem struct {
	ItemNumber string `json:"item_number" bson:"item_number"`
	ItemName   string `json:"item_name"   bson:"item_name"`
	Quantity   int    `json:"quantity"    bson:"quantity"`
	McGross    string `json:"mc_gross"    bson:"mc_gross"`
	McCurrency string `json:"mc_currency" bson:"mc_currency"`
}
