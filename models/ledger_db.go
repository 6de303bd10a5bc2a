package models

import "time"

// CustomerSaleDB is one row of the customer/sale ledger. One row is written
// per cart line item; the ledger is insert-only from this service.
type CustomerSaleDB struct {
	FirstName          string `bson:"first_name"`
	LastName           string `bson:"last_name"`
	EmailAddress       string `bson:"email_address"`
	PurchasedProductID string `bson:"purchased_product_id"`
	ProductName        string `bson:"product_name"`
	PurchaseQty        int    `bson:"purchase_qty"`
	SaleAmount         string `bson:"sale_amount"`
	TxnID              string `bson:"txn_id"`
	SubscrID           string `bson:"subscr_id,omitempty"`
	PaypalOrderID      string `bson:"paypal_order_id,omitempty"`
	Date               string `bson:"date"`
	Address            string `bson:"address,omitempty"`
	AddressStreet      string `bson:"address_street,omitempty"`
	AddressCity        string `bson:"address_city,omitempty"`
	AddressState       string `bson:"address_state,omitempty"`
	AddressZip         string `bson:"address_zip,omitempty"`
	AddressCountry     string `bson:"address_country,omitempty"`
	Phone              string `bson:"phone,omitempty"`
	IPAddress          string `bson:"ipaddress,omitempty"`
	Status             string `bson:"status"`
	IsLive             bool   `bson:"is_live"`
}

// SaleStatDB is one row of the sales/stats ledger.
type SaleStatDB struct {
	CustEmail string `bson:"cust_email"`
	Date      string `bson:"date"`
	Time      string `bson:"time"`
	ItemID    string `bson:"item_id"`
	SalePrice string `bson:"sale_price"`
}

// CheckoutSnapshotDB correlates the two stateless AJAX calls of a checkout.
// It is written at order (or subscription) creation keyed by the PayPal id,
// read exactly once at capture/approval time, and only ever cleaned up by TTL
// expiry.
type CheckoutSnapshotDB struct {
	ID        string     `bson:"_id"`
	Items     []CartItem `bson:"items,omitempty"`
	Custom    string     `bson:"custom,omitempty"`
	CartID    string     `bson:"cart_id,omitempty"`
	ProductID string     `bson:"product_id,omitempty"`
	ItemName  string     `bson:"item_name,omitempty"`
	Amount    string     `bson:"amount,omitempty"`
	Currency  string     `bson:"currency,omitempty"`
	ExpiresAt time.Time  `bson:"expires_at"`
}
