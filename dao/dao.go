package dao

import "github.com/adilrabid/ppcp-checkout-api/models"

// DAO is an interface for accessing data from a backend store
type DAO interface {
	// GetProduct fetches a catalog row; returns nil when the product is unknown.
	GetProduct(id string) (*models.ProductDB, error)

	// SavePlanMetadata records the billing plan id created for a standard
	// product together with the environment mode it was created under.
	SavePlanMetadata(productID, planID, planMode string) error

	// ResetPlanMetadata clears a product's recorded plan id and mode ahead of
	// a forced fresh plan creation.
	ResetPlanMetadata(productID string) error

	// CreateCustomerSale inserts one row into the customer/sale ledger.
	CreateCustomerSale(sale *models.CustomerSaleDB) error

	// CreateSaleStat inserts one row into the sales stats ledger.
	CreateSaleStat(stat *models.SaleStatDB) error

	// TransactionProcessed reports whether a sale row already exists for the
	// given transaction identifiers. The matching rule lives here, not in the
	// idempotency guard.
	TransactionProcessed(txnID, payerEmail, orderID string) (bool, error)

	// PutCheckoutSnapshot stores the time-bounded snapshot that correlates an
	// order-create call with its later capture call.
	PutCheckoutSnapshot(snapshot *models.CheckoutSnapshotDB) error

	// GetCheckoutSnapshot fetches a snapshot by PayPal order or subscription
	// id; returns nil when missing or past its expiry.
	GetCheckoutSnapshot(id string) (*models.CheckoutSnapshotDB, error)
}
