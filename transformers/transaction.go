package transformers

import (
	"time"

	"github.com/adilrabid/ppcp-checkout-api/models"
)

// TransactionTransformer maps a normalized transaction record onto the ledger
// row shapes. One customer row and one stats row are written per line item.
type TransactionTransformer struct{}

// CustomerSale builds the customer ledger row for one line item of the
// transaction.
func (tt TransactionTransformer) CustomerSale(record *models.TransactionRecord, item models.CartItem, now time.Time) *models.CustomerSaleDB {
	return &models.CustomerSaleDB{
		FirstName:          record.FirstName,
		LastName:           record.LastName,
		EmailAddress:       record.PayerEmail,
		PurchasedProductID: item.ItemNumber,
		ProductName:        item.ItemName,
		PurchaseQty:        item.Quantity,
		SaleAmount:         item.McGross,
		TxnID:              record.TxnID,
		SubscrID:           record.SubscrID,
		PaypalOrderID:      record.PaypalOrderID,
		Date:               now.Format("2006-01-02"),
		Address:            record.Address,
		AddressStreet:      record.AddressStreet,
		AddressCity:        record.AddressCity,
		AddressState:       record.AddressState,
		AddressZip:         record.AddressZip,
		AddressCountry:     record.AddressCountry,
		Phone:              record.ContactPhone,
		IPAddress:          record.IPAddress,
		Status:             record.Status,
		IsLive:             record.IsLive,
	}
}

// SaleStat builds the sales stats row for one line item of the transaction.
func (tt TransactionTransformer) SaleStat(record *models.TransactionRecord, item models.CartItem, now time.Time) *models.SaleStatDB {
	return &models.SaleStatDB{
		CustEmail: record.PayerEmail,
		Date:      now.Format("2006-01-02"),
		Time:      now.Format("15:04:05"),
		ItemID:    item.ItemNumber,
		SalePrice: item.McGross,
	}
}
