package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"golang.org/x/text/encoding/charmap"

	"github.com/adilrabid/ppcp-checkout-api/dao"
	"github.com/adilrabid/ppcp-checkout-api/models"
	"github.com/adilrabid/ppcp-checkout-api/transformers"
)

// DispatcherService is the single write path for completed transactions: it
// guards against replays, writes the ledger rows, and emits the transaction
// event. Events are only ever published after persistence has happened.
type DispatcherService struct {
	DAO       dao.DAO
	Publisher *Publisher
}

// Process records a completed transaction. A transaction that has already been
// recorded is reported as Duplicate and nothing is written; callers treat that
// as success so storefront retries stay idempotent.
func (svc *DispatcherService) Process(req *http.Request, record *models.TransactionRecord, items []models.CartItem) (ResponseType, error) {

	if !record.Complete() {
		return InvalidData, fmt.Errorf("transaction record for order [%s] has no transaction id", record.PaypalOrderID)
	}

	duplicate, err := svc.DAO.TransactionProcessed(record.TxnID, record.PayerEmail, record.PaypalOrderID)
	if err != nil {
		return Error, fmt.Errorf("error checking for duplicate transaction [%s]: [%v]", record.TxnID, err)
	}
	if duplicate {
		log.InfoR(req, "transaction already processed, skipping", log.Data{"txn_id": record.TxnID})
		return Duplicate, nil
	}

	if len(items) == 0 {
		items = []models.CartItem{{
			ItemNumber: record.ItemNumber,
			ItemName:   record.ItemName,
			Quantity:   record.Quantity,
			McGross:    record.McGross,
			McCurrency: record.McCurrency,
		}}
	}

	transformer := transformers.TransactionTransformer{}
	now := time.Now().UTC()

	for _, item := range items {
		sale := transformer.CustomerSale(record, item, now)
		if err := svc.DAO.CreateCustomerSale(sale); err != nil {
			reencodeSale(sale)
			if err := svc.DAO.CreateCustomerSale(sale); err != nil {
				log.ErrorR(req, fmt.Errorf("error recording customer sale for txn [%s] item [%s]: [%v]", record.TxnID, item.ItemNumber, err))
				continue
			}
		}

		stat := transformer.SaleStat(record, item, now)
		if err := svc.DAO.CreateSaleStat(stat); err != nil {
			stat.CustEmail = reencode(stat.CustEmail)
			if err := svc.DAO.CreateSaleStat(stat); err != nil {
				log.ErrorR(req, fmt.Errorf("error recording sale stat for txn [%s] item [%s]: [%v]", record.TxnID, item.ItemNumber, err))
			}
		}
	}

	if svc.Publisher != nil {
		svc.Publisher.Publish(TransactionEvent{Record: record, Items: items})
	}

	return Success, nil
}

// reencodeSale rewrites the free-text fields of a sale row as UTF-8,
// reinterpreting their bytes as Windows-1252. Buyer names and addresses
// occasionally arrive in that encoding and fail the first insert.
func reencodeSale(sale *models.CustomerSaleDB) {
	sale.FirstName = reencode(sale.FirstName)
	sale.LastName = reencode(sale.LastName)
	sale.ProductName = reencode(sale.ProductName)
	sale.Address = reencode(sale.Address)
	sale.AddressStreet = reencode(sale.AddressStreet)
	sale.AddressCity = reencode(sale.AddressCity)
	sale.AddressState = reencode(sale.AddressState)
	sale.AddressCountry = reencode(sale.AddressCountry)
}

func reencode(s string) string {
	decoded, err := charmap.Windows1252.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return decoded
}
