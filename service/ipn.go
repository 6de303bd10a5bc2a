package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/log"
	"github.com/plutov/paypal/v4"

	"github.com/adilrabid/ppcp-checkout-api/config"
	"github.com/adilrabid/ppcp-checkout-api/models"
	"github.com/adilrabid/ppcp-checkout-api/utils"
)

// Gateway and txn_type markers stamped on every record, in the legacy IPN
// vocabulary downstream ledger consumers filter on.
const (
	CheckoutGateway = "paypal_ppcp"
	CheckoutTxnType = "paypal_ppcp_checkout"

	BuyNowGateway = "paypal_ppcp_buy_now"

	SubscriptionGateway = "paypal_subscription_checkout"
	SubscriptionTxnType = "pp_subscription_new"
)

// CheckoutContext is the locally known side of a transaction: everything the
// normalizer needs that PayPal does not echo back in the capture response.
type CheckoutContext struct {
	Gateway    string
	IPAddress  string
	Custom     string
	CartID     string
	ItemNumber string
	ItemName   string
	Quantity   int
}

// NormalizerService flattens provider responses into TransactionRecords. The
// PayPal client is only used for enrichment lookups when the buyer identity is
// missing from the primary response.
type NormalizerService struct {
	Client PayPalSDK
	Config *config.Config
}

// RecordFromCapture builds the flat transaction record for a completed order
// capture. A response without a capture id yields an incomplete record; the
// caller must check Complete() before persisting. Enrichment failures degrade
// to empty payer fields rather than failing the capture.
func (svc *NormalizerService) RecordFromCapture(req *http.Request, capture *paypal.CaptureOrderResponse, checkout CheckoutContext) *models.TransactionRecord {

	record := &models.TransactionRecord{
		Gateway:       checkout.Gateway,
		TxnType:       CheckoutTxnType,
		PaypalOrderID: capture.ID,
		Status:        capitalizeStatus(capture.Status),
		PaymentStatus: capitalizeStatus(capture.Status),
		McGross:       "0",
		Quantity:      checkout.Quantity,
		IPAddress:     checkout.IPAddress,
		CartID:        checkout.CartID,
		ItemNumber:    checkout.ItemNumber,
		ItemName:      checkout.ItemName,
		Custom:        utils.AppendCustomVar(checkout.Custom, "paypal_order_id", capture.ID),
		IsLive:        svc.Config.IsLiveMode(),
	}
	if record.Quantity == 0 {
		record.Quantity = 1
	}

	if len(capture.PurchaseUnits) > 0 {
		unit := capture.PurchaseUnits[0]
		if unit.Payments != nil && len(unit.Payments.Captures) > 0 {
			settled := unit.Payments.Captures[0]
			record.TxnID = settled.ID
			if settled.Amount != nil {
				record.McGross = settled.Amount.Value
				record.McCurrency = settled.Amount.Currency
			}
		}
		if unit.Shipping.Address.CountryCode != "" || unit.Shipping.Address.AddressLine1 != "" {
			applyPortableAddress(record, &unit.Shipping.Address)
		}
	}

	applyPayer(record, capture.Payer)

	if record.PayerEmail == "" || record.FirstName == "" {
		svc.enrichFromOrder(req, record, capture.ID)
	}

	return record
}

// RecordFromSubscription builds the flat transaction record for an approved
// subscription. The PayPal order id reported by the approval stands in for the
// capture transaction id, since the first charge settles asynchronously.
func (svc *NormalizerService) RecordFromSubscription(req *http.Request, sub *models.SubscriptionResource, orderID string, checkout CheckoutContext) *models.TransactionRecord {

	record := &models.TransactionRecord{
		Gateway:            SubscriptionGateway,
		TxnType:            SubscriptionTxnType,
		TxnID:              orderID,
		PaypalOrderID:      orderID,
		SubscrID:           sub.ID,
		PlanID:             sub.PlanID,
		Status:             capitalizeStatus(sub.Status),
		PaymentStatus:      capitalizeStatus(sub.Status),
		SubscriptionStatus: sub.Status,
		CreateTime:         sub.CreateTime,
		McGross:            "0",
		Quantity:           1,
		IPAddress:          checkout.IPAddress,
		ItemNumber:         checkout.ItemNumber,
		ItemName:           checkout.ItemName,
		Custom:             utils.AppendCustomVar(checkout.Custom, "paypal_order_id", orderID),
		IsLive:             svc.Config.IsLiveMode(),
	}

	if sub.BillingInfo != nil {
		record.IsTrialTxn = sub.BillingInfo.TrialTenure()
		if lp := sub.BillingInfo.LastPayment; lp != nil && lp.Amount != nil {
			record.McGross = lp.Amount.Value
			record.McCurrency = lp.Amount.CurrencyCode
		}
	}

	applySubscriber(record, sub.Subscriber)

	if record.PayerEmail == "" || record.FirstName == "" {
		svc.enrichFromSubscription(req, record, sub.ID)
	}

	return record
}

// enrichFromOrder backfills the buyer identity from an order lookup. Lookup
// failures are logged and the record keeps whatever it already has.
func (svc *NormalizerService) enrichFromOrder(req *http.Request, record *models.TransactionRecord, orderID string) {
	order, err := svc.Client.GetOrder(context.Background(), orderID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error looking up order [%s] for payer details: [%v]", orderID, err))
		return
	}
	applyPayer(record, order.Payer)
}

func (svc *NormalizerService) enrichFromSubscription(req *http.Request, record *models.TransactionRecord, subscriptionID string) {
	sub, err := svc.Client.GetSubscriptionDetails(context.Background(), subscriptionID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error looking up subscription [%s] for payer details: [%v]", subscriptionID, err))
		return
	}
	if sub.Subscriber == nil {
		return
	}
	if record.PayerEmail == "" {
		record.PayerEmail = sub.Subscriber.EmailAddress
	}
	if record.FirstName == "" {
		record.FirstName = sub.Subscriber.Name.GivenName
		record.LastName = sub.Subscriber.Name.Surname
	}
	if record.PayerID == "" {
		record.PayerID = sub.Subscriber.PayerID
	}
	if record.AddressStreet == "" && sub.Subscriber.ShippingAddress.Address != nil {
		applyShippingDetail(record, sub.Subscriber.ShippingAddress.Address)
	}
}

func applyPayer(record *models.TransactionRecord, payer *paypal.PayerWithNameAndPhone) {
	if payer == nil {
		return
	}
	if record.PayerEmail == "" {
		record.PayerEmail = payer.EmailAddress
	}
	if record.PayerID == "" {
		record.PayerID = payer.PayerID
	}
	if record.FirstName == "" && payer.Name != nil {
		record.FirstName = payer.Name.GivenName
		record.LastName = payer.Name.Surname
	}
}

func applySubscriber(record *models.TransactionRecord, subscriber *models.Subscriber) {
	if subscriber == nil {
		return
	}
	record.PayerEmail = subscriber.EmailAddress
	record.PayerID = subscriber.PayerID
	if subscriber.Name != nil {
		record.FirstName = subscriber.Name.GivenName
		record.LastName = subscriber.Name.Surname
	}
	if subscriber.ShippingAddress != nil && subscriber.ShippingAddress.Address != nil {
		addr := subscriber.ShippingAddress.Address
		applyPortableAddress(record, &paypal.ShippingDetailAddressPortable{
			AddressLine1: addr.AddressLine1,
			AddressLine2: addr.AddressLine2,
			AdminArea1:   addr.AdminArea1,
			AdminArea2:   addr.AdminArea2,
			PostalCode:   addr.PostalCode,
			CountryCode:  addr.CountryCode,
		})
	}
}

func applyPortableAddress(record *models.TransactionRecord, addr *paypal.ShippingDetailAddressPortable) {
	street := addr.AddressLine1
	if addr.AddressLine2 != "" {
		street += ", " + addr.AddressLine2
	}
	record.AddressStreet = street
	record.AddressCity = addr.AdminArea2
	record.AddressState = addr.AdminArea1
	record.AddressZip = addr.PostalCode
	record.AddressCountry = utils.CountryNameByCode(addr.CountryCode)
	record.Address = assembleAddress(record)
}

func applyShippingDetail(record *models.TransactionRecord, addr *paypal.ShippingDetailAddressPortable) {
	applyPortableAddress(record, addr)
}

// assembleAddress joins the populated address parts into the single-field form
// some ledger consumers store.
func assembleAddress(record *models.TransactionRecord) string {
	parts := make([]string, 0, 5)
	for _, part := range []string{record.AddressStreet, record.AddressCity, record.AddressState, record.AddressZip, record.AddressCountry} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// capitalizeStatus maps provider statuses (COMPLETED, ACTIVE) to the
// capitalized form the ledgers store (Completed, Active).
func capitalizeStatus(status string) string {
	if status == "" {
		return ""
	}
	lower := strings.ToLower(status)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
