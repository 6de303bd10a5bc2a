package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/plutov/paypal/v4"
	"github.com/shopspring/decimal"

	"github.com/adilrabid/ppcp-checkout-api/config"
	"github.com/adilrabid/ppcp-checkout-api/dao"
	"github.com/adilrabid/ppcp-checkout-api/models"
	"github.com/adilrabid/ppcp-checkout-api/transformers"
	"github.com/adilrabid/ppcp-checkout-api/utils"
)

// snapshotTTL bounds how long an unfinished checkout stays resumable. PayPal
// orders themselves expire well within this window.
const snapshotTTL = 12 * time.Hour

// CheckoutService handles the smart button order flows: cart checkout and
// single-product buy now. Amounts submitted by the storefront are never
// trusted; every create call re-prices against the catalog before PayPal is
// involved.
type CheckoutService struct {
	Client     PayPalSDK
	DAO        dao.DAO
	Config     *config.Config
	Normalizer *NormalizerService
	Dispatcher *DispatcherService
}

// CreateOrder validates and prices a cart, creates the PayPal order for it and
// snapshots the checkout so the capture call can be correlated later.
func (svc *CheckoutService) CreateOrder(req *http.Request, data *models.CreateOrderData) (string, ResponseType, error) {

	currency := svc.Config.PaymentCurrency
	itemTotal := decimal.Zero
	shippingTotal, baseShippingApplies := decimal.Zero, false
	taxTotal := decimal.Zero
	allDigital := true

	for _, item := range data.Items {
		product, err := svc.DAO.GetProduct(item.ItemNumber)
		if err != nil {
			return "", Error, fmt.Errorf("error reading product [%s]: [%v]", item.ItemNumber, err)
		}
		if product == nil {
			return "", NotFound, fmt.Errorf("product [%s] not found", item.ItemNumber)
		}

		if responseType, err := validateCartPrice(product, item); err != nil {
			return "", responseType, err
		}
		if responseType, err := checkStock(product, item.Quantity); err != nil {
			return "", responseType, err
		}

		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return "", InvalidData, fmt.Errorf("invalid price [%s] for item [%s]", item.Price, item.ItemNumber)
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		lineTotal := price.Mul(qty)
		itemTotal = itemTotal.Add(lineTotal)

		if !product.Digital {
			allDigital = false
			baseShippingApplies = true
			if product.ShippingCost != "" {
				shipping, err := decimal.NewFromString(product.ShippingCost)
				if err != nil {
					return "", Error, fmt.Errorf("invalid shipping cost on product [%s]", product.ID)
				}
				shippingTotal = shippingTotal.Add(shipping.Mul(qty))
			}
		}

		taxTotal = taxTotal.Add(svc.lineTax(lineTotal, product.TaxRate))
	}

	if baseShippingApplies && svc.Config.BaseShippingCost != "" {
		base, err := decimal.NewFromString(svc.Config.BaseShippingCost)
		if err == nil {
			shippingTotal = shippingTotal.Add(base)
		}
	}

	grandTotal := itemTotal.Add(shippingTotal).Add(taxTotal)

	order, err := svc.createPayPalOrder(data.CartID, grandTotal, itemTotal, shippingTotal, taxTotal, currency,
		transformers.PurchaseItems(data.Items, currency), allDigital)
	if err != nil {
		return "", Error, err
	}

	snapshot := &models.CheckoutSnapshotDB{
		ID:        order.ID,
		Items:     transformers.SnapshotItems(data.Items, currency),
		Custom:    data.Custom,
		CartID:    data.CartID,
		Amount:    grandTotal.StringFixed(2),
		Currency:  currency,
		ExpiresAt: time.Now().UTC().Add(snapshotTTL),
	}
	if err := svc.DAO.PutCheckoutSnapshot(snapshot); err != nil {
		return "", Error, fmt.Errorf("error saving checkout snapshot for order [%s]: [%v]", order.ID, err)
	}

	log.InfoR(req, "paypal order created", log.Data{"order_id": order.ID, "cart_id": data.CartID, "amount": snapshot.Amount})

	return order.ID, Success, nil
}

// BuyNowOrder validates and prices a single-product buy now checkout and
// creates the PayPal order for it. The submitted amount must agree with the
// catalog: the product price, one of its variation prices, or a custom price
// no lower than the product price when the product allows one.
func (svc *CheckoutService) BuyNowOrder(req *http.Request, data *models.BuyNowOrderData) (string, ResponseType, error) {

	product, err := svc.DAO.GetProduct(data.ProductID)
	if err != nil {
		return "", Error, fmt.Errorf("error reading product [%s]: [%v]", data.ProductID, err)
	}
	if product == nil {
		return "", NotFound, fmt.Errorf("product [%s] not found", data.ProductID)
	}

	if responseType, err := checkStock(product, 1); err != nil {
		return "", responseType, err
	}

	price, responseType, err := resolveBuyNowPrice(product, data)
	if err != nil {
		return "", responseType, err
	}

	currency := product.Currency
	if currency == "" {
		currency = svc.Config.PaymentCurrency
	}

	shippingTotal := decimal.Zero
	if !product.Digital {
		if product.ShippingCost != "" {
			if shipping, err := decimal.NewFromString(product.ShippingCost); err == nil {
				shippingTotal = shippingTotal.Add(shipping)
			}
		}
		if svc.Config.BaseShippingCost != "" {
			if base, err := decimal.NewFromString(svc.Config.BaseShippingCost); err == nil {
				shippingTotal = shippingTotal.Add(base)
			}
		}
	}
	taxTotal := svc.lineTax(price, product.TaxRate)
	grandTotal := price.Add(shippingTotal).Add(taxTotal)

	itemName := data.ItemName
	if itemName == "" {
		itemName = product.Name
	}

	items := []paypal.Item{{
		Name:     itemName,
		SKU:      product.ID,
		Quantity: "1",
		UnitAmount: &paypal.Money{
			Currency: currency,
			Value:    price.StringFixed(2),
		},
	}}

	order, err := svc.createPayPalOrder(product.ID, grandTotal, price, shippingTotal, taxTotal, currency, items, product.Digital)
	if err != nil {
		return "", Error, err
	}

	snapshot := &models.CheckoutSnapshotDB{
		ID:        order.ID,
		ProductID: product.ID,
		ItemName:  itemName,
		Custom:    data.Custom,
		Amount:    grandTotal.StringFixed(2),
		Currency:  currency,
		ExpiresAt: time.Now().UTC().Add(snapshotTTL),
	}
	if err := svc.DAO.PutCheckoutSnapshot(snapshot); err != nil {
		return "", Error, fmt.Errorf("error saving checkout snapshot for order [%s]: [%v]", order.ID, err)
	}

	log.InfoR(req, "paypal buy now order created", log.Data{"order_id": order.ID, "product_id": product.ID, "amount": snapshot.Amount})

	return order.ID, Success, nil
}

// CaptureOrder captures an approved order, validates the settlement against
// the checkout snapshot, and hands the normalized transaction to the
// dispatcher. A Duplicate response means the transaction was already recorded;
// callers treat it the same as Success.
func (svc *CheckoutService) CaptureOrder(req *http.Request, data *models.CaptureOrderData, gateway string) (*models.TransactionRecord, ResponseType, error) {

	capture, err := svc.Client.CaptureOrder(context.Background(), data.OrderID, paypal.CaptureOrderRequest{})
	if err != nil {
		return nil, Error, fmt.Errorf("error capturing order [%s]: [%v]", data.OrderID, err)
	}

	snapshot, err := svc.DAO.GetCheckoutSnapshot(data.OrderID)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading checkout snapshot for order [%s]: [%v]", data.OrderID, err)
	}

	if responseType, err := ValidateCapture(capture, snapshot); err != nil {
		return nil, responseType, err
	}

	checkout := CheckoutContext{
		Gateway:    gateway,
		IPAddress:  utils.RequestIP(req),
		Custom:     snapshot.Custom,
		CartID:     snapshot.CartID,
		ItemNumber: snapshot.ProductID,
		ItemName:   snapshot.ItemName,
	}
	record := svc.Normalizer.RecordFromCapture(req, capture, checkout)
	if !record.Complete() {
		return nil, InvalidData, fmt.Errorf("capture of order [%s] produced no transaction id", data.OrderID)
	}

	responseType, err := svc.Dispatcher.Process(req, record, snapshot.Items)
	if err != nil {
		return nil, responseType, err
	}

	return record, responseType, nil
}

// createPayPalOrder creates the order with an amount breakdown and checks that
// PayPal reports it CREATED.
func (svc *CheckoutService) createPayPalOrder(referenceID string, grandTotal, itemTotal, shippingTotal, taxTotal decimal.Decimal, currency string, items []paypal.Item, digitalOnly bool) (*paypal.Order, error) {

	shippingPreference := paypal.ShippingPreference("GET_FROM_FILE")
	if digitalOnly {
		shippingPreference = paypal.ShippingPreference("NO_SHIPPING")
	}

	breakdown := &paypal.PurchaseUnitAmountBreakdown{
		ItemTotal: &paypal.Money{Currency: currency, Value: itemTotal.StringFixed(2)},
	}
	if shippingTotal.IsPositive() {
		breakdown.Shipping = &paypal.Money{Currency: currency, Value: shippingTotal.StringFixed(2)}
	}
	if taxTotal.IsPositive() {
		breakdown.TaxTotal = &paypal.Money{Currency: currency, Value: taxTotal.StringFixed(2)}
	}

	order, err := svc.Client.CreateOrder(
		context.Background(),
		paypal.OrderIntentCapture,
		[]paypal.PurchaseUnitRequest{
			{
				ReferenceID: referenceID,
				Amount: &paypal.PurchaseUnitAmount{
					Currency:  currency,
					Value:     grandTotal.StringFixed(2),
					Breakdown: breakdown,
				},
				Items: items,
			},
		},
		nil,
		&paypal.ApplicationContext{
			BrandName:          svc.Config.BrandName,
			ShippingPreference: shippingPreference,
			ReturnURL:          svc.Config.ReturnURL,
			CancelURL:          svc.Config.CancelURL,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("error creating order: [%v]", err)
	}

	if order.Status != paypal.OrderStatusCreated {
		log.Debug(fmt.Sprintf("paypal order response status: %s", order.Status))
		return nil, fmt.Errorf("failed to correctly create paypal order - status is not CREATED")
	}

	return order, nil
}

// lineTax returns the tax on one line, using the product rate when set and the
// configured global rate otherwise. Returns zero when tax is disabled.
func (svc *CheckoutService) lineTax(lineTotal decimal.Decimal, productRate string) decimal.Decimal {
	if !svc.Config.EnableTax {
		return decimal.Zero
	}
	rateStr := productRate
	if rateStr == "" {
		rateStr = svc.Config.GlobalTaxRate
	}
	if rateStr == "" {
		return decimal.Zero
	}
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return decimal.Zero
	}
	return lineTotal.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
}

// validateCartPrice checks a submitted cart line price against the catalog:
// the product price, or any variation price when the product has variations.
func validateCartPrice(product *models.ProductDB, item models.CheckoutItem) (ResponseType, error) {
	submitted, err := decimal.NewFromString(item.Price)
	if err != nil {
		return InvalidData, fmt.Errorf("invalid price [%s] for item [%s]", item.Price, item.ItemNumber)
	}

	if base, err := decimal.NewFromString(product.Price); err == nil && submitted.Equal(base) {
		return Success, nil
	}

	if product.HasVariations {
		for _, variation := range product.Variations {
			if v, err := decimal.NewFromString(variation.Price); err == nil && submitted.Equal(v) {
				return Success, nil
			}
		}
	}

	return InvalidData, fmt.Errorf("submitted price [%s] for item [%s] does not match the catalog", item.Price, item.ItemNumber)
}

// resolveBuyNowPrice validates the submitted buy now amount against the
// catalog and returns the unit price to charge.
func resolveBuyNowPrice(product *models.ProductDB, data *models.BuyNowOrderData) (decimal.Decimal, ResponseType, error) {

	if product.CustomPriceAllowed && data.CustomPrice != "" {
		custom, err := decimal.NewFromString(data.CustomPrice)
		if err != nil {
			return decimal.Zero, InvalidData, fmt.Errorf("invalid custom price [%s] for product [%s]", data.CustomPrice, product.ID)
		}
		// The catalog price acts as the minimum for name-your-price checkouts.
		if product.Price != "" {
			if minimum, err := decimal.NewFromString(product.Price); err == nil && custom.LessThan(minimum) {
				return decimal.Zero, InvalidData, fmt.Errorf("custom price [%s] is below the minimum price for product [%s]", data.CustomPrice, product.ID)
			}
		}
		return custom, Success, nil
	}

	submitted, err := decimal.NewFromString(data.Amount)
	if err != nil {
		return decimal.Zero, InvalidData, fmt.Errorf("invalid amount [%s] for product [%s]", data.Amount, product.ID)
	}

	if base, err := decimal.NewFromString(product.Price); err == nil && submitted.Equal(base) {
		return submitted, Success, nil
	}

	if product.HasVariations {
		for _, variation := range product.Variations {
			if v, err := decimal.NewFromString(variation.Price); err == nil && submitted.Equal(v) {
				return submitted, Success, nil
			}
		}
	}

	return decimal.Zero, InvalidData, fmt.Errorf("submitted amount [%s] for product [%s] does not match the catalog", data.Amount, product.ID)
}

// checkStock rejects checkouts of tracked-stock products that cannot cover the
// requested quantity. Products without stock tracking always pass.
func checkStock(product *models.ProductDB, quantity int) (ResponseType, error) {
	if product.AvailableCopies != nil && *product.AvailableCopies < quantity {
		return InvalidData, fmt.Errorf("product [%s] is out of stock", product.ID)
	}
	return Success, nil
}
