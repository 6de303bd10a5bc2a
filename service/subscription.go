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
	"github.com/adilrabid/ppcp-checkout-api/utils"
)

// SubscriptionService handles the smart button subscription flows: creating a
// subscription under the right billing plan, and recording the transaction
// when the buyer approves it.
type SubscriptionService struct {
	Client     PayPalSDK
	DAO        dao.DAO
	Config     *config.Config
	Plans      *PlanService
	Normalizer *NormalizerService
	Dispatcher *DispatcherService
}

// CreateSubscription resolves the billing plan for the product and creates a
// PayPal subscription under it, snapshotting the checkout keyed by the
// subscription id.
func (svc *SubscriptionService) CreateSubscription(req *http.Request, data *models.CreateSubscriptionData) (string, string, ResponseType, error) {

	product, err := svc.DAO.GetProduct(data.ProductID)
	if err != nil {
		return "", "", Error, fmt.Errorf("error reading product [%s]: [%v]", data.ProductID, err)
	}
	if product == nil {
		return "", "", NotFound, fmt.Errorf("product [%s] not found", data.ProductID)
	}
	if product.Subscription == nil {
		return "", "", InvalidData, fmt.Errorf("product [%s] is not a subscription product", data.ProductID)
	}

	if responseType, err := checkStock(product, 1); err != nil {
		return "", "", responseType, err
	}

	price, dynamic, responseType, err := resolveSubscriptionPrice(product, data)
	if err != nil {
		return "", "", responseType, err
	}

	planID, responseType, err := svc.Plans.ResolvePlan(req, product, price, dynamic)
	if err != nil {
		return "", "", responseType, err
	}

	sub, err := svc.Client.CreateSubscription(context.Background(), paypal.SubscriptionBase{
		PlanID:   planID,
		CustomID: data.Custom,
		ApplicationContext: &paypal.ApplicationContext{
			BrandName: svc.Config.BrandName,
			ReturnURL: svc.Config.ReturnURL,
			CancelURL: svc.Config.CancelURL,
		},
	})
	if err != nil {
		return "", "", Error, fmt.Errorf("error creating subscription for product [%s]: [%v]", data.ProductID, err)
	}

	itemName := data.ItemName
	if itemName == "" {
		itemName = product.Name
	}

	currency := product.Currency
	if currency == "" {
		currency = svc.Config.PaymentCurrency
	}

	snapshot := &models.CheckoutSnapshotDB{
		ID:        sub.ID,
		ProductID: product.ID,
		ItemName:  itemName,
		Custom:    data.Custom,
		Amount:    price,
		Currency:  currency,
		ExpiresAt: time.Now().UTC().Add(snapshotTTL),
	}
	if err := svc.DAO.PutCheckoutSnapshot(snapshot); err != nil {
		return "", "", Error, fmt.Errorf("error saving checkout snapshot for subscription [%s]: [%v]", sub.ID, err)
	}

	log.InfoR(req, "paypal subscription created", log.Data{"subscription_id": sub.ID, "plan_id": planID, "product_id": product.ID})

	return sub.ID, planID, Success, nil
}

// ApproveSubscription records an approved subscription. The resource the
// storefront forwarded is validated against the catalog product before
// anything is persisted; when the storefront forwarded nothing, the resource
// is fetched from PayPal instead. The approval's PayPal order id stands in for
// the capture transaction id.
func (svc *SubscriptionService) ApproveSubscription(req *http.Request, data *models.ApproveSubscriptionData, resource *models.SubscriptionResource) (*models.TransactionRecord, ResponseType, error) {

	product, err := svc.DAO.GetProduct(data.ProductID)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading product [%s]: [%v]", data.ProductID, err)
	}
	if product == nil {
		return nil, NotFound, fmt.Errorf("product [%s] not found", data.ProductID)
	}

	if resource == nil || resource.ID == "" {
		resource, err = svc.fetchSubscriptionResource(data.SubscriptionID)
		if err != nil {
			return nil, Error, err
		}
	}

	snapshot, err := svc.DAO.GetCheckoutSnapshot(data.SubscriptionID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading checkout snapshot for subscription [%s]: [%v]", data.SubscriptionID, err))
	}

	// The snapshot carries the plan price actually subscribed to, which
	// differs from the catalog recurring price for variation and custom price
	// checkouts.
	expectedPrice := ""
	if snapshot != nil {
		expectedPrice = snapshot.Amount
	}
	if responseType, err := ValidateSubscription(resource, product, expectedPrice); err != nil {
		return nil, responseType, err
	}

	orderID := data.OrderID
	if orderID == "" {
		orderID = resource.ID
	}

	checkout := CheckoutContext{
		IPAddress:  utils.RequestIP(req),
		Custom:     data.Custom,
		ItemNumber: product.ID,
		ItemName:   product.Name,
	}
	if snapshot != nil {
		checkout.Custom = snapshot.Custom
		if snapshot.ItemName != "" {
			checkout.ItemName = snapshot.ItemName
		}
	}

	record := svc.Normalizer.RecordFromSubscription(req, resource, orderID, checkout)

	responseType, err := svc.Dispatcher.Process(req, record, nil)
	if err != nil {
		return nil, responseType, err
	}

	return record, responseType, nil
}

// fetchSubscriptionResource builds the resource view from a subscription
// details lookup.
func (svc *SubscriptionService) fetchSubscriptionResource(subscriptionID string) (*models.SubscriptionResource, error) {

	details, err := svc.Client.GetSubscriptionDetails(context.Background(), subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("error looking up subscription [%s]: [%v]", subscriptionID, err)
	}

	resource := &models.SubscriptionResource{
		ID:     details.ID,
		PlanID: details.PlanID,
		Status: string(details.SubscriptionStatus),
	}

	billing := &models.BillingInfo{}
	for _, cycle := range details.BillingInfo.CycleExecutions {
		billing.CycleExecutions = append(billing.CycleExecutions, models.CycleExecution{
			TenureType:      string(cycle.TenureType),
			Sequence:        cycle.Sequence,
			CyclesCompleted: cycle.CyclesCompleted,
		})
	}
	if details.BillingInfo.LastPayment.Amount.Value != "" {
		billing.LastPayment = &models.LastPayment{
			Amount: &models.MoneyValue{
				CurrencyCode: details.BillingInfo.LastPayment.Amount.Currency,
				Value:        details.BillingInfo.LastPayment.Amount.Value,
			},
			Time: details.BillingInfo.LastPayment.Time.Format(time.RFC3339),
		}
	}
	if len(billing.CycleExecutions) > 0 || billing.LastPayment != nil {
		resource.BillingInfo = billing
	}

	if details.Subscriber != nil {
		resource.Subscriber = &models.Subscriber{
			EmailAddress: details.Subscriber.EmailAddress,
			PayerID:      details.Subscriber.PayerID,
			Name: &models.PayerName{
				GivenName: details.Subscriber.Name.GivenName,
				Surname:   details.Subscriber.Name.Surname,
			},
		}
	}

	return resource, nil
}

// resolveSubscriptionPrice validates the submitted recurring amount against
// the catalog and reports whether the checkout needs a throwaway plan.
func resolveSubscriptionPrice(product *models.ProductDB, data *models.CreateSubscriptionData) (string, bool, ResponseType, error) {

	terms := product.Subscription

	if product.CustomPriceAllowed && data.CustomPrice != "" {
		custom, err := decimal.NewFromString(data.CustomPrice)
		if err != nil {
			return "", false, InvalidData, fmt.Errorf("invalid custom price [%s] for product [%s]", data.CustomPrice, product.ID)
		}
		if terms.RecurringPrice != "" {
			if minimum, err := decimal.NewFromString(terms.RecurringPrice); err == nil && custom.LessThan(minimum) {
				return "", false, InvalidData, fmt.Errorf("custom price [%s] is below the minimum recurring price for product [%s]", data.CustomPrice, product.ID)
			}
		}
		return custom.StringFixed(2), true, Success, nil
	}

	if data.Amount == "" {
		return "", false, Success, nil
	}

	submitted, err := decimal.NewFromString(data.Amount)
	if err != nil {
		return "", false, InvalidData, fmt.Errorf("invalid amount [%s] for product [%s]", data.Amount, product.ID)
	}

	if recurring, err := decimal.NewFromString(terms.RecurringPrice); err == nil && submitted.Equal(recurring) {
		return "", false, Success, nil
	}

	if product.HasVariations {
		for _, variation := range product.Variations {
			if v, err := decimal.NewFromString(variation.Price); err == nil && submitted.Equal(v) {
				return submitted.StringFixed(2), true, Success, nil
			}
		}
	}

	return "", false, InvalidData, fmt.Errorf("submitted amount [%s] for product [%s] does not match the catalog", data.Amount, product.ID)
}
