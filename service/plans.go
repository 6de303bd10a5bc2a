package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/plutov/paypal/v4"
	"golang.org/x/sync/singleflight"

	"github.com/adilrabid/ppcp-checkout-api/config"
	"github.com/adilrabid/ppcp-checkout-api/dao"
	"github.com/adilrabid/ppcp-checkout-api/models"
)

// PlanService resolves the PayPal billing plan to subscribe a buyer under.
// Standard products reuse one plan, cached on the catalog row together with
// the environment mode it was created in; a checkout priced by a variation or
// a buyer-chosen custom price always gets a throwaway plan, since PayPal plan
// prices are fixed at creation.
type PlanService struct {
	Client PayPalSDK
	DAO    dao.DAO
	Config *config.Config
	group  singleflight.Group
}

// ResolvePlan returns the plan id for a subscription checkout of the given
// product. Price is the recurring price to bill, empty meaning the product's
// configured recurring price; dynamic marks variation or custom price
// checkouts, which never touch the cache.
func (svc *PlanService) ResolvePlan(req *http.Request, product *models.ProductDB, price string, dynamic bool) (string, ResponseType, error) {

	terms := product.Subscription
	if terms == nil {
		return "", InvalidData, fmt.Errorf("product [%s] has no subscription terms", product.ID)
	}
	if price == "" {
		price = terms.RecurringPrice
	}

	if dynamic {
		planID, err := svc.createPlan(product, price)
		if err != nil {
			return "", Error, err
		}
		return planID, Success, nil
	}

	// Collapse concurrent checkouts of the same product onto one plan
	// creation.
	planID, err, _ := svc.group.Do(product.ID, func() (interface{}, error) {
		return svc.resolveStandardPlan(req, product, price)
	})
	if err != nil {
		return "", Error, err
	}
	return planID.(string), Success, nil
}

// resolveStandardPlan returns the cached plan when it was created under the
// current environment mode and still exists at PayPal, and creates and caches
// a fresh one otherwise. A stale cache entry is reset, never trusted.
func (svc *PlanService) resolveStandardPlan(req *http.Request, product *models.ProductDB, price string) (string, error) {

	if product.PlanID != "" && product.PlanMode == svc.Config.PaypalEnv {
		plan, err := svc.Client.GetSubscriptionPlan(context.Background(), product.PlanID)
		if err == nil && plan != nil && plan.ID == product.PlanID {
			return product.PlanID, nil
		}
		log.InfoR(req, "cached billing plan no longer valid, creating a fresh one", log.Data{
			"product_id": product.ID,
			"plan_id":    product.PlanID,
		})
		if err := svc.DAO.ResetPlanMetadata(product.ID); err != nil {
			log.ErrorR(req, fmt.Errorf("error resetting plan metadata for product [%s]: [%v]", product.ID, err))
		}
	}

	planID, err := svc.createPlan(product, price)
	if err != nil {
		return "", err
	}

	if err := svc.DAO.SavePlanMetadata(product.ID, planID, svc.Config.PaypalEnv); err != nil {
		// The plan exists at PayPal either way; a failed cache write only
		// costs a duplicate plan on the next checkout.
		log.ErrorR(req, fmt.Errorf("error saving plan metadata for product [%s]: [%v]", product.ID, err))
	}

	return planID, nil
}

// createPlan creates a catalog product and an active billing plan for it. The
// trial cycle, when the product configures one, is always the first billing
// cycle.
func (svc *PlanService) createPlan(product *models.ProductDB, price string) (string, error) {

	terms := product.Subscription
	currency := product.Currency
	if currency == "" {
		currency = svc.Config.PaymentCurrency
	}

	ppProduct, err := svc.Client.CreateProduct(context.Background(), paypal.Product{
		Name:        product.Name,
		Description: product.Name,
		Type:        paypal.ProductType("DIGITAL"),
	})
	if err != nil {
		return "", fmt.Errorf("error creating paypal product for [%s]: [%v]", product.ID, err)
	}

	cycles := make([]paypal.BillingCycle, 0, 2)
	sequence := 1

	if terms.HasTrial() {
		cycles = append(cycles, paypal.BillingCycle{
			PricingScheme: paypal.PricingScheme{
				FixedPrice: paypal.Money{Currency: currency, Value: terms.TrialPrice},
			},
			Frequency: paypal.Frequency{
				IntervalUnit:  paypal.IntervalUnit(terms.TrialPeriodUnit),
				IntervalCount: terms.TrialPeriod,
			},
			TenureType:  paypal.TenureType("TRIAL"),
			Sequence:    sequence,
			TotalCycles: 1,
		})
		sequence++
	}

	cycles = append(cycles, paypal.BillingCycle{
		PricingScheme: paypal.PricingScheme{
			FixedPrice: paypal.Money{Currency: currency, Value: price},
		},
		Frequency: paypal.Frequency{
			IntervalUnit:  paypal.IntervalUnit(terms.RecurringPeriodUnit),
			IntervalCount: terms.RecurringPeriod,
		},
		TenureType:  paypal.TenureType("REGULAR"),
		Sequence:    sequence,
		TotalCycles: terms.RecurringCycles,
	})

	plan, err := svc.Client.CreateSubscriptionPlan(context.Background(), paypal.SubscriptionPlan{
		ProductId:     ppProduct.ID,
		Name:          product.Name,
		Description:   product.Name,
		Status:        paypal.SubscriptionPlanStatus("ACTIVE"),
		BillingCycles: cycles,
		PaymentPreferences: &paypal.PaymentPreferences{
			AutoBillOutstanding:     true,
			SetupFeeFailureAction:   paypal.SetupFeeFailureAction("CONTINUE"),
			PaymentFailureThreshold: 3,
		},
	})
	if err != nil {
		return "", fmt.Errorf("error creating billing plan for [%s]: [%v]", product.ID, err)
	}

	return plan.ID, nil
}
