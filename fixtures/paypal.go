// Package fixtures provides canned provider responses for tests.
package fixtures

import (
	"github.com/plutov/paypal/v4"

	"github.com/adilrabid/ppcp-checkout-api/models"
)

// CompletedCapture returns a COMPLETED capture response with one settled
// capture entry and a full payer.
func CompletedCapture(orderID, captureID, amount, currency string) *paypal.CaptureOrderResponse {
	return &paypal.CaptureOrderResponse{
		ID:     orderID,
		Status: "COMPLETED",
		Payer: &paypal.PayerWithNameAndPhone{
			Name: &paypal.CreateOrderPayerName{
				GivenName: "Jane",
				Surname:   "Doe",
			},
			EmailAddress: "jane.doe@example.com",
			PayerID:      "PAYER123",
		},
		PurchaseUnits: []paypal.CapturedPurchaseUnit{
			{
				ReferenceID: "cart-1",
				Shipping: paypal.CapturedPurchaseUnitShipping{
					Address: paypal.ShippingDetailAddressPortable{
						AddressLine1: "1 Main Street",
						AdminArea2:   "Springfield",
						AdminArea1:   "IL",
						PostalCode:   "62701",
						CountryCode:  "US",
					},
				},
				Payments: &paypal.CapturedPayments{
					Captures: []paypal.CaptureAmount{
						{
							ID: captureID,
							Amount: &paypal.PurchaseUnitAmount{
								Currency: currency,
								Value:    amount,
							},
						},
					},
				},
			},
		},
	}
}

// ActiveSubscription returns an ACTIVE subscription resource whose first
// charge has settled as a regular cycle.
func ActiveSubscription(subscriptionID, planID, amount, currency string) *models.SubscriptionResource {
	return &models.SubscriptionResource{
		ID:         subscriptionID,
		PlanID:     planID,
		Status:     "ACTIVE",
		CreateTime: "2026-08-01T10:00:00Z",
		Subscriber: &models.Subscriber{
			Name: &models.PayerName{
				GivenName: "Jane",
				Surname:   "Doe",
			},
			EmailAddress: "jane.doe@example.com",
			PayerID:      "PAYER123",
		},
		BillingInfo: &models.BillingInfo{
			LastPayment: &models.LastPayment{
				Amount: &models.MoneyValue{
					CurrencyCode: currency,
					Value:        amount,
				},
				Time: "2026-08-01T10:00:05Z",
			},
			CycleExecutions: []models.CycleExecution{
				{TenureType: "REGULAR", Sequence: 1, CyclesCompleted: 1},
			},
		},
	}
}

// TrialSubscription returns an ACTIVE subscription resource whose first cycle
// is a trial.
func TrialSubscription(subscriptionID, planID string) *models.SubscriptionResource {
	sub := ActiveSubscription(subscriptionID, planID, "0.00", "USD")
	sub.BillingInfo.CycleExecutions = []models.CycleExecution{
		{TenureType: "TRIAL", Sequence: 1, CyclesCompleted: 1},
	}
	return sub
}

// SubscriptionProduct returns a catalog row for a monthly subscription
// product without a trial.
func SubscriptionProduct(id, recurringPrice string) *models.ProductDB {
	return &models.ProductDB{
		ID:      id,
		Name:    "Monthly Plan",
		Price:   recurringPrice,
		Digital: true,
		Subscription: &models.SubscriptionTermsDB{
			RecurringPrice:      recurringPrice,
			RecurringPeriod:     1,
			RecurringPeriodUnit: "MONTH",
		},
	}
}
