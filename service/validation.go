package service

import (
	"fmt"

	"github.com/plutov/paypal/v4"
	"github.com/shopspring/decimal"

	"github.com/adilrabid/ppcp-checkout-api/models"
)

// ValidateCapture checks a capture response against the snapshot written when
// the order was created. A capture whose status is not COMPLETED, or whose
// settled amount disagrees with the amount the order was created for, is
// rejected before anything is persisted.
func ValidateCapture(capture *paypal.CaptureOrderResponse, snapshot *models.CheckoutSnapshotDB) (ResponseType, error) {

	if capture.Status != "COMPLETED" {
		return InvalidData, fmt.Errorf("order capture status is %s, not COMPLETED", capture.Status)
	}

	if len(capture.PurchaseUnits) == 0 || capture.PurchaseUnits[0].Payments == nil ||
		len(capture.PurchaseUnits[0].Payments.Captures) == 0 {
		return InvalidData, fmt.Errorf("order capture response has no capture entry")
	}

	amount := capture.PurchaseUnits[0].Payments.Captures[0].Amount
	if amount == nil {
		return InvalidData, fmt.Errorf("order capture response has no amount")
	}

	if snapshot == nil {
		return NotFound, fmt.Errorf("no checkout snapshot found for order")
	}

	if snapshot.Currency != "" && amount.Currency != snapshot.Currency {
		return InvalidData, fmt.Errorf("captured currency [%s] does not match checkout currency [%s]", amount.Currency, snapshot.Currency)
	}

	if err := amountsMatch(amount.Value, snapshot.Amount); err != nil {
		return InvalidData, err
	}

	return Success, nil
}

// ValidateSubscription checks an approved subscription against the catalog
// product its plan was created for. An approval reporting a TRIAL tenure for a
// product that configures no trial is treated as tampering and rejected; a
// non-trial first charge must match expectedPrice, which defaults to the
// configured recurring price and carries the plan price for variation and
// custom price checkouts.
func ValidateSubscription(sub *models.SubscriptionResource, product *models.ProductDB, expectedPrice string) (ResponseType, error) {

	terms := product.Subscription
	if terms == nil {
		return InvalidData, fmt.Errorf("product [%s] has no subscription terms", product.ID)
	}
	if expectedPrice == "" {
		expectedPrice = terms.RecurringPrice
	}

	if sub.BillingInfo == nil {
		return Success, nil
	}

	if sub.BillingInfo.TrialTenure() {
		if !terms.HasTrial() {
			return InvalidData, fmt.Errorf("subscription [%s] reports a trial cycle but product [%s] configures no trial", sub.ID, product.ID)
		}
		return Success, nil
	}

	if lp := sub.BillingInfo.LastPayment; lp != nil && lp.Amount != nil {
		if err := amountsMatch(lp.Amount.Value, expectedPrice); err != nil {
			return InvalidData, err
		}
	}

	return Success, nil
}

// amountsMatch compares two decimal amount strings numerically, so "10.00" and
// "10.0" compare equal.
func amountsMatch(got, want string) error {
	if want == "" {
		return nil
	}
	gotDec, err := decimal.NewFromString(got)
	if err != nil {
		return fmt.Errorf("invalid captured amount [%s]: [%v]", got, err)
	}
	wantDec, err := decimal.NewFromString(want)
	if err != nil {
		return fmt.Errorf("invalid expected amount [%s]: [%v]", want, err)
	}
	if !gotDec.Equal(wantDec) {
		return fmt.Errorf("captured amount [%s] does not match expected amount [%s]", got, want)
	}
	return nil
}
