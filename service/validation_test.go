package service

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/adilrabid/ppcp-checkout-api/fixtures"
	"github.com/adilrabid/ppcp-checkout-api/models"
)

func TestUnitValidateCapture(t *testing.T) {
	snapshot := &models.CheckoutSnapshotDB{ID: "ORD1", Amount: "10.00", Currency: "USD"}

	Convey("A completed capture matching the snapshot passes", t, func() {
		capture := fixtures.CompletedCapture("ORD1", "CAP1", "10.00", "USD")

		responseType, err := ValidateCapture(capture, snapshot)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("Amounts compare numerically, not textually", t, func() {
		capture := fixtures.CompletedCapture("ORD1", "CAP1", "10.0", "USD")

		responseType, err := ValidateCapture(capture, snapshot)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("A capture that is not COMPLETED is rejected", t, func() {
		capture := fixtures.CompletedCapture("ORD1", "CAP1", "10.00", "USD")
		capture.Status = "PENDING"

		responseType, err := ValidateCapture(capture, snapshot)

		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldContainSubstring, "not COMPLETED")
	})

	Convey("An amount mismatch is rejected", t, func() {
		capture := fixtures.CompletedCapture("ORD1", "CAP1", "9.99", "USD")

		responseType, err := ValidateCapture(capture, snapshot)

		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldContainSubstring, "does not match")
	})

	Convey("A currency mismatch is rejected", t, func() {
		capture := fixtures.CompletedCapture("ORD1", "CAP1", "10.00", "EUR")

		responseType, err := ValidateCapture(capture, snapshot)

		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
	})

	Convey("A missing snapshot is rejected", t, func() {
		capture := fixtures.CompletedCapture("ORD1", "CAP1", "10.00", "USD")

		responseType, err := ValidateCapture(capture, nil)

		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, NotFound)
	})

	Convey("A capture response with no capture entry is rejected", t, func() {
		capture := fixtures.CompletedCapture("ORD1", "CAP1", "10.00", "USD")
		capture.PurchaseUnits[0].Payments = nil

		responseType, err := ValidateCapture(capture, snapshot)

		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
	})
}

func TestUnitValidateSubscription(t *testing.T) {
	Convey("An active subscription at the recurring price passes", t, func() {
		product := fixtures.SubscriptionProduct("prod-1", "5.00")
		sub := fixtures.ActiveSubscription("SUB1", "PLAN1", "5.00", "USD")

		responseType, err := ValidateSubscription(sub, product, "")

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("A trial cycle for a product without a trial is rejected", t, func() {
		product := fixtures.SubscriptionProduct("prod-1", "5.00")
		sub := fixtures.TrialSubscription("SUB1", "PLAN1")

		responseType, err := ValidateSubscription(sub, product, "")

		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldContainSubstring, "configures no trial")
	})

	Convey("A trial cycle for a product with a trial passes", t, func() {
		product := fixtures.SubscriptionProduct("prod-1", "5.00")
		product.Subscription.TrialPrice = "0.00"
		product.Subscription.TrialPeriod = 7
		product.Subscription.TrialPeriodUnit = "DAY"
		sub := fixtures.TrialSubscription("SUB1", "PLAN1")

		responseType, err := ValidateSubscription(sub, product, "")

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("A first charge below the recurring price is rejected", t, func() {
		product := fixtures.SubscriptionProduct("prod-1", "5.00")
		sub := fixtures.ActiveSubscription("SUB1", "PLAN1", "1.00", "USD")

		responseType, err := ValidateSubscription(sub, product, "")

		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
	})

	Convey("An explicit expected price overrides the recurring price", t, func() {
		product := fixtures.SubscriptionProduct("prod-1", "5.00")
		sub := fixtures.ActiveSubscription("SUB1", "PLAN1", "8.00", "USD")

		responseType, err := ValidateSubscription(sub, product, "8.00")

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("A product without subscription terms is rejected", t, func() {
		product := &models.ProductDB{ID: "prod-1"}
		sub := fixtures.ActiveSubscription("SUB1", "PLAN1", "5.00", "USD")

		responseType, err := ValidateSubscription(sub, product, "")

		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
	})
}
