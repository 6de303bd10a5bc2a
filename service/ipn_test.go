package service

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/plutov/paypal/v4"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/adilrabid/ppcp-checkout-api/config"
	"github.com/adilrabid/ppcp-checkout-api/fixtures"
	"github.com/adilrabid/ppcp-checkout-api/utils"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.PaypalEnv = "sandbox"
	return cfg
}

func TestUnitRecordFromCapture(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockPayPalSDK := NewMockPayPalSDK(mockCtrl)
	normalizer := &NormalizerService{Client: mockPayPalSDK, Config: testConfig()}
	req, _ := http.NewRequest("POST", "/checkout/orders/capture", nil)

	Convey("A completed capture flattens to a full record", t, func() {
		capture := fixtures.CompletedCapture("ORD1", "CAP1", "10.00", "USD")

		record := normalizer.RecordFromCapture(req, capture, CheckoutContext{
			Gateway:   CheckoutGateway,
			IPAddress: "10.0.0.1",
			Custom:    "ip=10.0.0.1",
			CartID:    "cart-1",
		})

		So(record.Complete(), ShouldBeTrue)
		So(record.TxnID, ShouldEqual, "CAP1")
		So(record.PaypalOrderID, ShouldEqual, "ORD1")
		So(record.Gateway, ShouldEqual, CheckoutGateway)
		So(record.TxnType, ShouldEqual, CheckoutTxnType)
		So(record.Status, ShouldEqual, "Completed")
		So(record.McGross, ShouldEqual, "10.00")
		So(record.McCurrency, ShouldEqual, "USD")
		So(record.PayerEmail, ShouldEqual, "jane.doe@example.com")
		So(record.FirstName, ShouldEqual, "Jane")
		So(record.LastName, ShouldEqual, "Doe")
		So(record.AddressCity, ShouldEqual, "Springfield")
		So(record.AddressCountry, ShouldEqual, "United States")
		So(record.IsLive, ShouldBeFalse)
		So(utils.ParseCustomVar(record.Custom)["paypal_order_id"], ShouldEqual, "ORD1")
	})

	Convey("A capture without a shipping address leaves the address fields empty", t, func() {
		capture := fixtures.CompletedCapture("ORD5", "CAP5", "10.00", "USD")
		capture.PurchaseUnits[0].Shipping = paypal.CapturedPurchaseUnitShipping{}

		record := normalizer.RecordFromCapture(req, capture, CheckoutContext{Gateway: CheckoutGateway})

		So(record.Complete(), ShouldBeTrue)
		So(record.AddressStreet, ShouldBeEmpty)
		So(record.Address, ShouldBeEmpty)
	})

	Convey("A capture without purchase units yields an incomplete record", t, func() {
		capture := &paypal.CaptureOrderResponse{
			ID:     "ORD2",
			Status: "COMPLETED",
			Payer: &paypal.PayerWithNameAndPhone{
				EmailAddress: "jane.doe@example.com",
				Name:         &paypal.CreateOrderPayerName{GivenName: "Jane", Surname: "Doe"},
			},
		}

		record := normalizer.RecordFromCapture(req, capture, CheckoutContext{Gateway: CheckoutGateway})

		So(record.Complete(), ShouldBeFalse)
		So(record.McGross, ShouldEqual, "0")
		So(record.McCurrency, ShouldBeEmpty)
	})

	Convey("A capture without a payer is enriched from an order lookup", t, func() {
		capture := fixtures.CompletedCapture("ORD3", "CAP3", "10.00", "USD")
		capture.Payer = nil

		mockPayPalSDK.EXPECT().GetOrder(gomock.Any(), "ORD3").Return(&paypal.Order{
			ID: "ORD3",
			Payer: &paypal.PayerWithNameAndPhone{
				EmailAddress: "looked.up@example.com",
				PayerID:      "PAYER999",
				Name:         &paypal.CreateOrderPayerName{GivenName: "Looked", Surname: "Up"},
			},
		}, nil)

		record := normalizer.RecordFromCapture(req, capture, CheckoutContext{Gateway: CheckoutGateway})

		So(record.PayerEmail, ShouldEqual, "looked.up@example.com")
		So(record.FirstName, ShouldEqual, "Looked")
	})

	Convey("A failed enrichment lookup degrades to empty payer fields", t, func() {
		capture := fixtures.CompletedCapture("ORD4", "CAP4", "10.00", "USD")
		capture.Payer = nil

		mockPayPalSDK.EXPECT().GetOrder(gomock.Any(), "ORD4").Return(nil, fmt.Errorf("error"))

		record := normalizer.RecordFromCapture(req, capture, CheckoutContext{Gateway: CheckoutGateway})

		So(record.Complete(), ShouldBeTrue)
		So(record.PayerEmail, ShouldBeEmpty)
	})
}

func TestUnitRecordFromSubscription(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockPayPalSDK := NewMockPayPalSDK(mockCtrl)
	normalizer := &NormalizerService{Client: mockPayPalSDK, Config: testConfig()}
	req, _ := http.NewRequest("POST", "/checkout/subscriptions/approve", nil)

	Convey("An active subscription flattens with the order id as txn id", t, func() {
		sub := fixtures.ActiveSubscription("SUB1", "PLAN1", "5.00", "USD")

		record := normalizer.RecordFromSubscription(req, sub, "ORD1", CheckoutContext{
			ItemNumber: "prod-1",
			ItemName:   "Monthly Plan",
		})

		So(record.Complete(), ShouldBeTrue)
		So(record.TxnID, ShouldEqual, "ORD1")
		So(record.SubscrID, ShouldEqual, "SUB1")
		So(record.PlanID, ShouldEqual, "PLAN1")
		So(record.Gateway, ShouldEqual, SubscriptionGateway)
		So(record.TxnType, ShouldEqual, SubscriptionTxnType)
		So(record.Status, ShouldEqual, "Active")
		So(record.McGross, ShouldEqual, "5.00")
		So(record.IsTrialTxn, ShouldBeFalse)
	})

	Convey("A trial first cycle marks the record as a trial transaction", t, func() {
		sub := fixtures.TrialSubscription("SUB2", "PLAN1")

		record := normalizer.RecordFromSubscription(req, sub, "ORD2", CheckoutContext{})

		So(record.IsTrialTxn, ShouldBeTrue)
	})

	Convey("A missing subscriber is backfilled from a details lookup", t, func() {
		sub := fixtures.ActiveSubscription("SUB3", "PLAN1", "5.00", "USD")
		sub.Subscriber = nil

		mockPayPalSDK.EXPECT().GetSubscriptionDetails(gomock.Any(), "SUB3").Return(&paypal.SubscriptionDetailResp{
			SubscriptionBase: paypal.SubscriptionBase{
				Subscriber: &paypal.Subscriber{
					EmailAddress: "looked.up@example.com",
					Name:         paypal.CreateOrderPayerName{GivenName: "Looked", Surname: "Up"},
				},
			},
		}, nil)

		record := normalizer.RecordFromSubscription(req, sub, "ORD3", CheckoutContext{})

		So(record.PayerEmail, ShouldEqual, "looked.up@example.com")
		So(record.LastName, ShouldEqual, "Up")
	})
}
