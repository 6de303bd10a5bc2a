package service

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/adilrabid/ppcp-checkout-api/dao"
	"github.com/adilrabid/ppcp-checkout-api/models"
)

func testRecord() *models.TransactionRecord {
	return &models.TransactionRecord{
		Gateway:       CheckoutGateway,
		TxnType:       CheckoutTxnType,
		TxnID:         "CAP1",
		PaypalOrderID: "ORD1",
		Status:        "Completed",
		McGross:       "10.00",
		McCurrency:    "USD",
		Quantity:      1,
		PayerEmail:    "jane.doe@example.com",
		FirstName:     "Jane",
		LastName:      "Doe",
		ItemNumber:    "prod-1",
		ItemName:      "Widget",
	}
}

func TestUnitDispatcherProcess(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("A new transaction writes one ledger row pair per item and publishes one event", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		var events []TransactionEvent
		publisher := &Publisher{}
		publisher.Register(EventPaymentProcessed, func(event TransactionEvent) error {
			events = append(events, event)
			return nil
		})
		dispatcher := &DispatcherService{DAO: mockDAO, Publisher: publisher}

		items := []models.CartItem{
			{ItemNumber: "prod-1", ItemName: "Widget", Quantity: 2, McGross: "6.00", McCurrency: "USD"},
			{ItemNumber: "prod-2", ItemName: "Gadget", Quantity: 1, McGross: "4.00", McCurrency: "USD"},
		}

		mockDAO.EXPECT().TransactionProcessed("CAP1", "jane.doe@example.com", "ORD1").Return(false, nil)
		mockDAO.EXPECT().CreateCustomerSale(gomock.Any()).Return(nil).Times(2)
		mockDAO.EXPECT().CreateSaleStat(gomock.Any()).Return(nil).Times(2)

		req, _ := http.NewRequest("POST", "/checkout/orders/capture", nil)
		responseType, err := dispatcher.Process(req, testRecord(), items)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(events, ShouldHaveLength, 1)
		So(events[0].Record.TxnID, ShouldEqual, "CAP1")
		So(events[0].Items, ShouldHaveLength, 2)
	})

	Convey("A transaction already recorded is a no-op duplicate", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		publisher := &Publisher{}
		published := false
		publisher.Register(EventPaymentProcessed, func(TransactionEvent) error {
			published = true
			return nil
		})
		dispatcher := &DispatcherService{DAO: mockDAO, Publisher: publisher}

		mockDAO.EXPECT().TransactionProcessed("CAP1", "jane.doe@example.com", "ORD1").Return(true, nil)

		req, _ := http.NewRequest("POST", "/checkout/orders/capture", nil)
		responseType, err := dispatcher.Process(req, testRecord(), nil)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Duplicate)
		So(published, ShouldBeFalse)
	})

	Convey("An incomplete record is rejected before the duplicate check", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		dispatcher := &DispatcherService{DAO: mockDAO}

		record := testRecord()
		record.TxnID = ""

		req, _ := http.NewRequest("POST", "/checkout/orders/capture", nil)
		responseType, err := dispatcher.Process(req, record, nil)

		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, InvalidData)
	})

	Convey("A duplicate check failure fails the dispatch", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		dispatcher := &DispatcherService{DAO: mockDAO}

		mockDAO.EXPECT().TransactionProcessed("CAP1", "jane.doe@example.com", "ORD1").Return(false, fmt.Errorf("error"))

		req, _ := http.NewRequest("POST", "/checkout/orders/capture", nil)
		responseType, err := dispatcher.Process(req, testRecord(), nil)

		So(err, ShouldNotBeNil)
		So(responseType, ShouldEqual, Error)
	})

	Convey("Without items one row pair is synthesized from the record", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		dispatcher := &DispatcherService{DAO: mockDAO}

		mockDAO.EXPECT().TransactionProcessed("CAP1", "jane.doe@example.com", "ORD1").Return(false, nil)
		mockDAO.EXPECT().CreateCustomerSale(gomock.Any()).DoAndReturn(func(sale *models.CustomerSaleDB) error {
			So(sale.PurchasedProductID, ShouldEqual, "prod-1")
			So(sale.SaleAmount, ShouldEqual, "10.00")
			return nil
		})
		mockDAO.EXPECT().CreateSaleStat(gomock.Any()).Return(nil)

		req, _ := http.NewRequest("POST", "/checkout/orders/capture", nil)
		responseType, err := dispatcher.Process(req, testRecord(), nil)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("A failed insert is retried once with re-encoded text", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		dispatcher := &DispatcherService{DAO: mockDAO}

		mockDAO.EXPECT().TransactionProcessed("CAP1", "jane.doe@example.com", "ORD1").Return(false, nil)
		gomock.InOrder(
			mockDAO.EXPECT().CreateCustomerSale(gomock.Any()).Return(fmt.Errorf("invalid encoding")),
			mockDAO.EXPECT().CreateCustomerSale(gomock.Any()).Return(nil),
		)
		mockDAO.EXPECT().CreateSaleStat(gomock.Any()).Return(nil)

		req, _ := http.NewRequest("POST", "/checkout/orders/capture", nil)
		responseType, err := dispatcher.Process(req, testRecord(), nil)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("A row that fails both inserts is dropped without failing the dispatch", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		dispatcher := &DispatcherService{DAO: mockDAO}

		mockDAO.EXPECT().TransactionProcessed("CAP1", "jane.doe@example.com", "ORD1").Return(false, nil)
		mockDAO.EXPECT().CreateCustomerSale(gomock.Any()).Return(fmt.Errorf("error")).Times(2)

		req, _ := http.NewRequest("POST", "/checkout/orders/capture", nil)
		responseType, err := dispatcher.Process(req, testRecord(), nil)

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})
}
