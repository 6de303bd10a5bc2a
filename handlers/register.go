package handlers

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/adilrabid/ppcp-checkout-api/config"
	"github.com/adilrabid/ppcp-checkout-api/dao"
	"github.com/adilrabid/ppcp-checkout-api/helpers"
	"github.com/adilrabid/ppcp-checkout-api/service"
)

var checkoutService *service.CheckoutService
var subscriptionService *service.SubscriptionService
var nonceService *helpers.NonceService
var appConfig *config.Config

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg *config.Config) {
	db := dao.NewGetMongoDatabase(cfg.MongoDBURL, cfg.Database)
	m := dao.NewMongoService(db, cfg.ProductsCollection, cfg.CustomersCollection, cfg.SalesCollection, cfg.CacheCollection)

	client, err := service.GetPayPalClient(*cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	publisher := &service.Publisher{}
	publisher.Register(service.EventPaymentProcessed, func(event service.TransactionEvent) error {
		return produceTransactionMessage(event.Record)
	})

	normalizer := &service.NormalizerService{Client: client, Config: cfg}
	dispatcher := &service.DispatcherService{DAO: m, Publisher: publisher}

	checkoutService = &service.CheckoutService{
		Client:     client,
		DAO:        m,
		Config:     cfg,
		Normalizer: normalizer,
		Dispatcher: dispatcher,
	}

	subscriptionService = &service.SubscriptionService{
		Client:     client,
		DAO:        m,
		Config:     cfg,
		Plans:      &service.PlanService{Client: client, DAO: m, Config: cfg},
		Normalizer: normalizer,
		Dispatcher: dispatcher,
	}

	nonceService = helpers.NewNonceService(cfg.NonceSecret)
	appConfig = cfg

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// All button callback routes share the storefront response contract, so one
	// subrouter covers them.
	checkoutRouter := mainRouter.PathPrefix("/checkout").Subrouter()
	checkoutRouter.HandleFunc("/session", HandleCheckoutSession).Methods("GET").Name("get-checkout-session")
	checkoutRouter.HandleFunc("/orders", HandleCreateOrder).Methods("POST").Name("create-order")
	checkoutRouter.HandleFunc("/orders/capture", HandleCaptureOrder).Methods("POST").Name("capture-order")
	checkoutRouter.HandleFunc("/buy-now/orders", HandleBuyNowOrder).Methods("POST").Name("create-buy-now-order")
	checkoutRouter.HandleFunc("/buy-now/orders/capture", HandleBuyNowCapture).Methods("POST").Name("capture-buy-now-order")
	checkoutRouter.HandleFunc("/subscriptions", HandleCreateSubscription).Methods("POST").Name("create-subscription")
	checkoutRouter.HandleFunc("/subscriptions/approve", HandleApproveSubscription).Methods("POST").Name("approve-subscription")

	checkoutRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
