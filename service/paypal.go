package service

import (
	"context"
	"fmt"
	"time"

	"github.com/plutov/paypal/v4"

	"github.com/adilrabid/ppcp-checkout-api/config"
)

// outboundTimeout bounds every call to PayPal. There is no automatic retry;
// the storefront resubmits on failure.
const outboundTimeout = 30 * time.Second

var client *paypal.Client

// GetPayPalClient returns a shared PayPal client for the environment named in
// config, authenticating on first use.
func GetPayPalClient(cfg config.Config) (*paypal.Client, error) {
	if client != nil {
		return client, nil
	}

	paypalAPIBase := getPayPalAPIBase(cfg.PaypalEnv)
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}

	clientID, secret := cfg.PaypalCredentials()

	c, err := paypal.NewClient(clientID, secret, paypalAPIBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	c.Client.Timeout = outboundTimeout
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}
	client = c
	return client, nil
}

// PayPalSDK is an interface for all the PayPal client methods that will be used
// in this service
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	CreateOrder(ctx context.Context, intent string, purchaseUnits []paypal.PurchaseUnitRequest, paymentSource *paypal.PaymentSource, appContext *paypal.ApplicationContext) (*paypal.Order, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
	CreateProduct(ctx context.Context, product paypal.Product) (*paypal.CreateProductResponse, error)
	CreateSubscriptionPlan(ctx context.Context, newPlan paypal.SubscriptionPlan) (*paypal.CreateSubscriptionPlanResponse, error)
	GetSubscriptionPlan(ctx context.Context, planID string) (*paypal.SubscriptionPlan, error)
	CreateSubscription(ctx context.Context, newSubscription paypal.SubscriptionBase) (*paypal.SubscriptionDetailResp, error)
	GetSubscriptionDetails(ctx context.Context, subscriptionID string) (*paypal.SubscriptionDetailResp, error)
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "sandbox":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}
