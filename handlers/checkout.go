package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/adilrabid/ppcp-checkout-api/models"
	"github.com/adilrabid/ppcp-checkout-api/service"
	"github.com/adilrabid/ppcp-checkout-api/utils"
)

// HandleCheckoutSession returns the client side bootstrap for the smart
// buttons: the client id for the configured environment mode and a nonce for
// the follow-up callbacks. An optional product_id query parameter is checked
// against the catalog so a dead product link fails before PayPal is loaded.
func HandleCheckoutSession(w http.ResponseWriter, req *http.Request) {

	if productID := req.URL.Query().Get("product_id"); productID != "" {
		product, err := checkoutService.DAO.GetProduct(productID)
		if err != nil {
			log.ErrorR(req, fmt.Errorf("error reading product [%s]: [%v]", productID, err))
			utils.WriteAjaxError(w, req, "error looking up product")
			return
		}
		if product == nil {
			utils.WriteAjaxError(w, req, "product not found")
			return
		}
	}

	clientID, _ := appConfig.PaypalCredentials()

	utils.WriteAjaxResponse(w, req, models.AjaxResponse{
		Success:  true,
		ClientID: clientID,
		EnvMode:  appConfig.PaypalEnv,
		Nonce:    nonceService.Generate(nonceAction),
	})
}

// HandleCreateOrder creates a PayPal order for a cart checkout.
func HandleCreateOrder(w http.ResponseWriter, req *http.Request) {

	var data models.CreateOrderData
	if err := decodeButtonRequest(req, &data); err != nil {
		log.ErrorR(req, fmt.Errorf("error decoding create order request: [%v]", err))
		utils.WriteAjaxError(w, req, err.Error())
		return
	}

	orderID, _, err := checkoutService.CreateOrder(req, &data)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating order for cart [%s]: [%v]", data.CartID, err))
		utils.WriteAjaxError(w, req, err.Error())
		return
	}

	utils.WriteAjaxResponse(w, req, models.AjaxResponse{Success: true, OrderID: orderID})
}

// HandleCaptureOrder captures an approved cart checkout order and records the
// transaction.
func HandleCaptureOrder(w http.ResponseWriter, req *http.Request) {
	captureOrder(w, req, service.CheckoutGateway)
}

// HandleBuyNowOrder creates a PayPal order for a single-product buy now
// checkout.
func HandleBuyNowOrder(w http.ResponseWriter, req *http.Request) {

	var data models.BuyNowOrderData
	if err := decodeButtonRequest(req, &data); err != nil {
		log.ErrorR(req, fmt.Errorf("error decoding buy now request: [%v]", err))
		utils.WriteAjaxError(w, req, err.Error())
		return
	}

	orderID, _, err := checkoutService.BuyNowOrder(req, &data)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating buy now order for product [%s]: [%v]", data.ProductID, err))
		utils.WriteAjaxError(w, req, err.Error())
		return
	}

	utils.WriteAjaxResponse(w, req, models.AjaxResponse{Success: true, OrderID: orderID})
}

// HandleBuyNowCapture captures an approved buy now order and records the
// transaction.
func HandleBuyNowCapture(w http.ResponseWriter, req *http.Request) {
	captureOrder(w, req, service.BuyNowGateway)
}

func captureOrder(w http.ResponseWriter, req *http.Request, gateway string) {

	var data models.CaptureOrderData
	if err := decodeButtonRequest(req, &data); err != nil {
		log.ErrorR(req, fmt.Errorf("error decoding capture request: [%v]", err))
		utils.WriteAjaxError(w, req, err.Error())
		return
	}

	record, responseType, err := checkoutService.CaptureOrder(req, &data, gateway)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error capturing order [%s]: [%v]", data.OrderID, err))
		utils.WriteAjaxError(w, req, err.Error())
		return
	}

	// A replayed capture is reported as success so the buyer still lands on
	// the thank you page.
	if responseType == service.Duplicate {
		log.InfoR(req, "duplicate capture callback", log.Data{"order_id": data.OrderID})
	}

	utils.WriteAjaxResponse(w, req, models.AjaxResponse{
		Success:     true,
		OrderID:     record.PaypalOrderID,
		CaptureID:   record.TxnID,
		RedirectURL: appConfig.ReturnURL,
	})
}
