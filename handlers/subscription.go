package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/adilrabid/ppcp-checkout-api/models"
	"github.com/adilrabid/ppcp-checkout-api/utils"
)

// HandleCreateSubscription creates a PayPal subscription for a product,
// resolving or creating its billing plan first.
func HandleCreateSubscription(w http.ResponseWriter, req *http.Request) {

	var data models.CreateSubscriptionData
	if err := decodeButtonRequest(req, &data); err != nil {
		log.ErrorR(req, fmt.Errorf("error decoding create subscription request: [%v]", err))
		utils.WriteAjaxError(w, req, err.Error())
		return
	}

	subscriptionID, planID, _, err := subscriptionService.CreateSubscription(req, &data)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating subscription for product [%s]: [%v]", data.ProductID, err))
		utils.WriteAjaxError(w, req, err.Error())
		return
	}

	utils.WriteAjaxResponse(w, req, models.AjaxResponse{
		Success:        true,
		SubscriptionID: subscriptionID,
		PlanID:         planID,
	})
}

// HandleApproveSubscription records an approved subscription. The storefront
// forwards the raw subscription resource from the onApprove callback in a
// txn_data form field; when that is missing or unreadable the resource is
// fetched from PayPal instead.
func HandleApproveSubscription(w http.ResponseWriter, req *http.Request) {

	var data models.ApproveSubscriptionData
	if err := decodeButtonRequest(req, &data); err != nil {
		log.ErrorR(req, fmt.Errorf("error decoding approve subscription request: [%v]", err))
		utils.WriteAjaxError(w, req, err.Error())
		return
	}

	var resource *models.SubscriptionResource
	if raw := req.PostFormValue("txn_data"); raw != "" {
		resource = &models.SubscriptionResource{}
		if err := json.Unmarshal([]byte(raw), resource); err != nil {
			log.InfoR(req, "unreadable txn_data, falling back to subscription lookup", log.Data{
				"subscription_id": data.SubscriptionID,
			})
			resource = nil
		}
	}

	record, _, err := subscriptionService.ApproveSubscription(req, &data, resource)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error recording subscription [%s]: [%v]", data.SubscriptionID, err))
		utils.WriteAjaxError(w, req, err.Error())
		return
	}

	utils.WriteAjaxResponse(w, req, models.AjaxResponse{
		Success:        true,
		SubscriptionID: record.SubscrID,
		OrderID:        record.PaypalOrderID,
		RedirectURL:    appConfig.ReturnURL,
	})
}
