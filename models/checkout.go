package models

// The storefront button callbacks POST form-encoded requests with a `data`
// field carrying one of the JSON payloads below, plus a `nonce` field. The
// response is always HTTP 200 with a success flag.

// CheckoutItem is one cart line as submitted by the storefront. Price is the
// unit price as a decimal string; it is validated against the catalog before
// any PayPal call is made.
type CheckoutItem struct {
	ItemNumber string `json:"item_number" validate:"required"`
	ItemName   string `json:"item_name"   validate:"required"`
	Quantity   int    `json:"quantity"    validate:"required,gt=0"`
	Price      string `json:"price"       validate:"required"`
	Digital    bool   `json:"digital"`
}

// CreateOrderData is the payload for the cart checkout create-order action.
type CreateOrderData struct {
	CartID string         `json:"cart_id" validate:"required"`
	Custom string         `json:"custom"`
	Items  []CheckoutItem `json:"items" validate:"required,min=1,dive"`
}

// CaptureOrderData is the payload for both capture actions.
type CaptureOrderData struct {
	OrderID   string `json:"order_id" validate:"required"`
	ProductID string `json:"product_id"`
}

// BuyNowOrderData is the payload for the buy now create-order action. Amount
// carries the final submitted price including any variation or custom price
// component; CustomPrice is the raw custom price input when the product allows
// name-your-price checkout.
type BuyNowOrderData struct {
	ProductID   string `json:"product_id" validate:"required"`
	ItemName    string `json:"item_name"`
	Amount      string `json:"amount"`
	CustomPrice string `json:"custom_price"`
	Custom      string `json:"custom"`
}

// CreateSubscriptionData is the payload for the subscription create action.
type CreateSubscriptionData struct {
	ProductID   string `json:"product_id" validate:"required"`
	ItemName    string `json:"item_name"`
	Amount      string `json:"amount"`
	CustomPrice string `json:"custom_price"`
	Custom      string `json:"custom"`
}

// ApproveSubscriptionData is the payload for the subscription onApprove
// action. OrderID is the PayPal order id reported by the approval callback; it
// stands in for the capture id on subscription records.
type ApproveSubscriptionData struct {
	SubscriptionID string `json:"subscription_id" validate:"required"`
	OrderID        string `json:"order_id"`
	ProductID      string `json:"product_id" validate:"required"`
	Custom         string `json:"custom"`
}

// AjaxResponse is the uniform response envelope. Error conditions set Success
// to false and describe the problem in ErrMsg; HTTP status is always 200.
type AjaxResponse struct {
	Success        bool   `json:"success"`
	ErrMsg         string `json:"err_msg,omitempty"`
	OrderID        string `json:"order_id,omitempty"`
	CaptureID      string `json:"capture_id,omitempty"`
	SubscriptionID string `json:"subscription_id,omitempty"`
	PlanID         string `json:"plan_id,omitempty"`
	ClientID       string `json:"client_id,omitempty"`
	EnvMode        string `json:"env_mode,omitempty"`
	Nonce          string `json:"nonce,omitempty"`
	RedirectURL    string `json:"redirect_url,omitempty"`
}
