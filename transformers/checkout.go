package transformers

import (
	"strconv"

	"github.com/plutov/paypal/v4"
	"github.com/shopspring/decimal"

	"github.com/adilrabid/ppcp-checkout-api/models"
)

// PurchaseItems maps submitted cart lines to the PayPal purchase unit item
// list.
func PurchaseItems(items []models.CheckoutItem, currency string) []paypal.Item {
	out := make([]paypal.Item, 0, len(items))
	for _, item := range items {
		category := "PHYSICAL_GOODS"
		if item.Digital {
			category = "DIGITAL_GOODS"
		}
		out = append(out, paypal.Item{
			Name:     item.ItemName,
			SKU:      item.ItemNumber,
			Quantity: strconv.Itoa(item.Quantity),
			UnitAmount: &paypal.Money{
				Currency: currency,
				Value:    item.Price,
			},
			Category: category,
		})
	}
	return out
}

// SnapshotItems maps submitted cart lines to the normalized line items stored
// in the checkout snapshot. McGross becomes the line total, unit price times
// quantity.
func SnapshotItems(items []models.CheckoutItem, currency string) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		lineTotal := "0.00"
		if price, err := decimal.NewFromString(item.Price); err == nil {
			lineTotal = price.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2)
		}
		out = append(out, models.CartItem{
			ItemNumber: item.ItemNumber,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			McGross:    lineTotal,
			McCurrency: currency,
		})
	}
	return out
}
