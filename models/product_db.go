package models

// ProductDB is a catalog row. Subscription products carry the recurring and
// optional trial billing terms; PlanID/PlanMode record the PayPal billing plan
// created for the product and the environment mode it was created under.
type ProductDB struct {
	ID              string `bson:"_id"`
	Name            string `bson:"name"`
	Price           string `bson:"price"`
	Currency        string `bson:"currency,omitempty"`
	Digital         bool   `bson:"digital"`
	AvailableCopies *int   `bson:"available_copies,omitempty"`
	ShippingCost    string `bson:"shipping_cost,omitempty"`
	TaxRate         string `bson:"tax_rate,omitempty"`

	HasVariations      bool          `bson:"has_variations"`
	Variations         []VariationDB `bson:"variations,omitempty"`
	CustomPriceAllowed bool          `bson:"custom_price_allowed"`

	Subscription *SubscriptionTermsDB `bson:"subscription,omitempty"`

	// PlanID is only ever persisted for standard products. Variation and
	// custom price products get a throwaway plan per checkout attempt.
	PlanID   string `bson:"pp_subscription_plan_id,omitempty"`
	PlanMode string `bson:"pp_subscription_plan_mode,omitempty"`
}

// VariationDB is one selectable variation of a product with its own price.
type VariationDB struct {
	Name  string `bson:"name"`
	Price string `bson:"price"`
}

// SubscriptionTermsDB holds the billing cadence a plan is created from.
// Periods use PayPal interval units (DAY, WEEK, MONTH, YEAR).
type SubscriptionTermsDB struct {
	RecurringPrice      string `bson:"recurring_price"`
	RecurringPeriod     int    `bson:"recurring_period"`
	RecurringPeriodUnit string `bson:"recurring_period_unit"`
	RecurringCycles     int    `bson:"recurring_cycles"`

	TrialPrice      string `bson:"trial_price,omitempty"`
	TrialPeriod     int    `bson:"trial_period,omitempty"`
	TrialPeriodUnit string `bson:"trial_period_unit,omitempty"`
}

// HasTrial reports whether the product configures a trial period. Approvals
// reporting a TRIAL tenure for a product without one are rejected.
func (s *SubscriptionTermsDB) HasTrial() bool {
	return s != nil && s.TrialPeriod > 0
}
