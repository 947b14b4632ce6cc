package domain

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

// Subscription is replaced as a whole on every refresh.
type Subscription struct {
	ID      string
	Product Plan
	Price   Price
	Status  SubscriptionStatus
}

type SubscriptionUpdate struct {
	PriceID       string
	PaymentMethod PaymentMethod
}
