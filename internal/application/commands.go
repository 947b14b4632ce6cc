package application

import "github.com/bnema/files-billing-cli/internal/domain"

type PaymentChoice string

const (
	PaymentChoiceCard   PaymentChoice = "card"
	PaymentChoiceCrypto PaymentChoice = "crypto"
)

type SelectPlanCommand struct {
	PlanID   string          `field:"plan" validate:"required"`
	Interval domain.Interval `field:"interval" validate:"required,oneof=month year"`
}

type ChangePlanCommand struct {
	Choice PlanChoice
	Method PaymentChoice `field:"method" validate:"required,oneof=card crypto"`
}

// StartCryptoCommand starts paying InvoiceUUID, or the pending crypto
// invoice when it is empty. Price, when set, is used to create the charge
// if no invoice is pending yet.
type StartCryptoCommand struct {
	InvoiceUUID string
	Price       *domain.Price
}

type SelectCurrencyCommand struct {
	Currency domain.Currency `field:"currency" validate:"required"`
}

type InvoiceCommand struct {
	InvoiceUUID string `field:"invoice" validate:"required"`
}

type SetTokenCommand struct {
	Token string `field:"token" validate:"required"`
}
