package domain

import "errors"

type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindRemoteCall    ErrorKind = "remote_call"
	KindStateMismatch ErrorKind = "state_mismatch"
	KindUserAbandoned ErrorKind = "user_abandoned"
)

// Error is the closed error taxonomy shared by every flow. Adapters build it
// at the collaborator boundary; flows only look at Kind and Code.
type Error struct {
	Kind    ErrorKind
	Code    string
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	message := e.Message
	if message == "" && e.Err != nil {
		message = e.Err.Error()
	}
	if message == "" {
		message = string(e.Kind)
	}
	if e.Field != "" {
		return e.Field + ": " + message
	}
	return message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same kind and code. A target field, when
// set, must match too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind || e.Code != t.Code {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}

var (
	ErrCardInputsInvalid = &Error{Kind: KindValidation, Code: "card_inputs_invalid", Message: "Card inputs invalid"}

	ErrPaymentMethodAddFailed = &Error{Kind: KindRemoteCall, Code: "payment_method_add_failed", Message: "Failed to add payment method"}
	ErrCreateChargeFailed     = &Error{Kind: KindRemoteCall, Code: "charge_failed", Message: "There was a problem creating a charge"}
	ErrNoCryptoPayment        = &Error{Kind: KindRemoteCall, Code: "no_crypto_payment", Message: "invoice has no crypto payment methods"}
	ErrPaymentSDKUnavailable  = &Error{Kind: KindStateMismatch, Code: "payment_sdk_unavailable", Message: "card payments are not configured"}

	ErrInvoiceNotFound     = &Error{Kind: KindStateMismatch, Code: "invoice_not_found", Message: "invoice not found"}
	ErrNoPendingInvoice    = &Error{Kind: KindStateMismatch, Code: "no_pending_invoice", Message: "no open crypto invoice"}
	ErrNoActivePayment     = &Error{Kind: KindStateMismatch, Code: "no_active_payment", Message: "no crypto payment in progress"}
	ErrNoCurrencySelected  = &Error{Kind: KindStateMismatch, Code: "no_currency_selected", Message: "no currency selected"}
	ErrPaymentExpired      = &Error{Kind: KindStateMismatch, Code: "payment_expired", Message: "payment expired"}
	ErrNoWalletConnected   = &Error{Kind: KindStateMismatch, Code: "no_wallet", Message: "no wallet connected"}
	ErrNetworkMismatch     = &Error{Kind: KindStateMismatch, Code: "network_mismatch", Message: "wallet is connected to the wrong network"}
	ErrInsufficientBalance = &Error{Kind: KindStateMismatch, Code: "insufficient_balance", Message: "insufficient wallet balance"}
	ErrUnsupportedTransfer = &Error{Kind: KindStateMismatch, Code: "unsupported_transfer", Message: "in-app transfer is not supported for this currency"}
	ErrTransferInProgress  = &Error{Kind: KindStateMismatch, Code: "transfer_in_progress", Message: "a transfer is already in progress"}
	ErrNoSubscription      = &Error{Kind: KindStateMismatch, Code: "no_subscription", Message: "no active subscription"}
	ErrNoDefaultCard       = &Error{Kind: KindStateMismatch, Code: "no_default_card", Message: "no default card"}
	ErrCryptoInvoice       = &Error{Kind: KindStateMismatch, Code: "crypto_invoice", Message: "crypto invoices are paid through the crypto flow"}
	ErrInvalidFlowState    = &Error{Kind: KindStateMismatch, Code: "invalid_flow_state", Message: "action not allowed in the current state"}
	ErrNotAuthenticated    = &Error{Kind: KindStateMismatch, Code: "not_authenticated", Message: "no API token stored"}

	ErrFlowReset = &Error{Kind: KindUserAbandoned, Code: "flow_reset", Message: "flow reset"}
)

var (
	ErrCryptoSessionNotFound = errors.New("crypto session not found")
	ErrSecretNotFound        = errors.New("secret not found")
)

// Wrap returns a copy of sentinel carrying err as its cause.
func Wrap(sentinel *Error, err error) *Error {
	return &Error{
		Kind:    sentinel.Kind,
		Code:    sentinel.Code,
		Field:   sentinel.Field,
		Message: sentinel.Message,
		Err:     err,
	}
}

func ValidationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Code: "invalid_" + field, Field: field, Message: message}
}

func RemoteCallFailure(code, message string, err error) *Error {
	if code == "" {
		code = "remote_error"
	}
	return &Error{Kind: KindRemoteCall, Code: code, Message: message, Err: err}
}

func Abandoned(message string) *Error {
	return &Error{Kind: KindUserAbandoned, Code: ErrFlowReset.Code, Message: message}
}

// KindOf reports the taxonomy kind of err, or "" when err carries none.
func KindOf(err error) ErrorKind {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Kind
	}
	return ""
}

// CodeOf reports the collaborator code of err, or "" when err carries none.
func CodeOf(err error) string {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Code
	}
	return ""
}

