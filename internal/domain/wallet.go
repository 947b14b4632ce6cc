package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const MainnetNetworkID uint64 = 1

type Token struct {
	Symbol   string
	Address  string
	Decimals int32
	Balance  decimal.Decimal
}

func FindToken(tokens []Token, symbol string) (Token, bool) {
	for _, token := range tokens {
		if strings.EqualFold(token.Symbol, symbol) {
			return token, true
		}
	}
	return Token{}, false
}

// BalanceSufficient reports whether the wallet can cover required in
// currency. The native balance must strictly exceed required, a token
// balance only has to match it. Bitcoin is never sufficient.
func BalanceSufficient(currency Currency, required, native decimal.Decimal, tokens []Token) bool {
	if !currency.SupportsInAppTransfer() {
		return false
	}
	if currency.IsNative() {
		return native.GreaterThan(required)
	}
	token, ok := FindToken(tokens, string(currency))
	if !ok {
		return false
	}
	return token.Balance.GreaterThanOrEqual(required)
}
