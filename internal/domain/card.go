package domain

import (
	"fmt"
	"strings"
)

type CardField string

const (
	CardFieldNumber CardField = "number"
	CardFieldExpiry CardField = "expiry"
	CardFieldCVC    CardField = "cvc"
)

// CardDetails are handed straight to the payment SDK. They are never stored
// or logged.
type CardDetails struct {
	Number   string
	ExpMonth int64
	ExpYear  int64
	CVC      string
}

type DefaultCard struct {
	ID       string
	Brand    string
	LastFour string
	ExpMonth int
	ExpYear  int
}

func (c DefaultCard) Label() string {
	brand := strings.TrimSpace(c.Brand)
	if brand == "" {
		brand = "card"
	}
	if c.LastFour == "" {
		return brand
	}
	label := fmt.Sprintf("%s •••• %s", brand, c.LastFour)
	if c.ExpMonth > 0 && c.ExpYear > 0 {
		label += fmt.Sprintf(" (%02d/%d)", c.ExpMonth, c.ExpYear%100)
	}
	return label
}

type SetupIntent struct {
	Secret string
}
