package schema

import (
	"fmt"
	"strconv"
)

// FareTransferType mirrors fare_attributes.txt transfers column, which is
// nullable: blank means "unlimited transfers".
type FareTransferType struct {
	Unlimited bool
	Count     int
}

// FareAttribute represents a parsed row of fare_attributes.txt.
type FareAttribute struct {
	ID               string
	PriceRaw         string
	CurrencyType     string
	PaymentMethod    int
	Transfers        FareTransferType
	TransfersValid   bool
	AgencyID         string
	TransferDuration *int
}

func ParseFareAttribute(values map[string]string, row int) (FareAttribute, error) {
	fa := FareAttribute{
		ID:           values["fare_id"],
		PriceRaw:     values["price"],
		CurrencyType: values["currency_type"],
		AgencyID:     values["agency_id"],
	}
	if pm := values["payment_method"]; pm != "" {
		n, err := strconv.Atoi(pm)
		if err != nil {
			return FareAttribute{}, fmt.Errorf("row %d: invalid payment_method %q", row, pm)
		}
		fa.PaymentMethod = n
	}

	tr := values["transfers"]
	if tr == "" {
		fa.Transfers = FareTransferType{Unlimited: true}
		fa.TransfersValid = true
	} else {
		n, err := strconv.Atoi(tr)
		if err != nil || n < 0 || n > 2 {
			fa.TransfersValid = false
		} else {
			fa.Transfers = FareTransferType{Count: n}
			fa.TransfersValid = true
		}
	}

	if td := values["transfer_duration"]; td != "" {
		n, err := strconv.Atoi(td)
		if err == nil {
			fa.TransferDuration = &n
		}
	}
	return fa, nil
}
