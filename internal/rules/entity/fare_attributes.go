package entity

import (
	"golang.org/x/text/currency"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/model"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/issue"
)

// FareAttributes emits MissingPrice/InvalidCurrency/InvalidTransfers/
// InvalidTransferDuration for each fare_attributes.txt row (spec §4.3).
func FareAttributes(m *model.Model) []issue.Issue {
	var issues []issue.Issue
	for _, fa := range m.FareAttributes {
		if fa.PriceRaw == "" {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.MissingPrice, fa.ID, issue.ObjectFare, fa.ID).
				WithDetails("fare_attributes row has no price"))
		}
		if !isValidCurrency(fa.CurrencyType) {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.InvalidCurrency, fa.ID, issue.ObjectFare, fa.ID).
				WithDetails("currency_type "+fa.CurrencyType+" is not a recognized ISO 4217 code"))
		}
		if !fa.TransfersValid {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.InvalidTransfers, fa.ID, issue.ObjectFare, fa.ID).
				WithDetails("transfers value is not 0, 1, 2, or blank"))
		}
		if fa.TransferDuration != nil && *fa.TransferDuration < 0 {
			issues = append(issues, *issue.NewWithObject(issue.Error, issue.InvalidTransferDuration, fa.ID, issue.ObjectFare, fa.ID).
				WithDetails("transfer_duration is negative"))
		}
	}
	return issues
}

func isValidCurrency(code string) bool {
	_, err := currency.ParseISO(code)
	return err == nil
}
