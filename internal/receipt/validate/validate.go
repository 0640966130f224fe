// Package validate checks the business invariants of a parsed receipt. All
// violations are collected before the receipt is rejected so a single round
// trip surfaces every problem.
package validate

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"tally/internal/receipt/models"
	dErrors "tally/pkg/domain-errors"
)

// totalTolerance is the maximum allowed gap between the stated total and
// the sum of item prices. Inclusive: a gap of exactly 0.01 passes.
var totalTolerance = decimal.New(1, -2)

// Receipt validates the full invariant set. On failure it returns a
// CodeValidation domain error carrying the complete ordered list of
// violation messages, never just the first.
func Receipt(r *models.Receipt) error {
	var violations []string

	checkStringNotEmpty(r.Retailer, "Retailer", &violations)
	checkItemsNotEmpty(r.Items, "Items", &violations)
	checkAmountPositive(r.Total, "Total", &violations)

	// With no items there is nothing to iterate or sum.
	if len(r.Items) > 0 {
		sum := decimal.Zero
		for i, item := range r.Items {
			checkStringNotEmpty(item.ShortDescription, fmt.Sprintf("Items[%d].ShortDescription", i), &violations)
			checkAmountPositive(item.Price, fmt.Sprintf("Items[%d].Price", i), &violations)
			sum = sum.Add(item.Price.Decimal())
		}

		if r.Total.Decimal().Sub(sum).Abs().GreaterThan(totalTolerance) {
			violations = append(violations, fmt.Sprintf(
				"Total (%s) does not match the sum of item prices (%s).",
				r.Total, models.MoneyFromDecimal(sum)))
		}
	}

	if len(violations) > 0 {
		return dErrors.NewValidation(violations)
	}
	return nil
}

func checkStringNotEmpty(value, field string, violations *[]string) {
	if strings.TrimSpace(value) == "" {
		*violations = append(*violations, field+" cannot be empty or whitespace.")
	}
}

func checkItemsNotEmpty(items []models.Item, field string, violations *[]string) {
	if len(items) == 0 {
		*violations = append(*violations, field+" must contain at least one item.")
	}
}

func checkAmountPositive(amount models.Money, field string, violations *[]string) {
	if !amount.IsPositive() {
		*violations = append(*violations, field+" must be greater than 0.")
	}
}
