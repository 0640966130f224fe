// Package points computes the loyalty score of a validated receipt. Eight
// additive rules, applied in fixed order; the order only shapes the
// explanatory breakdown, never the sum.
package points

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"tally/internal/receipt/models"
)

var (
	one     = decimal.NewFromInt(1)
	quarter = decimal.New(25, -2) // 0.25
	fifth   = decimal.New(2, -1)  // 0.2
)

// Calculate applies the scoring rules and returns the total alongside a
// human-readable breakdown of each contribution. The receipt is presumed to
// have passed validation; an empty trimmed description is not reachable
// here.
//
// The rules:
//  1. One point per alphanumeric character in the retailer name.
//  2. 50 points if the total is a round dollar amount.
//  3. 25 points if the total is a multiple of 0.25.
//  4. 5 points for every two items.
//  5. ceil(price * 0.2) points per item whose trimmed description length is
//     a multiple of 3.
//  6. 6 points if the purchase day of month is odd.
//  7. 10 points if the purchase time is in [14:00, 16:00).
func Calculate(r *models.Receipt) (int, []string) {
	total := 0
	breakdown := make([]string, 0, 8)

	retailerPoints := 0
	for _, c := range r.Retailer {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			retailerPoints++
		}
	}
	total += retailerPoints
	breakdown = append(breakdown, fmt.Sprintf(
		"%d points - retailer name has %d alphanumeric characters", retailerPoints, retailerPoints))

	if r.Total.Decimal().Mod(one).IsZero() {
		total += 50
		breakdown = append(breakdown, "50 points - total is a round dollar amount")
	}

	if r.Total.Decimal().Mod(quarter).IsZero() {
		total += 25
		breakdown = append(breakdown, "25 points - total is a multiple of 0.25")
	}

	pairPoints := (len(r.Items) / 2) * 5
	total += pairPoints
	breakdown = append(breakdown, fmt.Sprintf(
		"%d points - %d items (%d pairs @ 5 points each)", pairPoints, len(r.Items), len(r.Items)/2))

	for _, item := range r.Items {
		desc := strings.TrimSpace(item.ShortDescription)
		length := utf8.RuneCountInString(desc)
		if length%3 != 0 {
			continue
		}
		extra := int(item.Price.Decimal().Mul(fifth).Ceil().IntPart())
		total += extra
		breakdown = append(breakdown, fmt.Sprintf(
			"%d points - %q is %d characters (a multiple of 3), price %s * 0.2 rounded up",
			extra, desc, length, item.Price))
	}

	if r.PurchaseDate.Day()%2 == 1 {
		total += 6
		breakdown = append(breakdown, "6 points - purchase day is odd")
	}

	hour := r.PurchaseTime.Hour()
	if hour >= 14 && hour < 16 {
		total += 10
		breakdown = append(breakdown, fmt.Sprintf(
			"10 points - %s is between 2:00pm and 4:00pm", r.PurchaseTime))
	}

	return total, breakdown
}
