package form

import (
	"strconv"
	"strings"
	"time"
)

// Violations maps a form field name to its blocking message. All rules run;
// nothing short-circuits, so the template can mark every offending field in
// one pass.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Validate checks the scalar fields against the registry's rules. now is
// passed in so the date bounds are testable.
func (vals Values) Validate(now time.Time) Violations {
	v := Violations{}

	required(v, "name", vals.Name, "Asset Name is required")
	required(v, "code", vals.Code, "Asset Code is required")
	required(v, "category", vals.Category, "Category is required")
	required(v, "location", vals.Location, "Location is required")
	required(v, "status", vals.Status, "Status is required")
	required(v, "condition", vals.Condition, "Condition is required")
	required(v, "ownership", vals.Ownership, "Ownership is required")
	required(v, "capitalizationDate", vals.CapitalizationDate, "Capitalization Date is required")

	maxLen(v, "name", vals.Name, 100)
	maxLen(v, "cwipInvoiceId", vals.CWIPInvoiceID, 50)
	maxLen(v, "brand", vals.Brand, 50)
	maxLen(v, "model", vals.Model, 50)
	maxLen(v, "description", vals.Description, 5000)
	maxLen(v, "poNumber", vals.PONumber, 20)

	nonNegative(v, "purchasePrice", vals.PurchasePrice)
	nonNegative(v, "capitalizationPrice", vals.CapitalizationPrice)
	nonNegative(v, "accumulatedDepreciation", vals.AccumulatedDepreciation)
	nonNegative(v, "scrapValue", vals.ScrapValue)
	percent(v, "depreciationPercent", vals.DepreciationPercent)
	percent(v, "incomeTaxDepreciationPercent", vals.IncomeTaxDepreciationPercent)

	dateField(v, "invoiceDate", vals.InvoiceDate)
	dateField(v, "purchaseDate", vals.PurchaseDate)

	// Date inputs carry day precision: a capitalization date is in the
	// future once its midnight is past now, an end of life is in the past
	// only when its whole day is over. "Today" passes both bounds.
	if d, ok := dateField(v, "capitalizationDate", vals.CapitalizationDate); ok && d.After(now) {
		v["capitalizationDate"] = "Cannot be in the future"
	}
	if d, ok := dateField(v, "endOfLife", vals.EndOfLife); ok && endOfDay(d).Before(now) {
		v["endOfLife"] = "Cannot be in the past"
	}

	return v
}

func required(v Violations, field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		v[field] = msg
	}
}

func maxLen(v Violations, field, value string, n int) {
	if _, taken := v[field]; taken {
		return
	}
	if len([]rune(value)) > n {
		v[field] = "Max " + strconv.Itoa(n) + " characters"
	}
}

func nonNegative(v Violations, field, value string) {
	f, ok := number(v, field, value)
	if ok && f < 0 {
		v[field] = "Must be positive"
	}
}

func percent(v Violations, field, value string) {
	f, ok := number(v, field, value)
	if !ok {
		return
	}
	if f < 0 {
		v[field] = "Must be positive"
	} else if f > 100 {
		v[field] = "Max 100%"
	}
}

func number(v Violations, field, value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		v[field] = "Must be a number"
		return 0, false
	}
	return f, true
}

func dateField(v Violations, field, value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		v[field] = "Invalid date"
		return time.Time{}, false
	}
	return d, true
}

func endOfDay(d time.Time) time.Time {
	return d.Add(24*time.Hour - time.Nanosecond)
}
