package form

import (
	"strconv"
	"time"

	"asset-registry/internal/models"
)

// dateLayout is what HTML date inputs post; payloads re-encode to RFC 3339.
const dateLayout = "2006-01-02"

// Values holds the scalar form fields exactly as submitted. Everything stays
// a string until validation and payload building give it a type, so an
// invalid submission can be re-rendered without losing the user's input.
type Values struct {
	Name          string
	Code          string
	Category      string
	CWIPInvoiceID string
	Location      string
	Status        string
	Condition     string
	Brand         string
	Model         string
	LinkedAsset   string
	Description   string

	VendorName    string
	PONumber      string
	InvoiceDate   string
	InvoiceNo     string
	PurchaseDate  string
	PurchasePrice string
	Ownership     string

	CapitalizationPrice          string
	CapitalizationDate           string
	EndOfLife                    string
	DepreciationPercent          string
	AccumulatedDepreciation      string
	ScrapValue                   string
	IncomeTaxDepreciationPercent string
}

func valuesFromAsset(a models.Asset) Values {
	return Values{
		Name:          a.Name,
		Code:          a.Code,
		Category:      string(a.Category),
		CWIPInvoiceID: a.CWIPInvoiceID,
		Location:      a.Location,
		Status:        string(a.Status),
		Condition:     string(a.Condition),
		Brand:         a.Brand,
		Model:         a.Model,
		LinkedAsset:   a.LinkedAsset,
		Description:   a.Description,

		VendorName:    a.VendorName,
		PONumber:      a.PONumber,
		InvoiceDate:   formDate(a.InvoiceDate),
		InvoiceNo:     a.InvoiceNo,
		PurchaseDate:  formDate(a.PurchaseDate),
		PurchasePrice: formNumber(a.PurchasePrice),
		Ownership:     string(a.Ownership),

		CapitalizationPrice:          formNumber(a.CapitalizationPrice),
		CapitalizationDate:           formDate(a.CapitalizationDate),
		EndOfLife:                    formDate(a.EndOfLife),
		DepreciationPercent:          formNumber(a.DepreciationPercent),
		AccumulatedDepreciation:      formNumber(a.AccumulatedDepreciation),
		ScrapValue:                   formNumber(a.ScrapValue),
		IncomeTaxDepreciationPercent: formNumber(a.IncomeTaxDepreciationPercent),
	}
}

func formDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func formNumber(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
