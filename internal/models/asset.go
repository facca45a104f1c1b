package models

import (
	"encoding/base64"
	"strings"
	"time"
)

// Asset mirrors the record shape of the remote registry API. Field names in
// the JSON tags are the API's, not ours; do not rename them.
type Asset struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Code     string   `json:"code"`
	Category Category `json:"category"`

	CWIPInvoiceID string    `json:"cwipInvoiceId,omitempty"`
	Location      string    `json:"location"`
	Status        Status    `json:"status"`
	Condition     Condition `json:"condition"`
	Brand         string    `json:"brand,omitempty"`
	Model         string    `json:"model,omitempty"`
	LinkedAsset   string    `json:"linkedAsset,omitempty"`
	Description   string    `json:"description,omitempty"`

	VendorName    string     `json:"vendorName,omitempty"`
	PONumber      string     `json:"poNumber,omitempty"`
	InvoiceDate   *time.Time `json:"invoiceDate,omitempty"`
	InvoiceNo     string     `json:"invoiceNo,omitempty"`
	PurchaseDate  *time.Time `json:"purchaseDate,omitempty"`
	PurchasePrice *float64   `json:"purchasePrice,omitempty"`
	Ownership     Ownership  `json:"ownership"`

	CapitalizationPrice          *float64   `json:"capitalizationPrice,omitempty"`
	CapitalizationDate           *time.Time `json:"capitalizationDate,omitempty"`
	EndOfLife                    *time.Time `json:"endOfLife,omitempty"`
	DepreciationPercent          *float64   `json:"depreciationPercent,omitempty"`
	AccumulatedDepreciation      *float64   `json:"accumulatedDepreciation,omitempty"`
	ScrapValue                   *float64   `json:"scrapValue,omitempty"`
	IncomeTaxDepreciationPercent *float64   `json:"incomeTaxDepreciationPercent,omitempty"`

	Images         []Image        `json:"images,omitempty"`
	Files          []FileRef      `json:"files,omitempty"`
	FileCategories []FileCategory `json:"fileCategories,omitempty"`
}

// Image is a persisted image reference. The API is inconsistent about which
// of the three location fields it fills, so display resolution tries them in
// order.
type Image struct {
	URL          string `json:"url,omitempty"`
	Path         string `json:"path,omitempty"`
	RelativePath string `json:"relativePath,omitempty"`
	Name         string `json:"name,omitempty"`
}

// FileRef is a persisted document reference.
type FileRef struct {
	Path         string `json:"path,omitempty"`
	RelativePath string `json:"relativePath,omitempty"`
}

const placeholderSVG = `<svg width="80" height="80" viewBox="0 0 80 80" fill="none" xmlns="http://www.w3.org/2000/svg">` +
	`<rect width="80" height="80" fill="#f3f4f6"/>` +
	`<path d="M40 25C35.5 25 32 28.5 32 33C32 35.5 33.5 37.5 35.5 38.5L37 39.5V45H43V39.5L44.5 38.5C46.5 37.5 48 35.5 48 33C48 28.5 44.5 25 40 25Z" fill="#6b7280"/>` +
	`<circle cx="40" cy="50" r="2" fill="#6b7280"/>` +
	`<text x="40" y="70" text-anchor="middle" font-family="Arial" font-size="8" fill="#6b7280">No Image</text>` +
	`</svg>`

// PlaceholderImageURL is the deterministic stand-in for a broken or missing
// image reference.
func PlaceholderImageURL() string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(placeholderSVG))
}

// DisplayURL resolves an image reference to something a browser can load.
// Absolute URLs win, stored paths are resolved against the API base, and a
// reference with no usable location falls back to the placeholder.
func (img Image) DisplayURL(base string) string {
	switch {
	case img.URL != "":
		return img.URL
	case img.Path != "":
		return resolveStoredPath(img.Path, base)
	case img.RelativePath != "":
		return resolveStoredPath(img.RelativePath, base)
	default:
		return PlaceholderImageURL()
	}
}

// DisplayName derives a human name for a document from its stored path.
func (f FileRef) DisplayName() string {
	p := f.Path
	if p == "" {
		p = f.RelativePath
	}
	if p == "" {
		return ""
	}
	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}
	return p
}

// Extension returns the lowercased extension of the stored path, without the
// dot, or "unknown" when there is none.
func (f FileRef) Extension() string {
	name := f.DisplayName()
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		return strings.ToLower(name[i+1:])
	}
	return "unknown"
}

func resolveStoredPath(p, base string) string {
	if strings.HasPrefix(p, "http") {
		return p
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}
