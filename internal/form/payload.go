package form

import (
	"strings"
	"time"

	"asset-registry/internal/models"
	"asset-registry/internal/remote"
)

// BuildPayload serializes the form into the wire payload.
//
// Scalars go out 1:1 in declaration order, dates re-encoded as RFC 3339
// instants, empty strings as explicit nulls. The two file groups are
// independent: in edit mode a group with any pending local binary replaces
// the server-side group entirely, a group with none signals keep-existing
// and sends no binaries. Create mode always sends whatever is pending.
func (f *Form) BuildPayload() *remote.Payload {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := &remote.Payload{Fields: f.scalarFields()}

	localImages, localFiles, categories := f.localParts()

	switch f.Mode {
	case ModeCreate:
		p.Images = localImages
		p.Files = localFiles
		// always present on create, even when empty
		p.FileCategories = categories
		if p.FileCategories == nil {
			p.FileCategories = []string{}
		}
	case ModeEdit:
		if len(localImages) > 0 {
			p.Images = localImages
			p.ReplaceImages = true
		} else {
			p.KeepExistingImages = true
		}
		if len(localFiles) > 0 {
			p.Files = localFiles
			p.FileCategories = categories
			p.ReplaceFiles = true
		} else {
			p.KeepExistingFiles = true
		}
	}
	return p
}

// callers hold f.mu
func (f *Form) localParts() (images, files []remote.FilePart, categories []string) {
	for _, img := range f.images {
		if img.Local == nil {
			continue
		}
		images = append(images, remote.FilePart{Filename: img.Local.Name, Data: img.Local.Data})
	}
	for _, pf := range f.files {
		if pf.Local == nil {
			continue
		}
		files = append(files, remote.FilePart{Filename: pf.Local.Name, Data: pf.Local.Data})
		cat := pf.Category
		if !cat.Valid() {
			cat = models.FileCategoryGeneral
		}
		categories = append(categories, string(cat))
	}
	return images, files, categories
}

// callers hold f.mu
func (f *Form) scalarFields() []remote.Field {
	vals := f.values
	return []remote.Field{
		scalar("name", vals.Name),
		scalar("code", vals.Code),
		scalar("category", vals.Category),
		scalar("cwipInvoiceId", vals.CWIPInvoiceID),
		scalar("location", vals.Location),
		scalar("status", vals.Status),
		scalar("condition", vals.Condition),
		scalar("brand", vals.Brand),
		scalar("model", vals.Model),
		scalar("linkedAsset", vals.LinkedAsset),
		scalar("description", vals.Description),
		scalar("vendorName", vals.VendorName),
		scalar("poNumber", vals.PONumber),
		dateScalar("invoiceDate", vals.InvoiceDate),
		scalar("invoiceNo", vals.InvoiceNo),
		dateScalar("purchaseDate", vals.PurchaseDate),
		scalar("purchasePrice", vals.PurchasePrice),
		scalar("ownership", vals.Ownership),
		scalar("capitalizationPrice", vals.CapitalizationPrice),
		dateScalar("endOfLife", vals.EndOfLife),
		dateScalar("capitalizationDate", vals.CapitalizationDate),
		scalar("depreciationPercent", vals.DepreciationPercent),
		scalar("accumulatedDepreciation", vals.AccumulatedDepreciation),
		scalar("scrapValue", vals.ScrapValue),
		scalar("incomeTaxDepreciationPercent", vals.IncomeTaxDepreciationPercent),
	}
}

func scalar(name, value string) remote.Field {
	value = strings.TrimSpace(value)
	if value == "" {
		return remote.Field{Name: name}
	}
	return remote.Field{Name: name, Value: remote.StringValue(value)}
}

func dateScalar(name, value string) remote.Field {
	value = strings.TrimSpace(value)
	if value == "" {
		return remote.Field{Name: name}
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		// validation rejects these before submit; pass through raw if a
		// caller skipped it
		return remote.Field{Name: name, Value: remote.StringValue(value)}
	}
	return remote.Field{Name: name, Value: remote.StringValue(d.UTC().Format(time.RFC3339))}
}
