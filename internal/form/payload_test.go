package form

import (
	"testing"

	"asset-registry/internal/models"
	"asset-registry/internal/remote"
)

func fieldValue(t *testing.T, p *remote.Payload, name string) *string {
	t.Helper()
	for _, f := range p.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	t.Fatalf("field %s missing from payload", name)
	return nil
}

func TestBuildPayloadCreate(t *testing.T) {
	f := NewCreate()
	defer f.Close()
	vals := validValues()
	vals.PurchasePrice = ""
	f.SetValues(vals)

	if _, err := f.DropImages(localImages("img", 2)); err != nil {
		t.Fatal(err)
	}
	if _, err := f.DropFiles(localDocs("doc", 2)); err != nil {
		t.Fatal(err)
	}
	f.SetCommonCategory(models.FileCategoryReceipt)

	p := f.BuildPayload()

	if len(p.Fields) != 25 {
		t.Fatalf("got %d scalar fields, want 25", len(p.Fields))
	}
	if p.Fields[0].Name != "name" || p.Fields[24].Name != "incomeTaxDepreciationPercent" {
		t.Errorf("scalar field order off: first=%s last=%s", p.Fields[0].Name, p.Fields[24].Name)
	}

	if v := fieldValue(t, p, "name"); v == nil || *v != "Drill Press" {
		t.Errorf("name not carried through")
	}
	// empty scalars are explicit nulls, not omissions
	if v := fieldValue(t, p, "purchasePrice"); v != nil {
		t.Errorf("blank purchasePrice should serialize as null, got %q", *v)
	}
	// dates go out as instants
	if v := fieldValue(t, p, "capitalizationDate"); v == nil || *v != "2026-08-31T00:00:00Z" {
		t.Errorf("capitalizationDate not an RFC 3339 instant: %v", v)
	}

	if len(p.Images) != 2 || len(p.Files) != 2 {
		t.Fatalf("got %d images and %d files, want 2 and 2", len(p.Images), len(p.Files))
	}
	if p.Images[0].Filename != "img0.jpg" || len(p.Images[0].Data) == 0 {
		t.Errorf("image part not carried: %+v", p.Images[0])
	}
	if len(p.FileCategories) != 2 || p.FileCategories[0] != "receipt" {
		t.Errorf("file categories: %v", p.FileCategories)
	}
	if p.ReplaceImages || p.KeepExistingImages || p.ReplaceFiles || p.KeepExistingFiles {
		t.Errorf("create payload must not carry edit flags")
	}
}

func TestBuildPayloadCreateEmptyGroupsSendEmptyCategories(t *testing.T) {
	f := NewCreate()
	defer f.Close()
	f.SetValues(validValues())

	p := f.BuildPayload()
	if p.FileCategories == nil {
		t.Errorf("create payload must carry fileCategories even with no files")
	}
	if len(p.FileCategories) != 0 {
		t.Errorf("got %v, want empty", p.FileCategories)
	}
}

func TestBuildPayloadEditKeepsUntouchedGroups(t *testing.T) {
	f := NewEdit(models.Asset{
		ID:     "a1",
		Images: []models.Image{{Path: "/uploads/one.png"}},
		Files:  []models.FileRef{{Path: "/uploads/policy.pdf"}},
	})
	defer f.Close()
	f.SetValues(validValues())

	p := f.BuildPayload()
	if !p.KeepExistingImages || !p.KeepExistingFiles {
		t.Errorf("untouched groups must signal keep-existing: %+v", p)
	}
	if p.ReplaceImages || p.ReplaceFiles {
		t.Errorf("untouched groups must not signal replace")
	}
	if len(p.Images) != 0 || len(p.Files) != 0 {
		t.Errorf("untouched groups must send no binaries")
	}
	if p.FileCategories != nil {
		t.Errorf("kept file group must omit fileCategories, got %v", p.FileCategories)
	}
}

func TestBuildPayloadEditReplacesOnlyDroppedGroup(t *testing.T) {
	f := NewEdit(models.Asset{
		ID:     "a1",
		Images: []models.Image{{Path: "/uploads/one.png"}, {Path: "/uploads/two.png"}},
		Files:  []models.FileRef{{Path: "/uploads/policy.pdf"}},
	})
	defer f.Close()
	f.SetValues(validValues())

	if _, err := f.DropImages(localImages("fresh", 2)); err != nil {
		t.Fatal(err)
	}

	p := f.BuildPayload()
	if !p.ReplaceImages || p.KeepExistingImages {
		t.Errorf("dropped image group must signal replace: %+v", p)
	}
	if len(p.Images) != 2 {
		t.Errorf("got %d image parts, want 2", len(p.Images))
	}
	if !p.KeepExistingFiles || p.ReplaceFiles || len(p.Files) != 0 {
		t.Errorf("untouched file group must stay keep-existing: %+v", p)
	}
}
