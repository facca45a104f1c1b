// Package form implements the add/edit asset form state: pending file and
// image selections, their previews, validation, and the outgoing payload.
//
// A Form is owned by the browser session that opened it and is destroyed on
// submit or close. Nothing here survives a restart.
package form

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"asset-registry/internal/models"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Caps and per-file size limits, matching the dropzone configuration of the
// previous client.
const (
	MaxImages = 5
	MaxFiles  = 5

	maxImageSize = 5 << 20  // 5 MB
	maxFileSize  = 10 << 20 // 10 MB
)

var imageExts = map[string]bool{"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true}
var documentExts = map[string]bool{"pdf": true, "doc": true, "docx": true}

// LocalFile is a freshly dropped, not-yet-submitted binary.
type LocalFile struct {
	Name string
	Size int64
	Data []byte
}

// PendingImage is one entry in the image group: either a local binary with a
// preview handle, or a reference to an image already persisted server-side.
type PendingImage struct {
	ID       string
	Existing bool
	Name     string

	Local       *LocalFile
	previewPath string // temp file backing the preview; local entries only

	Ref models.Image // existing entries only
}

// PendingFile is one entry in the document group.
type PendingFile struct {
	ID       string
	Existing bool
	Name     string
	Ext      string
	Size     int64
	Category models.FileCategory

	Local *LocalFile

	Ref models.FileRef // existing entries only
}

// Form reconciles pending local selections with whatever the server already
// holds for the asset being edited.
//
// One browser session can hit its open form with overlapping requests
// (double-clicked drop buttons), so all pending state lives behind a mutex,
// same as the store and the registry.
type Form struct {
	Mode    Mode
	AssetID string // edit mode only

	mu     sync.Mutex
	values Values
	common models.FileCategory
	images []PendingImage
	files  []PendingFile
}

// NewCreate returns an empty create-mode form with a suggested asset code.
func NewCreate() *Form {
	return &Form{
		Mode:   ModeCreate,
		common: models.FileCategoryGeneral,
	}
}

// NewEdit seeds a form from an existing asset. Persisted images and files
// become existing pending entries with no local binary; the common document
// category is taken from the first persisted category.
func NewEdit(asset models.Asset) *Form {
	f := &Form{
		Mode:    ModeEdit,
		AssetID: asset.ID,
		values:  valuesFromAsset(asset),
		common:  models.FileCategoryGeneral,
	}
	if len(asset.FileCategories) > 0 && asset.FileCategories[0].Valid() {
		f.common = asset.FileCategories[0]
	}

	for i, img := range asset.Images {
		name := img.Name
		if name == "" {
			name = fmt.Sprintf("Image %d", i+1)
		}
		f.images = append(f.images, PendingImage{
			ID:       uuid.NewString(),
			Existing: true,
			Name:     name,
			Ref:      img,
		})
	}
	for i, ref := range asset.Files {
		name := ref.DisplayName()
		if name == "" {
			name = fmt.Sprintf("File %d", i+1)
		}
		f.files = append(f.files, PendingFile{
			ID:       uuid.NewString(),
			Existing: true,
			Name:     name,
			Ext:      ref.Extension(),
			Category: f.common,
			Ref:      ref,
		})
	}
	return f
}

// AcceptImage reports whether a dropped file passes the image gate.
func AcceptImage(f LocalFile) bool {
	return imageExts[extOf(f.Name)] && f.Size <= maxImageSize
}

// AcceptDocument reports whether a dropped file passes the document gate.
func AcceptDocument(f LocalFile) bool {
	return documentExts[extOf(f.Name)] && f.Size <= maxFileSize
}

// DropImages handles one drop operation on the image group. Create mode
// appends to the pending list and truncates the concatenation at the cap;
// once the list is full nothing new is admitted until a manual removal frees
// a slot. Edit mode replaces the whole pending list, existing entries
// included. Rejected filenames are returned for a non-blocking notice.
func (f *Form) DropImages(dropped []LocalFile) (rejected []string, err error) {
	accepted := make([]LocalFile, 0, len(dropped))
	for _, d := range dropped {
		if AcceptImage(d) {
			accepted = append(accepted, d)
		} else {
			rejected = append(rejected, d.Name)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Mode == ModeEdit {
		if len(accepted) == 0 {
			return rejected, nil
		}
		f.releaseImages()
		f.images = nil
	}

	for _, a := range accepted {
		if len(f.images) >= MaxImages {
			break
		}
		entry, err := newLocalImage(a)
		if err != nil {
			return rejected, err
		}
		f.images = append(f.images, entry)
	}
	return rejected, nil
}

// DropFiles handles one drop operation on the document group; same append
// vs replace semantics as DropImages. Every admitted entry is tagged with
// the current common category.
func (f *Form) DropFiles(dropped []LocalFile) (rejected []string, err error) {
	accepted := make([]LocalFile, 0, len(dropped))
	for _, d := range dropped {
		if AcceptDocument(d) {
			accepted = append(accepted, d)
		} else {
			rejected = append(rejected, d.Name)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Mode == ModeEdit {
		if len(accepted) == 0 {
			return rejected, nil
		}
		f.files = nil
	}

	for _, a := range accepted {
		if len(f.files) >= MaxFiles {
			break
		}
		local := a
		f.files = append(f.files, PendingFile{
			ID:       uuid.NewString(),
			Name:     a.Name,
			Ext:      extOf(a.Name),
			Size:     a.Size,
			Category: f.common,
			Local:    &local,
		})
	}
	return rejected, nil
}

// RemoveImage drops the entry with the given id, releasing its preview.
func (f *Form) RemoveImage(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, img := range f.images {
		if img.ID == id {
			img.release()
			f.images = append(f.images[:i], f.images[i+1:]...)
			return
		}
	}
}

// RemoveFile drops the entry with the given id.
func (f *Form) RemoveFile(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, pf := range f.files {
		if pf.ID == id {
			f.files = append(f.files[:i], f.files[i+1:]...)
			return
		}
	}
}

// SetCommonCategory changes the batch category and retroactively re-tags
// every pending document.
func (f *Form) SetCommonCategory(c models.FileCategory) {
	if !c.Valid() {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.common = c
	for i := range f.files {
		f.files[i].Category = c
	}
}

func (f *Form) CommonCategory() models.FileCategory {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.common
}

// Values returns a copy of the scalar form fields.
func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// SetValues replaces the scalar form fields wholesale, the way each POST
// rebinds them.
func (f *Form) SetValues(v Values) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = v
}

// Images returns the pending image entries in order.
func (f *Form) Images() []PendingImage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]PendingImage, len(f.images))
	copy(out, f.images)
	return out
}

// Files returns the pending document entries in order.
func (f *Form) Files() []PendingFile {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]PendingFile, len(f.files))
	copy(out, f.files)
	return out
}

// PreviewPath returns the temp file backing a local image preview.
func (f *Form) PreviewPath(id string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, img := range f.images {
		if img.ID == id && img.previewPath != "" {
			return img.previewPath, true
		}
	}
	return "", false
}

// PreviewURL resolves what the template should show for an entry: the local
// preview route for fresh drops, the stored location for existing entries,
// and the placeholder when neither is usable.
func (img PendingImage) PreviewURL(formRoute, apiBase string) string {
	if !img.Existing {
		return formRoute + "/previews/" + img.ID
	}
	return img.Ref.DisplayURL(apiBase)
}

// Close releases every locally held preview and empties the form. Must be
// called on every exit path: submit, cancel, and supersession.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.releaseImages()
	f.images = nil
	f.files = nil
}

func (f *Form) releaseImages() {
	for i := range f.images {
		f.images[i].release()
	}
}

func newLocalImage(a LocalFile) (PendingImage, error) {
	local := a
	entry := PendingImage{
		ID:    uuid.NewString(),
		Name:  a.Name,
		Local: &local,
	}

	tmp, err := os.CreateTemp("", "asset-preview-*."+extOf(a.Name))
	if err != nil {
		return PendingImage{}, fmt.Errorf("create preview: %w", err)
	}
	if _, err := tmp.Write(a.Data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return PendingImage{}, fmt.Errorf("write preview: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return PendingImage{}, fmt.Errorf("close preview: %w", err)
	}
	entry.previewPath = tmp.Name()
	return entry, nil
}

func (img *PendingImage) release() {
	if img.previewPath != "" {
		os.Remove(img.previewPath)
		img.previewPath = ""
	}
}

func extOf(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		return strings.ToLower(name[i+1:])
	}
	return ""
}
