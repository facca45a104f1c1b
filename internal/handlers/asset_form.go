package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"asset-registry/internal/form"
	"asset-registry/internal/middleware"
	"asset-registry/internal/models"
)

// The add and edit forms live in the registry between requests: every drop,
// removal and category change is its own POST against the same open form,
// the way the dropzone callbacks mutated one mounted component. The form is
// discarded (previews released) on submit, cancel and supersession.

func (h *AssetHandler) formKey(c *gin.Context, scope string) string {
	return middleware.SessionID(c) + "|" + scope
}

// ShowNew opens the add-asset form, reusing one already in progress for this
// session.
func (h *AssetHandler) ShowNew(c *gin.Context) {
	f, _ := h.createForm(c)
	h.renderForm(c, http.StatusOK, f, nil)
}

// ShowEdit opens the edit form seeded from the stored asset, reusing one
// already in progress.
func (h *AssetHandler) ShowEdit(c *gin.Context) {
	f, ok := h.editForm(c)
	if !ok {
		return
	}
	h.renderForm(c, http.StatusOK, f, nil)
}

// SubmitNew validates and creates; on success the form is destroyed and the
// collection resynchronized with a full fetch.
func (h *AssetHandler) SubmitNew(c *gin.Context) {
	f, key := h.createForm(c)
	h.submit(c, f, key)
}

func (h *AssetHandler) SubmitEdit(c *gin.Context) {
	f, ok := h.editForm(c)
	if !ok {
		return
	}
	h.submit(c, f, h.formKey(c, "edit:"+f.AssetID))
}

func (h *AssetHandler) submit(c *gin.Context, f *form.Form, key string) {
	bindValues(c, f)

	violations := f.Values().Validate(time.Now())
	if !violations.Empty() {
		h.renderForm(c, http.StatusBadRequest, f, violations)
		return
	}

	payload := f.BuildPayload()

	ctx, n := withNotices(c)
	var err error
	if f.Mode == form.ModeCreate {
		err = h.store.Create(ctx, payload)
	} else {
		err = h.store.Update(ctx, f.AssetID, payload)
	}
	if err != nil {
		// operation abandoned; pending state stays for another attempt
		n.flush(c)
		c.Redirect(http.StatusFound, formAction(f))
		return
	}

	h.forms.Discard(key)
	_ = h.store.Fetch(ctx)
	n.flush(c)
	c.Redirect(http.StatusFound, "/assets")
}

// Cancel closes the form without submitting.
func (h *AssetHandler) CancelNew(c *gin.Context) {
	h.forms.Discard(h.formKey(c, "new"))
	c.Redirect(http.StatusFound, "/assets")
}

func (h *AssetHandler) CancelEdit(c *gin.Context) {
	h.forms.Discard(h.formKey(c, "edit:"+c.Param("id")))
	c.Redirect(http.StatusFound, "/assets")
}

// DropImages handles one image drop on either form variant.
func (h *AssetHandler) DropNewImages(c *gin.Context) {
	f, _ := h.createForm(c)
	h.drop(c, f, true)
}

func (h *AssetHandler) DropNewFiles(c *gin.Context) {
	f, _ := h.createForm(c)
	h.drop(c, f, false)
}

func (h *AssetHandler) DropEditImages(c *gin.Context) {
	if f, ok := h.editForm(c); ok {
		h.drop(c, f, true)
	}
}

func (h *AssetHandler) DropEditFiles(c *gin.Context) {
	if f, ok := h.editForm(c); ok {
		h.drop(c, f, false)
	}
}

func (h *AssetHandler) drop(c *gin.Context, f *form.Form, images bool) {
	bindValues(c, f)

	field := "files"
	if images {
		field = "images"
	}
	dropped, err := postedFiles(c, field)
	if err != nil {
		flash(c, "error", "Failed to read uploaded "+field+": "+err.Error())
		c.Redirect(http.StatusFound, formAction(f))
		return
	}

	var rejected []string
	if images {
		rejected, err = f.DropImages(dropped)
	} else {
		rejected, err = f.DropFiles(dropped)
	}
	if err != nil {
		flash(c, "error", "Failed to add "+field+": "+err.Error())
	}
	if len(rejected) > 0 {
		flash(c, "error", "Rejected (type or size): "+strings.Join(rejected, ", "))
	}

	c.Redirect(http.StatusFound, formAction(f))
}

// RemoveImage and friends free one slot from a pending group.
func (h *AssetHandler) RemoveNewImage(c *gin.Context) {
	f, _ := h.createForm(c)
	bindValues(c, f)
	f.RemoveImage(c.Param("entry"))
	c.Redirect(http.StatusFound, formAction(f))
}

func (h *AssetHandler) RemoveNewFile(c *gin.Context) {
	f, _ := h.createForm(c)
	bindValues(c, f)
	f.RemoveFile(c.Param("entry"))
	c.Redirect(http.StatusFound, formAction(f))
}

func (h *AssetHandler) RemoveEditImage(c *gin.Context) {
	if f, ok := h.editForm(c); ok {
		bindValues(c, f)
		f.RemoveImage(c.Param("entry"))
		c.Redirect(http.StatusFound, formAction(f))
	}
}

func (h *AssetHandler) RemoveEditFile(c *gin.Context) {
	if f, ok := h.editForm(c); ok {
		bindValues(c, f)
		f.RemoveFile(c.Param("entry"))
		c.Redirect(http.StatusFound, formAction(f))
	}
}

// SetCategory re-tags every pending document with the chosen batch category.
func (h *AssetHandler) SetNewCategory(c *gin.Context) {
	f, _ := h.createForm(c)
	bindValues(c, f)
	f.SetCommonCategory(models.FileCategory(c.PostForm("fileCategory")))
	c.Redirect(http.StatusFound, formAction(f))
}

func (h *AssetHandler) SetEditCategory(c *gin.Context) {
	if f, ok := h.editForm(c); ok {
		bindValues(c, f)
		f.SetCommonCategory(models.FileCategory(c.PostForm("fileCategory")))
		c.Redirect(http.StatusFound, formAction(f))
	}
}

// GenerateCode fills the code field with a fresh suggestion.
func (h *AssetHandler) GenerateCode(c *gin.Context) {
	f, _ := h.createForm(c)
	bindValues(c, f)
	v := f.Values()
	v.Code = models.GenerateCode()
	f.SetValues(v)
	c.Redirect(http.StatusFound, formAction(f))
}

// Preview serves the temp file behind a pending local image.
func (h *AssetHandler) PreviewNew(c *gin.Context) {
	h.preview(c, h.formKey(c, "new"))
}

func (h *AssetHandler) PreviewEdit(c *gin.Context) {
	h.preview(c, h.formKey(c, "edit:"+c.Param("id")))
}

func (h *AssetHandler) preview(c *gin.Context, key string) {
	f, ok := h.forms.Get(key)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	path, ok := f.PreviewPath(c.Param("entry"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(path)
}

func (h *AssetHandler) createForm(c *gin.Context) (*form.Form, string) {
	key := h.formKey(c, "new")
	f, ok := h.forms.Get(key)
	if !ok {
		f = form.NewCreate()
		h.forms.Put(key, f)
	}
	return f, key
}

// editForm returns the session's open edit form for the asset in the URL,
// seeding one from the store (fetching first if the store is cold). A false
// return means the response has already been written.
func (h *AssetHandler) editForm(c *gin.Context) (*form.Form, bool) {
	id := c.Param("id")
	key := h.formKey(c, "edit:"+id)
	if f, ok := h.forms.Get(key); ok {
		return f, true
	}

	asset, found := h.store.Get(id)
	if !found {
		ctx, n := withNotices(c)
		_ = h.store.Fetch(ctx)
		n.flush(c)
		asset, found = h.store.Get(id)
	}
	if !found {
		c.String(http.StatusNotFound, "Asset not found")
		return nil, false
	}

	f := form.NewEdit(asset)
	h.forms.Put(key, f)
	return f, true
}

func formAction(f *form.Form) string {
	if f.Mode == form.ModeCreate {
		return "/assets/new"
	}
	return "/assets/" + f.AssetID + "/edit"
}

// bindValues copies the posted scalar fields into the form so typed input
// survives drop/remove round-trips. GET requests post nothing and bind
// nothing.
func bindValues(c *gin.Context, f *form.Form) {
	if c.Request.Method != http.MethodPost {
		return
	}
	var v form.Values
	field := func(name string) string { return strings.TrimSpace(c.PostForm(name)) }

	v.Name = field("name")
	v.Code = field("code")
	v.Category = field("category")
	v.CWIPInvoiceID = field("cwipInvoiceId")
	v.Location = field("location")
	v.Status = field("status")
	v.Condition = field("condition")
	v.Brand = field("brand")
	v.Model = field("model")
	v.LinkedAsset = field("linkedAsset")
	v.Description = field("description")
	v.VendorName = field("vendorName")
	v.PONumber = field("poNumber")
	v.InvoiceDate = field("invoiceDate")
	v.InvoiceNo = field("invoiceNo")
	v.PurchaseDate = field("purchaseDate")
	v.PurchasePrice = field("purchasePrice")
	v.Ownership = field("ownership")
	v.CapitalizationPrice = field("capitalizationPrice")
	v.CapitalizationDate = field("capitalizationDate")
	v.EndOfLife = field("endOfLife")
	v.DepreciationPercent = field("depreciationPercent")
	v.AccumulatedDepreciation = field("accumulatedDepreciation")
	v.ScrapValue = field("scrapValue")
	v.IncomeTaxDepreciationPercent = field("incomeTaxDepreciationPercent")

	f.SetValues(v)
}

func postedFiles(c *gin.Context, field string) ([]form.LocalFile, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	headers := mf.File[field]

	files := make([]form.LocalFile, 0, len(headers))
	for _, fh := range headers {
		src, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		files = append(files, form.LocalFile{Name: fh.Filename, Size: fh.Size, Data: data})
	}
	return files, nil
}

func flash(c *gin.Context, level, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, level)
	_ = sess.Save()
}

// renderForm renders either form variant with its pending groups.
func (h *AssetHandler) renderForm(c *gin.Context, status int, f *form.Form, violations form.Violations) {
	action := formAction(f)

	type imageView struct {
		ID       string
		Name     string
		URL      string
		Existing bool
	}
	images := make([]imageView, 0, len(f.Images()))
	for _, img := range f.Images() {
		images = append(images, imageView{
			ID:       img.ID,
			Name:     img.Name,
			URL:      img.PreviewURL(action, h.apiBase),
			Existing: img.Existing,
		})
	}

	type fileView struct {
		ID       string
		Name     string
		Ext      string
		SizeMB   string
		Existing bool
	}
	files := make([]fileView, 0, len(f.Files()))
	for _, pf := range f.Files() {
		files = append(files, fileView{
			ID:       pf.ID,
			Name:     pf.Name,
			Ext:      pf.Ext,
			SizeMB:   fmt.Sprintf("%.2f", float64(pf.Size)/1024/1024),
			Existing: pf.Existing,
		})
	}

	linked := make([]models.Option, 0)
	for _, a := range h.store.Assets() {
		linked = append(linked, models.Option{Value: a.ID, Label: a.Name})
	}

	tmpl := "assets_new.html"
	if f.Mode == form.ModeEdit {
		tmpl = "assets_edit.html"
	}

	render(c, status, tmpl, gin.H{
		"action":              action,
		"showGenerate":        f.Mode == form.ModeCreate,
		"values":              f.Values(),
		"violations":          violations,
		"images":              images,
		"files":               files,
		"commoncategory":      f.CommonCategory(),
		"categoryOptions":     models.CategoryOptions,
		"statusOptions":       models.StatusOptions,
		"conditionOptions":    models.ConditionOptions,
		"ownershipOptions":    models.OwnershipOptions,
		"fileCategoryOptions": models.FileCategoryOptions,
		"linkedOptions":       linked,
	})
}
