package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"asset-registry/internal/form"
	"asset-registry/internal/listview"
	"asset-registry/internal/models"
	"asset-registry/internal/store"
)

// AssetHandler serves the asset list, forms and delete flow. Everything it
// needs is injected; there is no package-level state.
type AssetHandler struct {
	store   *store.Store
	forms   *form.Registry
	apiBase string
}

func NewAssetHandler(st *store.Store, forms *form.Registry, apiBase string) *AssetHandler {
	return &AssetHandler{store: st, forms: forms, apiBase: apiBase}
}

// List refreshes the collection from the API and renders the filtered,
// paginated table. A failed fetch still renders the last-known collection;
// the failure shows up as a flash.
func (h *AssetHandler) List(c *gin.Context) {
	ctx, n := withNotices(c)
	_ = h.store.Fetch(ctx)
	n.flush(c)

	filter := listview.Filter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}
	pageIdx, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		pageIdx = 1
	}

	filtered := listview.Apply(h.store.Assets(), filter)
	page := listview.Paginate(filtered, pageIdx)

	render(c, http.StatusOK, "assets_list.html", gin.H{
		"assets":          page.Items,
		"page":            page,
		"filter":          filter,
		"categoryOptions": models.CategoryOptions,
		"statusOptions":   models.StatusOptions,
		"storeError":      h.store.Err(),
	})
}

// ShowConfirmDelete renders the confirmation step naming the target asset.
func (h *AssetHandler) ShowConfirmDelete(c *gin.Context) {
	asset, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.String(http.StatusNotFound, "Asset not found")
		return
	}

	render(c, http.StatusOK, "assets_confirm_delete.html", gin.H{
		"asset": asset,
	})
}

// Delete confirms the flow: it invokes the store and returns to the list,
// whatever the outcome; the store's notification tells the user which it was.
func (h *AssetHandler) Delete(c *gin.Context) {
	ctx, n := withNotices(c)
	_ = h.store.Delete(ctx, c.Param("id"))
	n.flush(c)

	c.Redirect(http.StatusFound, "/assets")
}
