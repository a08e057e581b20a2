package view

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"resto/service"
	"resto/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MenuItemView serves the form-driven flows: outcomes travel as flash
// messages across a redirect instead of a JSON envelope. The HTML itself is
// rendered elsewhere; these endpoints only mutate and expose page data.
type MenuItemView struct {
	menuItems *service.MenuItemService
	storage   *service.FileStorage
}

func NewMenuItemView(menuItems *service.MenuItemService, storage *service.FileStorage) *MenuItemView {
	return &MenuItemView{menuItems: menuItems, storage: storage}
}

const maxImageSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

func mustUserID(c *gin.Context) uuid.UUID {
	id, _ := utils.CurrentUserID(c)
	return id
}

func redirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

// PostAdd creates a menu item from form fields, with an optional inline
// image. An image that fails validation downgrades the success message; the
// item itself is never rolled back.
func (v *MenuItemView) PostAdd(c *gin.Context) {
	userID := mustUserID(c)

	name := c.PostForm("name")
	category := c.PostForm("category")

	if name == "" {
		utils.SetFlash(c, "error", "Nama menu tidak boleh kosong")
		redirectHome(c)
		return
	}
	if category == "" {
		utils.SetFlash(c, "error", "Kategori tidak boleh kosong")
		redirectHome(c)
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price <= 0 {
		utils.SetFlash(c, "error", "Harga harus lebih dari 0")
		redirectHome(c)
		return
	}

	prepTime, err := strconv.Atoi(c.PostForm("preparation_time"))
	if err != nil || prepTime <= 0 {
		utils.SetFlash(c, "error", "Waktu persiapan harus lebih dari 0")
		redirectHome(c)
		return
	}

	var calories *int
	if raw := c.PostForm("calories"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			calories = &n
		}
	}

	in := service.MenuItemInput{
		Name:            name,
		Category:        category,
		Price:           price,
		Description:     c.PostForm("description"),
		PreparationTime: prepTime,
		SpicyLevel:      0,
		Calories:        calories,
	}

	item, err := v.menuItems.Create(userID, in)
	if err != nil {
		utils.SetFlash(c, "error", "Gagal menambahkan menu")
		redirectHome(c)
		return
	}

	// The form checkbox defaults to unavailable; creation defaults to
	// available, so apply the form's choice as a full-replace update.
	isAvailable := c.PostForm("is_available") == "true" || c.PostForm("is_available") == "on"
	if !isAvailable {
		if _, err := v.menuItems.Update(userID, item.ID, in, false); err != nil {
			utils.SetFlash(c, "error", "Gagal menambahkan menu")
			redirectHome(c)
			return
		}
	}

	file, err := c.FormFile("imageFile")
	if err != nil || file == nil {
		utils.SetFlash(c, "success", "Menu berhasil ditambahkan.")
		redirectHome(c)
		return
	}

	if msg := v.attachImage(file, item.ID); msg != "" {
		utils.SetFlash(c, "error", "Menu berhasil ditambahkan, tapi "+msg)
		redirectHome(c)
		return
	}

	utils.SetFlash(c, "success", "Menu dan gambar berhasil ditambahkan!")
	redirectHome(c)
}

func (v *MenuItemView) PostEdit(c *gin.Context) {
	userID := mustUserID(c)

	id, err := uuid.Parse(c.PostForm("id"))
	if err != nil {
		utils.SetFlash(c, "error", "ID menu tidak valid")
		redirectHome(c)
		return
	}

	name := c.PostForm("name")
	category := c.PostForm("category")

	if name == "" {
		utils.SetFlash(c, "error", "Nama menu tidak boleh kosong")
		redirectHome(c)
		return
	}
	if category == "" {
		utils.SetFlash(c, "error", "Kategori tidak boleh kosong")
		redirectHome(c)
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price <= 0 {
		utils.SetFlash(c, "error", "Harga harus lebih dari 0")
		redirectHome(c)
		return
	}

	prepTime, _ := strconv.Atoi(c.PostForm("preparation_time"))
	spicyLevel, _ := strconv.Atoi(c.PostForm("spicy_level"))

	var calories *int
	if raw := c.PostForm("calories"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			calories = &n
		}
	}

	isAvailable := c.PostForm("is_available") == "true" || c.PostForm("is_available") == "on"

	item, err := v.menuItems.Update(userID, id, service.MenuItemInput{
		Name:            name,
		Category:        category,
		Price:           price,
		Description:     c.PostForm("description"),
		PreparationTime: prepTime,
		SpicyLevel:      spicyLevel,
		Calories:        calories,
	}, isAvailable)
	if err != nil || item == nil {
		utils.SetFlash(c, "error", "Gagal memperbarui menu")
		redirectHome(c)
		return
	}

	utils.SetFlash(c, "success", "Menu berhasil diperbarui.")
	redirectHome(c)
}

// PostDelete requires the caller to re-type the item's exact name; a
// mismatch is reported separately from a missing item.
func (v *MenuItemView) PostDelete(c *gin.Context) {
	userID := mustUserID(c)

	id, err := uuid.Parse(c.PostForm("id"))
	if err != nil {
		utils.SetFlash(c, "error", "ID menu tidak valid")
		redirectHome(c)
		return
	}

	confirmName := c.PostForm("confirm_name")
	if confirmName == "" {
		utils.SetFlash(c, "error", "Konfirmasi nama tidak boleh kosong")
		redirectHome(c)
		return
	}

	item, err := v.menuItems.GetByID(userID, id)
	if err != nil || item == nil {
		utils.SetFlash(c, "error", "Menu tidak ditemukan")
		redirectHome(c)
		return
	}

	if item.Name != confirmName {
		utils.SetFlash(c, "error", "Konfirmasi nama tidak sesuai")
		redirectHome(c)
		return
	}

	deleted, err := v.menuItems.Delete(userID, id)
	if err != nil || !deleted {
		utils.SetFlash(c, "error", "Gagal menghapus menu")
		redirectHome(c)
		return
	}

	if item.ImageURL != "" {
		v.storage.Delete(item.ImageURL)
	}

	utils.SetFlash(c, "success", "Menu berhasil dihapus.")
	redirectHome(c)
}

// PostEditImage replaces the item's image. The item is resolved
// owner-scoped before the image update runs.
func (v *MenuItemView) PostEditImage(c *gin.Context) {
	userID := mustUserID(c)

	id, err := uuid.Parse(c.PostForm("id"))
	if err != nil {
		utils.SetFlash(c, "error", "ID menu tidak valid")
		redirectHome(c)
		return
	}

	item, err := v.menuItems.GetByID(userID, id)
	if err != nil || item == nil {
		utils.SetFlash(c, "error", "Menu tidak ditemukan")
		redirectHome(c)
		return
	}

	file, err := c.FormFile("imageFile")
	if err != nil || file == nil {
		utils.SetFlash(c, "error", "File gambar wajib diunggah")
		redirectHome(c)
		return
	}

	if msg := v.attachImage(file, item.ID); msg != "" {
		utils.SetFlash(c, "error", msg)
		redirectHome(c)
		return
	}

	utils.SetFlash(c, "success", "Gambar menu berhasil diperbarui.")
	redirectHome(c)
}

// attachImage validates, stores and links an uploaded image. It returns an
// empty string on success, or the flash-ready reason on failure.
func (v *MenuItemView) attachImage(file *multipart.FileHeader, menuItemID uuid.UUID) string {
	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return "format gambar tidak didukung"
	}
	if file.Size > maxImageSize {
		return "ukuran gambar terlalu besar (max 5MB)"
	}

	src, err := file.Open()
	if err != nil {
		return "gagal upload gambar"
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "gagal upload gambar"
	}

	filename, err := v.storage.Store(data, file.Filename, menuItemID)
	if err != nil {
		return "gagal upload gambar"
	}

	if _, err := v.menuItems.UpdateImage(menuItemID, filename); err != nil {
		return "gagal menyimpan gambar"
	}
	return ""
}

// GetImage streams a stored image; an unreadable file yields an empty
// response rather than an error body.
func (v *MenuItemView) GetImage(c *gin.Context) {
	filename := c.Param("filename")
	if !v.storage.Exists(filename) {
		c.Status(http.StatusNoContent)
		return
	}
	c.File(v.storage.Load(filename))
}

func (v *MenuItemView) GetDetail(c *gin.Context) {
	userID := mustUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SetFlash(c, "error", "Menu tidak ditemukan")
		redirectHome(c)
		return
	}

	item, err := v.menuItems.GetByID(userID, id)
	if err != nil || item == nil {
		utils.SetFlash(c, "error", "Menu tidak ditemukan")
		redirectHome(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"menuItem": item})
}

// GetStats aggregates the three category breakdowns plus summary numbers
// derived from the full unfiltered list.
func (v *MenuItemView) GetStats(c *gin.Context) {
	userID := mustUserID(c)

	items, err := v.menuItems.GetAll(userID, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data statistik"})
		return
	}

	counts, err := v.menuItems.CountByCategory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data statistik"})
		return
	}
	averages, err := v.menuItems.AveragePriceByCategory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data statistik"})
		return
	}
	totals, err := v.menuItems.TotalPriceByCategory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data statistik"})
		return
	}

	availableCount := 0
	priceSum := 0.0
	categories := map[string]bool{}
	for _, item := range items {
		if item.IsAvailable {
			availableCount++
		}
		priceSum += item.Price
		categories[item.Category] = true
	}

	meanPrice := 0.0
	if len(items) > 0 {
		meanPrice = priceSum / float64(len(items))
	}

	c.JSON(http.StatusOK, gin.H{
		"countByCategory":        counts,
		"averagePriceByCategory": averages,
		"totalPriceByCategory":   totals,
		"summary": gin.H{
			"totalItems":     len(items),
			"availableItems": availableCount,
			"meanPrice":      meanPrice,
			"categoryCount":  len(categories),
		},
	})
}

// GetFlash hands the pending flash messages to the rendering layer and
// clears them.
func (v *MenuItemView) GetFlash(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"error":   utils.TakeFlash(c, "error"),
		"success": utils.TakeFlash(c, "success"),
	})
}
