package controller

import (
	"net/http"

	"resto/model"
	"resto/service"
	"resto/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MenuItemController struct {
	menuItems *service.MenuItemService
}

func NewMenuItemController(menuItems *service.MenuItemService) *MenuItemController {
	return &MenuItemController{menuItems: menuItems}
}

// menuItemRequest uses pointers for the numeric fields so a missing value
// is distinguishable from an explicit zero.
type menuItemRequest struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Price           *float64 `json:"price"`
	Description     string   `json:"description"`
	PreparationTime *int     `json:"preparation_time"`
	SpicyLevel      int      `json:"spicy_level"`
	Calories        *int     `json:"calories"`
	IsAvailable     *bool    `json:"is_available"`
}

// Create validates the required fields first and only then checks the
// caller's authentication, mirroring the shipped behavior.
func (mc *MenuItemController) Create(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("Request tidak valid"))
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, fail("Nama menu tidak boleh kosong"))
		return
	}
	if req.Category == "" {
		c.JSON(http.StatusBadRequest, fail("Kategori tidak boleh kosong"))
		return
	}
	if req.Price == nil || *req.Price <= 0 {
		c.JSON(http.StatusBadRequest, fail("Harga harus lebih dari 0"))
		return
	}
	if req.PreparationTime == nil || *req.PreparationTime <= 0 {
		c.JSON(http.StatusBadRequest, fail("Waktu persiapan harus lebih dari 0"))
		return
	}

	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, fail("User tidak terautentikasi"))
		return
	}

	item, err := mc.menuItems.Create(userID, service.MenuItemInput{
		Name:            req.Name,
		Category:        req.Category,
		Price:           *req.Price,
		Description:     req.Description,
		PreparationTime: *req.PreparationTime,
		SpicyLevel:      req.SpicyLevel,
		Calories:        req.Calories,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("Gagal menambahkan menu"))
		return
	}

	c.JSON(http.StatusOK, success("Menu berhasil ditambahkan", gin.H{"id": item.ID}))
}

func (mc *MenuItemController) GetAll(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, fail("User tidak terautentikasi"))
		return
	}

	items, err := mc.menuItems.GetAll(userID, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("Gagal mengambil daftar menu"))
		return
	}

	c.JSON(http.StatusOK, success("Daftar menu berhasil diambil", gin.H{"menuItems": items}))
}

func (mc *MenuItemController) GetByID(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, fail("User tidak terautentikasi"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, fail("Menu tidak ditemukan"))
		return
	}

	item, err := mc.menuItems.GetByID(userID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("Gagal mengambil data menu"))
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, fail("Menu tidak ditemukan"))
		return
	}

	c.JSON(http.StatusOK, success("Data menu berhasil diambil", gin.H{"menuItem": item}))
}

func (mc *MenuItemController) GetByCategory(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, fail("User tidak terautentikasi"))
		return
	}

	items, err := mc.menuItems.GetByCategory(userID, c.Param("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("Gagal mengambil daftar menu"))
		return
	}

	c.JSON(http.StatusOK, success("Daftar menu berdasarkan kategori berhasil diambil", gin.H{"menuItems": items}))
}

func (mc *MenuItemController) GetAvailable(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, fail("User tidak terautentikasi"))
		return
	}

	items, err := mc.menuItems.GetAvailable(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("Gagal mengambil daftar menu"))
		return
	}

	c.JSON(http.StatusOK, success("Daftar menu tersedia berhasil diambil", gin.H{"menuItems": items}))
}

// Update re-validates name, category and price but not preparation time;
// only create checks that field.
func (mc *MenuItemController) Update(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail("Request tidak valid"))
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, fail("Nama menu tidak boleh kosong"))
		return
	}
	if req.Category == "" {
		c.JSON(http.StatusBadRequest, fail("Kategori tidak boleh kosong"))
		return
	}
	if req.Price == nil || *req.Price <= 0 {
		c.JSON(http.StatusBadRequest, fail("Harga harus lebih dari 0"))
		return
	}

	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, fail("User tidak terautentikasi"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, fail("Menu tidak ditemukan"))
		return
	}

	prepTime := 0
	if req.PreparationTime != nil {
		prepTime = *req.PreparationTime
	}
	isAvailable := false
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item, err := mc.menuItems.Update(userID, id, service.MenuItemInput{
		Name:            req.Name,
		Category:        req.Category,
		Price:           *req.Price,
		Description:     req.Description,
		PreparationTime: prepTime,
		SpicyLevel:      req.SpicyLevel,
		Calories:        req.Calories,
	}, isAvailable)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("Gagal memperbarui menu"))
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, fail("Menu tidak ditemukan"))
		return
	}

	c.JSON(http.StatusOK, success("Menu berhasil diperbarui", nil))
}

func (mc *MenuItemController) Delete(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, fail("User tidak terautentikasi"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, fail("Menu tidak ditemukan"))
		return
	}

	deleted, err := mc.menuItems.Delete(userID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("Gagal menghapus menu"))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, fail("Menu tidak ditemukan"))
		return
	}

	c.JSON(http.StatusOK, success("Menu berhasil dihapus", nil))
}

// Charts serialize as [category, value] pairs, the shape the frontend's
// chart widgets consume.

func (mc *MenuItemController) CountByCategory(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, fail("User tidak terautentikasi"))
		return
	}

	rows, err := mc.menuItems.CountByCategory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("Gagal mengambil data chart"))
		return
	}

	c.JSON(http.StatusOK, success("Data chart berhasil diambil", gin.H{"data": countPairs(rows)}))
}

func (mc *MenuItemController) AveragePriceByCategory(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, fail("User tidak terautentikasi"))
		return
	}

	rows, err := mc.menuItems.AveragePriceByCategory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("Gagal mengambil data chart"))
		return
	}

	c.JSON(http.StatusOK, success("Data chart berhasil diambil", gin.H{"data": pricePairs(rows)}))
}

func (mc *MenuItemController) TotalPriceByCategory(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, fail("User tidak terautentikasi"))
		return
	}

	rows, err := mc.menuItems.TotalPriceByCategory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("Gagal mengambil data chart"))
		return
	}

	c.JSON(http.StatusOK, success("Data chart berhasil diambil", gin.H{"data": pricePairs(rows)}))
}

func countPairs(rows []model.CategoryCount) [][]any {
	pairs := make([][]any, 0, len(rows))
	for _, r := range rows {
		pairs = append(pairs, []any{r.Category, r.Count})
	}
	return pairs
}

func pricePairs(rows []model.CategoryPrice) [][]any {
	pairs := make([][]any, 0, len(rows))
	for _, r := range rows {
		pairs = append(pairs, []any{r.Category, r.Price})
	}
	return pairs
}
