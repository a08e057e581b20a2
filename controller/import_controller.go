package controller

import (
	"log"
	"net/http"
	"strconv"

	"resto/service"
	"resto/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// BulkImport inserts menu items from an uploaded xlsx. Expected columns on
// Sheet1, header row skipped: name, category, price, description,
// preparation time, spicy level, calories. Rows that fail the field rules
// are skipped, not rejected wholesale.
func (mc *MenuItemController) BulkImport(c *gin.Context) {
	userID, ok := utils.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusForbidden, fail("User tidak terautentikasi"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, fail("File Excel wajib diunggah"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail("Gagal membuka file Excel"))
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, fail("Gagal membaca file Excel"))
		return
	}
	defer xl.Close()

	rows, err := xl.GetRows("Sheet1")
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, fail("Excel harus memiliki minimal satu baris data"))
		return
	}

	inserted := 0
	for i, row := range rows[1:] {
		in, ok := parseImportRow(row)
		if !ok {
			log.Printf("baris %d dilewati: data tidak valid", i+2)
			continue
		}
		if _, err := mc.menuItems.Create(userID, in); err != nil {
			c.JSON(http.StatusInternalServerError, fail("Gagal menyimpan menu"))
			return
		}
		inserted++
	}

	if inserted == 0 {
		c.JSON(http.StatusBadRequest, fail("Tidak ada baris valid di file Excel"))
		return
	}

	c.JSON(http.StatusOK, success("Import menu berhasil", gin.H{"count": inserted}))
}

func parseImportRow(row []string) (service.MenuItemInput, bool) {
	if len(row) < 3 {
		return service.MenuItemInput{}, false
	}

	name := row[0]
	category := row[1]
	if name == "" || category == "" {
		return service.MenuItemInput{}, false
	}

	price, err := strconv.ParseFloat(row[2], 64)
	if err != nil || price <= 0 {
		return service.MenuItemInput{}, false
	}

	in := service.MenuItemInput{
		Name:            name,
		Category:        category,
		Price:           price,
		PreparationTime: 1,
	}

	if len(row) > 3 {
		in.Description = row[3]
	}
	if len(row) > 4 && row[4] != "" {
		prep, err := strconv.Atoi(row[4])
		if err != nil || prep <= 0 {
			return service.MenuItemInput{}, false
		}
		in.PreparationTime = prep
	}
	if len(row) > 5 && row[5] != "" {
		spicy, err := strconv.Atoi(row[5])
		if err != nil {
			return service.MenuItemInput{}, false
		}
		in.SpicyLevel = spicy
	}
	if len(row) > 6 && row[6] != "" {
		cal, err := strconv.Atoi(row[6])
		if err != nil {
			return service.MenuItemInput{}, false
		}
		in.Calories = &cal
	}

	return in, true
}
