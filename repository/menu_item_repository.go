package repository

import (
	"errors"

	"resto/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItemRepository holds every menu item query. Each method is a single
// parameterized query; absence is returned as (nil, nil), never as an error.
type MenuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{db: db}
}

func (r *MenuItemRepository) FindAllByUserID(userID uuid.UUID) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// FindByKeyword matches name or description, case-insensitively.
func (r *MenuItemRepository) FindByKeyword(userID uuid.UUID, keyword string) ([]model.MenuItem, error) {
	pattern := "%" + keyword + "%"
	var items []model.MenuItem
	err := r.db.
		Where("user_id = ?", userID).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByUserIDAndID(userID, id uuid.UUID) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByID looks an item up by id alone, without owner scoping. Only the
// image-update path uses it.
func (r *MenuItemRepository) FindByID(id uuid.UUID) (*model.MenuItem, error) {
	var item model.MenuItem
	err := r.db.Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) FindByCategory(userID uuid.UUID, category string) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.
		Where("user_id = ? AND category = ?", userID, category).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindAvailable(userID uuid.UUID) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.
		Where("user_id = ? AND is_available = ?", userID, true).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) Create(item *model.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *MenuItemRepository) Save(item *model.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *MenuItemRepository) Delete(item *model.MenuItem) error {
	return r.db.Delete(item).Error
}

func (r *MenuItemRepository) CountByCategory(userID uuid.UUID) ([]model.CategoryCount, error) {
	var rows []model.CategoryCount
	err := r.db.Model(&model.MenuItem{}).
		Select("category, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("category").
		Scan(&rows).Error
	return rows, err
}

func (r *MenuItemRepository) AveragePriceByCategory(userID uuid.UUID) ([]model.CategoryPrice, error) {
	var rows []model.CategoryPrice
	err := r.db.Model(&model.MenuItem{}).
		Select("category, AVG(price) AS price").
		Where("user_id = ?", userID).
		Group("category").
		Scan(&rows).Error
	return rows, err
}

func (r *MenuItemRepository) TotalPriceByCategory(userID uuid.UUID) ([]model.CategoryPrice, error) {
	var rows []model.CategoryPrice
	err := r.db.Model(&model.MenuItem{}).
		Select("category, SUM(price) AS price").
		Where("user_id = ?", userID).
		Group("category").
		Scan(&rows).Error
	return rows, err
}
