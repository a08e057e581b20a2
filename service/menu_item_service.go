package service

import (
	"time"

	"resto/model"
	"resto/repository"

	"github.com/google/uuid"
)

// MenuItemService owns the menu item lifecycle. Every operation except
// UpdateImage is scoped to the acting user; a missing or foreign item is
// reported as a nil result, not an error. Validation of the incoming field
// values is the caller's job.
type MenuItemService struct {
	repo *repository.MenuItemRepository
}

func NewMenuItemService(repo *repository.MenuItemRepository) *MenuItemService {
	return &MenuItemService{repo: repo}
}

type MenuItemInput struct {
	Name            string
	Category        string
	Price           float64
	Description     string
	PreparationTime int
	SpicyLevel      int
	Calories        *int
}

func (s *MenuItemService) Create(userID uuid.UUID, in MenuItemInput) (*model.MenuItem, error) {
	now := time.Now()
	item := &model.MenuItem{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            in.Name,
		Category:        in.Category,
		Price:           in.Price,
		Description:     in.Description,
		IsAvailable:     true,
		PreparationTime: in.PreparationTime,
		SpicyLevel:      in.SpicyLevel,
		Calories:        in.Calories,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetAll lists the user's items newest first; a non-empty search narrows the
// list to items whose name or description contains it, case-insensitively.
func (s *MenuItemService) GetAll(userID uuid.UUID, search string) ([]model.MenuItem, error) {
	if search == "" {
		return s.repo.FindAllByUserID(userID)
	}
	return s.repo.FindByKeyword(userID, search)
}

func (s *MenuItemService) GetByID(userID, id uuid.UUID) (*model.MenuItem, error) {
	return s.repo.FindByUserIDAndID(userID, id)
}

func (s *MenuItemService) GetByCategory(userID uuid.UUID, category string) ([]model.MenuItem, error) {
	return s.repo.FindByCategory(userID, category)
}

func (s *MenuItemService) GetAvailable(userID uuid.UUID) ([]model.MenuItem, error) {
	return s.repo.FindAvailable(userID)
}

// Update overwrites every mutable field, zero values included. Partial
// updates are deliberately not supported.
func (s *MenuItemService) Update(userID, id uuid.UUID, in MenuItemInput, isAvailable bool) (*model.MenuItem, error) {
	item, err := s.repo.FindByUserIDAndID(userID, id)
	if err != nil || item == nil {
		return nil, err
	}

	item.Name = in.Name
	item.Category = in.Category
	item.Price = in.Price
	item.Description = in.Description
	item.PreparationTime = in.PreparationTime
	item.SpicyLevel = in.SpicyLevel
	item.Calories = in.Calories
	item.IsAvailable = isAvailable
	item.UpdatedAt = time.Now()

	if err := s.repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateImage sets the stored image filename. It resolves the item by id
// alone, without owner scoping; callers that care must resolve the item
// owner-scoped first.
func (s *MenuItemService) UpdateImage(id uuid.UUID, filename string) (*model.MenuItem, error) {
	item, err := s.repo.FindByID(id)
	if err != nil || item == nil {
		return nil, err
	}

	item.ImageURL = filename
	item.UpdatedAt = time.Now()

	if err := s.repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete reports whether an owned item was actually removed.
func (s *MenuItemService) Delete(userID, id uuid.UUID) (bool, error) {
	item, err := s.repo.FindByUserIDAndID(userID, id)
	if err != nil || item == nil {
		return false, err
	}
	if err := s.repo.Delete(item); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MenuItemService) CountByCategory(userID uuid.UUID) ([]model.CategoryCount, error) {
	return s.repo.CountByCategory(userID)
}

func (s *MenuItemService) AveragePriceByCategory(userID uuid.UUID) ([]model.CategoryPrice, error) {
	return s.repo.AveragePriceByCategory(userID)
}

func (s *MenuItemService) TotalPriceByCategory(userID uuid.UUID) ([]model.CategoryPrice, error) {
	return s.repo.TotalPriceByCategory(userID)
}
