package series

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(series *RecurringEvent) error {
	return r.DB.Create(series).Error
}

func (r *Repository) GetByID(id string) (*RecurringEvent, error) {
	var series RecurringEvent
	if err := r.DB.First(&series, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &series, nil
}

func (r *Repository) List() ([]RecurringEvent, error) {
	var series []RecurringEvent
	err := r.DB.Order("created_at ASC").Find(&series).Error
	return series, err
}

func (r *Repository) Update(series *RecurringEvent) error {
	return r.DB.Save(series).Error
}

// Delete removes the series definition. Its instances disappear with it:
// they are derived at view time and never stored.
func (r *Repository) Delete(id string) error {
	return r.DB.Delete(&RecurringEvent{}, "id = ?", id).Error
}
