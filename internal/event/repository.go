package event

import (
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(event *Event) error {
	return r.DB.Create(event).Error
}

func (r *Repository) GetByID(id string) (*Event, error) {
	var event Event
	if err := r.DB.First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ListRange returns all one-off events with date in [from, to], ordered by
// date. Lexicographic BETWEEN is correct for zero-padded ISO dates.
func (r *Repository) ListRange(from, to string) ([]Event, error) {
	var events []Event
	err := r.DB.
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

func (r *Repository) Update(event *Event) error {
	return r.DB.Save(event).Error
}

func (r *Repository) Delete(id string) error {
	return r.DB.Delete(&Event{}, "id = ?", id).Error
}
