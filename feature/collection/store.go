package collection

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mtg-collector/feature/collection/models"
)

// CardStore is the store surface the processors need. *Store is the gorm
// implementation; tests substitute fakes.
type CardStore interface {
	// Insert persists one copy and returns the store-assigned id. Ids are
	// strictly increasing in insertion order.
	Insert(ctx context.Context, card *models.Card) (uint, error)
	// FindIDs returns the ids of all copies matching the printing, ascending.
	// An empty lang matches only copies stored without a language, it is not
	// a wildcard.
	FindIDs(ctx context.Context, setCode, collectorNumber, lang string) ([]uint, error)
	// Delete removes one copy by id.
	Delete(ctx context.Context, id uint) error
	// List returns the whole collection in id order.
	List(ctx context.Context) ([]models.Card, error)
	// UpdatePrice sets the price of one copy.
	UpdatePrice(ctx context.Context, id uint, price *float64) error
}

// Store persists the collection through gorm.
type Store struct {
	db *gorm.DB
}

// NewStore wraps a database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the cards table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&models.Card{}); err != nil {
		return fmt.Errorf("failed to migrate cards table: %w", err)
	}
	return nil
}

// Insert persists one copy and returns the assigned id.
func (s *Store) Insert(ctx context.Context, card *models.Card) (uint, error) {
	if err := s.db.WithContext(ctx).Create(card).Error; err != nil {
		return 0, fmt.Errorf("failed to insert card: %w", err)
	}
	return card.ID, nil
}

// FindIDs returns matching copy ids in ascending id order.
func (s *Store) FindIDs(ctx context.Context, setCode, collectorNumber, lang string) ([]uint, error) {
	q := s.db.WithContext(ctx).
		Model(&models.Card{}).
		Where("set_code = ? AND collector_number = ?", setCode, collectorNumber)

	if lang == "" {
		// Rows appended without a language store '' (or NULL from older
		// imports); an absent lang matches exactly those.
		q = q.Where("(lang IS NULL OR lang = '')")
	} else {
		q = q.Where("lang = ?", lang)
	}

	var ids []uint
	if err := q.Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to query matching cards: %w", err)
	}
	return ids, nil
}

// Delete removes one copy by id.
func (s *Store) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Card{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete card %d: %w", id, err)
	}
	return nil
}

// List returns the whole collection in id order.
func (s *Store) List(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// UpdatePrice sets the price of one copy.
func (s *Store) UpdatePrice(ctx context.Context, id uint, price *float64) error {
	if err := s.db.WithContext(ctx).
		Model(&models.Card{}).
		Where("id = ?", id).
		Update("price_usd", price).Error; err != nil {
		return fmt.Errorf("failed to update price for card %d: %w", id, err)
	}
	return nil
}
