package collection

import (
	"context"
	"fmt"
	"sort"

	"mtg-collector/core/scryfall"
	"mtg-collector/feature/collection/models"
)

// fakeStore is an in-memory CardStore with the same ordering contract as the
// real one: ids are assigned strictly increasing in insertion order.
type fakeStore struct {
	nextID    uint
	cards     map[uint]models.Card
	insertErr error
	deleteErr error
	updateErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{cards: map[uint]models.Card{}}
}

func (s *fakeStore) Insert(ctx context.Context, card *models.Card) (uint, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	s.nextID++
	card.ID = s.nextID
	s.cards[card.ID] = *card
	return card.ID, nil
}

func (s *fakeStore) FindIDs(ctx context.Context, setCode, collectorNumber, lang string) ([]uint, error) {
	var ids []uint
	for id, c := range s.cards {
		if c.SetCode != setCode || c.CollectorNumber != collectorNumber {
			continue
		}
		if c.Lang != lang {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *fakeStore) Delete(ctx context.Context, id uint) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.cards, id)
	return nil
}

func (s *fakeStore) List(ctx context.Context) ([]models.Card, error) {
	var ids []uint
	for id := range s.cards {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]models.Card, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.cards[id])
	}
	return out, nil
}

func (s *fakeStore) UpdatePrice(ctx context.Context, id uint, price *float64) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	c, ok := s.cards[id]
	if !ok {
		return fmt.Errorf("no card %d", id)
	}
	c.PriceUSD = price
	s.cards[id] = c
	return nil
}

// seed inserts a copy directly, bypassing the appender.
func (s *fakeStore) seed(setCode, collectorNumber, lang string) uint {
	id, _ := s.Insert(context.Background(), &models.Card{
		SetCode:         setCode,
		CollectorNumber: collectorNumber,
		Lang:            lang,
		Name:            "seeded",
	})
	return id
}

// fakeLookup serves canned cards keyed by "set/number/lang" and counts calls.
type fakeLookup struct {
	cards map[string]*scryfall.Card
	err   error
	calls int
}

func lookupKey(setCode, collectorNumber, lang string) string {
	return setCode + "/" + collectorNumber + "/" + lang
}

func (l *fakeLookup) Card(ctx context.Context, setCode, collectorNumber, lang string) (*scryfall.Card, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	card, ok := l.cards[lookupKey(setCode, collectorNumber, lang)]
	if !ok {
		return nil, scryfall.ErrNotFound
	}
	return card, nil
}
