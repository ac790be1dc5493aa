package models

import (
	"fmt"
	"strings"
	"time"
)

// Finish is the physical printing variant of a card. Each finish can carry a
// different price.
type Finish string

const (
	FinishNormal Finish = "normal"
	FinishFoil   Finish = "foil"
	FinishEtched Finish = "etched"
)

// ParseFinish maps free text to a Finish. Matching is trimmed and
// case-insensitive; anything unrecognized (including blank) is FinishNormal.
func ParseFinish(s string) Finish {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "foil":
		return FinishFoil
	case "etched":
		return FinishEtched
	default:
		return FinishNormal
	}
}

func (f Finish) String() string {
	return string(f)
}

// Location is where a physical copy is kept.
type Location string

const (
	LocationBinder   Location = "binder"
	LocationPersonal Location = "personal"
	LocationBulk     Location = "bulk"
)

// ParseLocation maps free text to a Location. Unlike finishes there is no
// default: an unknown location is a configuration error.
func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binder":
		return LocationBinder, nil
	case "personal":
		return LocationPersonal, nil
	case "bulk":
		return LocationBulk, nil
	default:
		return "", fmt.Errorf("invalid location %q (expected binder, personal or bulk)", s)
	}
}

func (l Location) String() string {
	return string(l)
}

// Request is one normalized CSV row: which printing, which finish, and how
// many physical copies it concerns. Lang is empty when the row carries no
// language.
type Request struct {
	SetCode         string
	CollectorNumber string
	Lang            string
	Finish          Finish
	Quantity        int
}

// Card is one physical copy in the collection. ID is assigned by the store,
// strictly increasing in insertion order; removal always takes the lowest ids
// first, so the id doubles as the insertion-order key.
type Card struct {
	ID              uint      `gorm:"column:id;primaryKey" json:"id"`
	SetCode         string    `gorm:"column:set_code;index:idx_cards_printing" json:"set_code"`
	CollectorNumber string    `gorm:"column:collector_number;index:idx_cards_printing" json:"collector_number"`
	Lang            string    `gorm:"column:lang;index:idx_cards_printing" json:"lang"`
	Name            string    `gorm:"column:name" json:"name"`
	ColorIdentity   string    `gorm:"column:color_identity" json:"color_identity"`
	PriceUSD        *float64  `gorm:"column:price_usd" json:"price_usd"`
	Location        Location  `gorm:"column:location" json:"location"`
	FetchedAt       time.Time `gorm:"column:fetched_at" json:"fetched_at"`
}

// TableName overrides the table name.
func (Card) TableName() string {
	return "cards"
}
