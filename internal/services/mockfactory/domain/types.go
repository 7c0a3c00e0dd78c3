// Package domain holds the fixture model served by the mock Factory
package domain

import "context"

// Cube is one fixture block; it becomes a record of the cube and colour streams
type Cube struct {
	ID          uint32 `yaml:"id"`
	X           uint8  `yaml:"x"`
	Y           uint8  `yaml:"y"`
	Z           uint8  `yaml:"z"`
	Orientation uint8  `yaml:"orientation"`
	Colour      uint8  `yaml:"colour"`
}

// Robot is one fixture entry
type Robot struct {
	ID                 int64   `yaml:"id" validate:"gt=0"`
	Name               string  `yaml:"name" validate:"required"`
	Description        string  `yaml:"description"`
	Thumbnail          string  `yaml:"thumbnail"`
	AddedBy            string  `yaml:"added_by" validate:"required"`
	AddedByDisplayName string  `yaml:"added_by_display_name"`
	AddedDate          string  `yaml:"added_date"`
	ExpiryDate         string  `yaml:"expiry_date"`
	CPU                int64   `yaml:"cpu" validate:"min=0"`
	Ranking            int64   `yaml:"ranking"`
	RentCount          int64   `yaml:"rent_count"`
	BuyCount           int64   `yaml:"buy_count"`
	Buyable            bool    `yaml:"buyable"`
	Featured           bool    `yaml:"featured"`
	RemovedDate        *string `yaml:"removed_date"`
	BanDate            *string `yaml:"ban_date"`
	BannerMessage      *string `yaml:"banner_message"`
	CombatRating       float32 `yaml:"combat_rating"`
	CosmeticRating     float32 `yaml:"cosmetic_rating"`
	Movement           []int64 `yaml:"movement"`
	Weapons            []int64 `yaml:"weapons"`
	Cubes              []Cube  `yaml:"cubes" validate:"dive"`
}

// Fixtures is the root of a fixture file
type Fixtures struct {
	Robots []Robot `yaml:"robots" validate:"dive"`
}

// Source loads fixtures
type Source interface {
	Load(ctx context.Context) (Fixtures, error)
}
