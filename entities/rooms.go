package entities

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomSuite  RoomType = "suite"
	RoomDeluxe RoomType = "deluxe"
)

// ParseRoomType validates a raw category against the known room types.
func ParseRoomType(s string) (RoomType, error) {
	switch rt := RoomType(s); rt {
	case RoomSingle, RoomDouble, RoomSuite, RoomDeluxe:
		return rt, nil
	default:
		return "", fmt.Errorf("unknown room type %q", s)
	}
}

// RoomInfo is the static catalog entry for one room category.
type RoomInfo struct {
	Name          string   `json:"name" yaml:"name"`
	PricePerNight float64  `json:"price_per_night" yaml:"price_per_night"`
	Inventory     int      `json:"inventory" yaml:"inventory"`
	Capacity      int      `json:"capacity" yaml:"capacity"`
	Amenities     []string `json:"amenities" yaml:"amenities"`
}

// RoomCatalog maps room categories to rates and inventory. It is seed
// data, not business law: a deployment may load its own from YAML.
type RoomCatalog map[RoomType]RoomInfo

func (c RoomCatalog) Info(roomType RoomType) (RoomInfo, error) {
	info, ok := c[roomType]
	if !ok {
		return RoomInfo{}, fmt.Errorf("unknown room type %q", roomType)
	}
	return info, nil
}

func DefaultCatalog() RoomCatalog {
	return RoomCatalog{
		RoomSingle: {
			Name:          "Single Room",
			PricePerNight: 100.0,
			Inventory:     10,
			Capacity:      1,
			Amenities:     []string{"WiFi", "TV", "Air Conditioning", "Breakfast"},
		},
		RoomDouble: {
			Name:          "Double Room",
			PricePerNight: 150.0,
			Inventory:     15,
			Capacity:      2,
			Amenities:     []string{"WiFi", "TV", "Air Conditioning", "Breakfast", "Mini Bar"},
		},
		RoomSuite: {
			Name:          "Suite",
			PricePerNight: 250.0,
			Inventory:     5,
			Capacity:      4,
			Amenities:     []string{"WiFi", "TV", "Air Conditioning", "Breakfast", "Mini Bar", "Living Area"},
		},
		RoomDeluxe: {
			Name:          "Deluxe Room",
			PricePerNight: 350.0,
			Inventory:     3,
			Capacity:      4,
			Amenities:     []string{"WiFi", "TV", "Air Conditioning", "Breakfast", "Mini Bar", "Living Area", "Jacuzzi"},
		},
	}
}

func CatalogFromYAML(data []byte) (RoomCatalog, error) {
	var catalog RoomCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse room catalog: %w", err)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("room catalog is empty")
	}
	return catalog, nil
}
