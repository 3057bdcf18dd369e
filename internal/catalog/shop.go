package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed shop.toml
var shopTOML []byte

// ItemCategory decides what a purchase grants.
type ItemCategory string

const (
	CategoryBall      ItemCategory = "ball"
	CategoryStone     ItemCategory = "stone"
	CategoryEffect    ItemCategory = "effect"
	CategoryPermanent ItemCategory = "permanent"
)

// Effect types granted by the shop.
const (
	EffectIncense  = "incense"
	EffectLure     = "lure"
	EffectLuckyEgg = "lucky_egg"
)

// UpgradeShinyCharm doubles shiny odds permanently.
const UpgradeShinyCharm = "shiny_charm"

// ShopItem is one row of the price table.
type ShopItem struct {
	ID              string       `toml:"id" json:"id"`
	Name            string       `toml:"name" json:"name"`
	Price           int64        `toml:"price" json:"price"`
	Category        ItemCategory `toml:"category" json:"category"`
	Ball            Ball         `toml:"ball" json:"ball,omitempty"`
	Quantity        int64        `toml:"quantity" json:"quantity,omitempty"`
	Stone           Stone        `toml:"stone" json:"stone,omitempty"`
	Effect          string       `toml:"effect" json:"effect,omitempty"`
	DurationMinutes int          `toml:"duration_minutes" json:"duration_minutes,omitempty"`
	Uses            int          `toml:"uses" json:"uses,omitempty"`
	Upgrade         string       `toml:"upgrade" json:"upgrade,omitempty"`
}

// Duration is how long an effect item stays active.
func (i ShopItem) Duration() time.Duration {
	return time.Duration(i.DurationMinutes) * time.Minute
}

// Shop is the loaded price table.
type Shop struct {
	order []string
	items map[string]ShopItem
}

type shopFile struct {
	Items []ShopItem `toml:"item"`
}

// LoadShop parses a TOML price table and validates every row.
func LoadShop(data []byte) (*Shop, error) {
	var f shopFile
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode shop table: %w", err)
	}

	shop := &Shop{items: make(map[string]ShopItem, len(f.Items))}
	for _, item := range f.Items {
		if err := validateItem(item); err != nil {
			return nil, err
		}
		if _, dup := shop.items[item.ID]; dup {
			return nil, fmt.Errorf("duplicate shop item %q", item.ID)
		}
		shop.items[item.ID] = item
		shop.order = append(shop.order, item.ID)
	}
	return shop, nil
}

// DefaultShop returns the embedded price table.
func DefaultShop() *Shop {
	shop, err := LoadShop(shopTOML)
	if err != nil {
		panic(err)
	}
	return shop
}

func validateItem(item ShopItem) error {
	if item.ID == "" {
		return fmt.Errorf("shop item without id")
	}
	if item.Price < 0 {
		return fmt.Errorf("shop item %q has negative price", item.ID)
	}
	switch item.Category {
	case CategoryBall:
		if item.Ball == BallPoke || !IsValidBall(item.Ball) || item.Quantity <= 0 {
			return fmt.Errorf("shop item %q: invalid ball grant", item.ID)
		}
	case CategoryStone:
		if !IsValidStone(item.Stone) {
			return fmt.Errorf("shop item %q: unknown stone %q", item.ID, item.Stone)
		}
	case CategoryEffect:
		if item.Effect == "" || (item.DurationMinutes <= 0 && item.Uses <= 0) {
			return fmt.Errorf("shop item %q: effect needs a duration or uses", item.ID)
		}
	case CategoryPermanent:
		if item.Upgrade != UpgradeShinyCharm {
			return fmt.Errorf("shop item %q: unknown upgrade %q", item.ID, item.Upgrade)
		}
	default:
		return fmt.Errorf("shop item %q: unknown category %q", item.ID, item.Category)
	}
	return nil
}

// Item looks up an item by id.
func (s *Shop) Item(id string) (ShopItem, bool) {
	item, ok := s.items[id]
	return item, ok
}

// Items returns every item in table order.
func (s *Shop) Items() []ShopItem {
	out := make([]ShopItem, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}
