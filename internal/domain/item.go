package domain

// Item represents an immutable catalog definition referenced by listings
// and merchant offers. Catalog management lives outside the trading engine.
type Item struct {
	ID          int      `json:"item_id" db:"item_id"`
	Name        string   `json:"name" db:"item_name"`
	Description string   `json:"description" db:"item_description"`
	Type        ItemType `json:"type" db:"item_type"`
	IconKey     string   `json:"icon_key,omitempty" db:"icon_key"`
}

// ItemType is the closed enumeration of catalog item categories
type ItemType string

const (
	ItemTypeWeapon     ItemType = "WEAPON"
	ItemTypeArmor      ItemType = "ARMOR"
	ItemTypeConsumable ItemType = "CONSUMABLE"
	ItemTypeMaterial   ItemType = "MATERIAL"
	ItemTypeTrinket    ItemType = "TRINKET"
)

// ValidItemTypes lists every member of the closed enumeration
var ValidItemTypes = []ItemType{
	ItemTypeWeapon,
	ItemTypeArmor,
	ItemTypeConsumable,
	ItemTypeMaterial,
	ItemTypeTrinket,
}

// IsValid reports whether t is a member of the closed enumeration
func (t ItemType) IsValid() bool {
	for _, v := range ValidItemTypes {
		if t == v {
			return true
		}
	}
	return false
}
