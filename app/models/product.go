package models

// Inventory status values used by the catalogue front end.
const (
	InStock    = "INSTOCK"
	LowStock   = "LOWSTOCK"
	OutOfStock = "OUTOFSTOCK"
)

// Product is a catalogue entry as persisted in the flat JSON file.
// IDs and timestamps are Unix milliseconds, matching the historic file
// format, and are owned by the service layer — never by the client.
type Product struct {
	ID                int64   `json:"id"`
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Image             string  `json:"image"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	Quantity          int     `json:"quantity"`
	InternalReference string  `json:"internalReference"`
	ShellID           int64   `json:"shellId"`
	InventoryStatus   string  `json:"inventoryStatus"`
	Rating            float64 `json:"rating"`
	CreatedAt         int64   `json:"createdAt"`
	UpdatedAt         int64   `json:"updatedAt"`
}

// ProductPatch enumerates the fields a PUT may change. Pointer fields
// distinguish "absent" from "zero", giving shallow-merge semantics while
// keeping id and createdAt out of reach of the client.
type ProductPatch struct {
	Code              *string  `json:"code"`
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Image             *string  `json:"image"`
	Category          *string  `json:"category"`
	Price             *float64 `json:"price"`
	Quantity          *int     `json:"quantity"`
	InternalReference *string  `json:"internalReference"`
	ShellID           *int64   `json:"shellId"`
	InventoryStatus   *string  `json:"inventoryStatus"`
	Rating            *float64 `json:"rating"`
}

// Apply merges the patch onto p, leaving absent fields untouched.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Code != nil {
		p.Code = *patch.Code
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.InternalReference != nil {
		p.InternalReference = *patch.InternalReference
	}
	if patch.ShellID != nil {
		p.ShellID = *patch.ShellID
	}
	if patch.InventoryStatus != nil {
		p.InventoryStatus = *patch.InventoryStatus
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
}
