package models

const StockCollection = "stock"

// Stock tracks one medicine's inventory at one facility.
type Stock struct {
	FacilityID string `json:"facility_id" bson:"facility_id" binding:"required"`
	MedicineID string `json:"medicine_id" bson:"medicine_id" binding:"required"`
	Quantity   *int   `json:"quantity" bson:"quantity" binding:"required,gte=0"`
	Threshold  int    `json:"threshold" bson:"threshold" binding:"gte=0"`
	Location   string `json:"location,omitempty" bson:"location,omitempty"`
}

// StockPatch is the set of fields a PATCH may change. Identifier references
// are fixed at creation.
type StockPatch struct {
	Quantity  *int    `json:"quantity" binding:"omitempty,gte=0"`
	Threshold *int    `json:"threshold" binding:"omitempty,gte=0"`
	Location  *string `json:"location"`
}

// Fields returns the patch as field/value pairs, skipping everything unset.
func (p *StockPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Quantity != nil {
		fields["quantity"] = *p.Quantity
	}
	if p.Threshold != nil {
		fields["threshold"] = *p.Threshold
	}
	if p.Location != nil {
		fields["location"] = *p.Location
	}
	return fields
}
