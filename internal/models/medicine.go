package models

const MedicineCollection = "medicine"

// Medicine is a row in the read-mostly master catalog. No update endpoint is
// exposed for it.
type Medicine struct {
	Name         string   `json:"name" bson:"name" binding:"required"`
	GenericName  string   `json:"generic_name,omitempty" bson:"generic_name,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty" bson:"manufacturer,omitempty"`
	DosageForm   string   `json:"dosage_form,omitempty" bson:"dosage_form,omitempty"`
	Strength     string   `json:"strength,omitempty" bson:"strength,omitempty"`
	Interactions []string `json:"interactions,omitempty" bson:"interactions,omitempty"`
}
