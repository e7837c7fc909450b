package dto

// ReferenceItem is one entry in a reference list (zones, subjects,
// mediums, districts).
type ReferenceItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// ZoneItem extends ReferenceItem with the owning district.
type ZoneItem struct {
	ReferenceItem
	DistrictID   string `json:"district_id,omitempty"`
	DistrictName string `json:"district_name,omitempty"`
}
