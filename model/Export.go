package model

// Record is one entry of the exported document.
type Record struct {
	ProvinceId   LocationID `json:"province_id"`
	ProvinceName string     `json:"province_name"`
	Districts    []string   `json:"districts"`
}
