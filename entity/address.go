package entity

// Address ใช้ embed ใน User / Restaurant / Order (snapshot)
type Address struct {
	Street  string   `json:"street"`
	City    string   `json:"city"`
	State   string   `json:"state"`
	ZipCode string   `json:"zipCode"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}
