package model

// Location is a point on the map plus a human-readable address.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `gorm:"type:varchar(255)" json:"address"`
}

// Institution represents a university in the catalogue. Institutions are
// read-only through the API; TotalUploads and AverageRating are aggregates
// recomputed from the research collection.
type Institution struct {
	ID            string   `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name          string   `gorm:"not null;uniqueIndex;type:varchar(255)" json:"name"`
	Location      Location `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	LogoURL       string   `gorm:"type:varchar(512)" json:"logo_url,omitempty"`
	TotalUploads  int      `gorm:"not null;default:0" json:"total_uploads"`
	AverageRating float64  `gorm:"not null;default:0" json:"average_rating"`
	Country       string   `gorm:"type:varchar(100)" json:"country,omitempty"`
}
