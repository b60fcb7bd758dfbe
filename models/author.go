package models

type Author struct {
	Base
	Title        string    `json:"title" gorm:"not null"`
	FirstName    string    `json:"first_name" gorm:"not null"`
	LastName     string    `json:"last_name" gorm:"not null"`
	PhotoAssetID string    `json:"-"`
	PhotoURL     string    `json:"photo_url"`
	Articles     []Article `json:"articles,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// SetPhoto keeps the asset id and url in step.
func (a *Author) SetPhoto(assetID, url string) {
	a.PhotoAssetID = assetID
	a.PhotoURL = url
}
