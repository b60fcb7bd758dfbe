package models

type Tag struct {
	Base
	Title string `json:"title" gorm:"type:varchar(191);uniqueIndex;not null"`
}
