package models

type Genre struct {
	GenreID int64  `json:"genre_id" gorm:"primaryKey;autoIncrement:false"`
	Name    string `json:"name" gorm:"unique;not null"`
}
