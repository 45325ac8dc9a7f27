package models

type Rating struct {
	RatingID    int64   `json:"rating_id" gorm:"primaryKey;autoIncrement:false"`
	RaterID     int64   `json:"rater_id" gorm:"not null;index;uniqueIndex:idx_rater_recipient"`
	RecipientID int64   `json:"recipient_id" gorm:"not null;index;uniqueIndex:idx_rater_recipient"`
	Rating      float64 `json:"rating" gorm:"not null"`
}

// RatingStats summarizes all ratings received by one user. Average is 0
// (not null) when there are no ratings.
type RatingStats struct {
	RatingCount   int64   `json:"ratingCount"`
	AverageRating float64 `json:"averageRating"`
}
