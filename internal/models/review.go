package models

// MaxReviewLength caps the free-text review body.
const MaxReviewLength = 800

type Review struct {
	ReviewID    int64  `json:"review_id" gorm:"primaryKey;autoIncrement:false"`
	ReviewerID  int64  `json:"reviewer_id" gorm:"not null;index;uniqueIndex:idx_reviewer_recipient"`
	RecipientID int64  `json:"recipient_id" gorm:"not null;index;uniqueIndex:idx_reviewer_recipient"`
	Review      string `json:"review" gorm:"not null"`
}

// ReviewWithReviewer attaches the reviewer's public identity for listings.
type ReviewWithReviewer struct {
	Review
	ReviewerUsername string `json:"reviewer_username,omitempty"`
}
