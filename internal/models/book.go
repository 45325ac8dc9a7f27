package models

// Book condition values
const (
	ConditionNew  = "new"
	ConditionUsed = "used"
)

// Listing type selectors. The lowercase forms are legacy aliases still sent
// by older clients.
const (
	ListingSale     = "Sale"
	ListingLoan     = "Loan"
	ListingGiveaway = "Giveaway"
)

type Book struct {
	BookID        int64    `json:"book_id" gorm:"primaryKey;autoIncrement:false"`
	Title         string   `json:"title" gorm:"not null"`
	Author        string   `json:"author"`
	Description   string   `json:"description"`
	BookCondition string   `json:"book_condition" gorm:"not null"`
	Price         *float64 `json:"price"`
	UserID        int64    `json:"user_id" gorm:"not null;index"`
	IsForSale     bool     `json:"is_for_sale" gorm:"default:false"`
	IsForLoan     bool     `json:"is_for_loan" gorm:"default:false"`
	IsForGiveaway bool     `json:"is_for_giveaway" gorm:"default:false"`
	Genre         string   `json:"genre"`
	BookImgURL    string   `json:"book_img_url"`
	Transacted    bool     `json:"transacted" gorm:"default:false"`
}

// SetListingType derives the three listing flags from a single selector so
// exactly one of them is true. Unknown selectors fall back to giveaway.
func (b *Book) SetListingType(bookType string) {
	b.IsForSale = false
	b.IsForLoan = false
	b.IsForGiveaway = false

	switch bookType {
	case ListingSale, "sell":
		b.IsForSale = true
	case ListingLoan, "loan":
		b.IsForLoan = true
	default:
		b.IsForGiveaway = true
	}
}

// ListingType reports the selector matching the currently set flag.
func (b *Book) ListingType() string {
	switch {
	case b.IsForSale:
		return ListingSale
	case b.IsForLoan:
		return ListingLoan
	default:
		return ListingGiveaway
	}
}

// BookWithOwner attaches the owner's public username to a listing.
type BookWithOwner struct {
	Book
	OwnerUsername string `json:"owner_username,omitempty"`
}
