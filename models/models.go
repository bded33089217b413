package models

import "time"

// Сущность Пользователя
type User struct {
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password" json:"-"`
	Role         Role   `db:"role" json:"role"`
}

// Сущность Объявления (продажа, бартер или пожертвование)
type Listing struct {
	ID            int           `db:"id" json:"id"`
	Title         string        `db:"title" json:"title"`
	Quantity      string        `db:"quantity" json:"quantity"`
	Type          ListingType   `db:"type" json:"type"`
	FarmerID      string        `db:"farmer_id" json:"farmer_id"`
	FarmerName    string        `db:"farmer_name" json:"farmer_name"`
	AvailableDate NullDate      `db:"available_date" json:"available_date"`
	Price         *float64      `db:"price" json:"price"`
	Status        ListingStatus `db:"status" json:"status"`
	ClaimedBy     *string       `db:"claimed_by" json:"claimed_by"`
}

// Профиль НКО, один на ngo_id
type NGOProfile struct {
	NGOID     string `db:"ngo_id" json:"ngo_id"`
	OrgName   string `db:"org_name" json:"org_name"`
	Contact   string `db:"contact" json:"contact"`
	Address   string `db:"address" json:"address"`
	FocusArea string `db:"focus_area" json:"focus_area"`
}

// Сущность Заявки на покупку. Условия копируются из объявления при создании.
type PurchaseRequest struct {
	ID           int           `db:"id" json:"id"`
	ListingID    int           `db:"listing_id" json:"listing_id"`
	BuyerID      string        `db:"buyer_id" json:"buyer_id"`
	FarmerID     string        `db:"farmer_id" json:"farmer_id"`
	CropTitle    string        `db:"crop_title" json:"crop_title"`
	Quantity     string        `db:"quantity" json:"quantity"`
	Price        *float64      `db:"price" json:"price"`
	PaymentProof string        `db:"payment_proof" json:"payment_proof"`
	Status       RequestStatus `db:"status" json:"status"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
}
