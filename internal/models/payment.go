package models

import "time"

// Payment records a completed charge for a parcel. ParcelID is kept as the
// opaque identifier supplied by the client; it is not a foreign key.
// Rows are immutable once written.
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ParcelID      string    `gorm:"column:parcel_id;not null" json:"parcelId"`
	Email         string    `gorm:"not null;index" json:"email"`
	Amount        int64     `gorm:"not null" json:"amount"`
	PaymentMethod string    `gorm:"column:payment_method" json:"paymentMethod"`
	TransactionID string    `gorm:"column:transaction_id;not null" json:"transactionId"`
	PaidAtString  string    `gorm:"column:paid_at_string" json:"paid_at_string"`
	PaidAt        time.Time `gorm:"column:paid_at;index" json:"paid_at"`
}

func (Payment) TableName() string {
	return "payments"
}
