package models

import "time"

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Parcel is a shipment record. PaymentStatus is only ever moved to "paid"
// by the payment recording flow.
type Parcel struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CreatedByEmail  string    `gorm:"column:created_by_email;not null;index" json:"createdByEmail"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	Weight          float64   `json:"weight"`
	ReceiverName    string    `gorm:"column:receiver_name" json:"receiverName"`
	ReceiverContact string    `gorm:"column:receiver_contact" json:"receiverContact"`
	Destination     string    `json:"destination"`
	Cost            int64     `json:"cost"`
	PaymentStatus   string    `gorm:"column:payment_status;not null" json:"paymentStatus"`
	CreatedAt       time.Time `gorm:"index" json:"createdAt"`
}

func (Parcel) TableName() string {
	return "parcels"
}
