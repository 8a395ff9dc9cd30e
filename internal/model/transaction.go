package model

// TransactionStatusSuccess is the only status a recorded payment can carry.
const TransactionStatusSuccess = "SUCCESS"

// TimestampLayout is the minute-resolution local time format stored with each transaction.
const TimestampLayout = "2006-01-02 15:04"

// Transaction is a simulated payment from a registered payer to a free-text payee.
type Transaction struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	PayerName string  `json:"payer_name" gorm:"size:255;not null;index"`
	PayeeName string  `json:"payee_name" gorm:"size:255"`
	Amount    float64 `json:"amount"`
	Timestamp string  `json:"timestamp" gorm:"size:16"`
	Status    string  `json:"status" gorm:"size:20"`
}

// TableName pins the table name.
func (Transaction) TableName() string {
	return "transactions"
}
