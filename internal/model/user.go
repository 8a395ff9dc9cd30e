package model

// User is a registered account holder. Password is kept verbatim because
// login compares it by plain equality.
type User struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Email              string    `json:"email" gorm:"size:255"`
	Password           string    `json:"-" gorm:"size:255"`
	Address            string    `json:"address" gorm:"type:text"`
	CardLast4          string    `json:"card_last4" gorm:"column:card_last4;size:4"`
	BiometricSignature Signature `json:"-" gorm:"column:biometric_signature;type:text"`
}

// TableName pins the table name.
func (User) TableName() string {
	return "users"
}
