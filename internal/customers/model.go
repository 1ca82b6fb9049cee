package customers

import "time"

type Customer struct {
	ID        int64     `json:"id" db:"id"`
	Code      *string   `json:"code" db:"code"`
	Name      string    `json:"name" db:"name"`
	Kana      *string   `json:"kana" db:"kana"`
	Phone     *string   `json:"phone" db:"phone"`
	Email     *string   `json:"email" db:"email"`
	Postal    *string   `json:"postal" db:"postal"`
	Address1  *string   `json:"address1" db:"address1"`
	Address2  *string   `json:"address2" db:"address2"`
	Note      *string   `json:"note" db:"note"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
