package domain

import "time"

type Customer struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	PhoneE164 string     `json:"phone_e164"`
	Email     *string    `json:"email"`
	Birthday  *time.Time `json:"birthday"`
	Notes     *string    `json:"notes"`
	Sex       *string    `json:"sex"`
	Division  *string    `json:"division"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type Profile struct {
	UserID   string
	FullName *string
	Phone    *string
	Email    *string
	Birthday *time.Time
	Notes    *string
	Sex      *string
	Division *string
}
