package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssociationType classifies an association
type AssociationType string

const (
	AssociationTypeHall       AssociationType = "hall"
	AssociationTypeDepartment AssociationType = "department"
	AssociationTypeFaculty    AssociationType = "faculty"
	AssociationTypeOther      AssociationType = "other"
)

// Association is the organisation collecting dues
type Association struct {
	ID         int64           `json:"id" db:"id"`
	Name       string          `json:"association_name" db:"name"`
	ShortName  string          `json:"association_short_name" db:"short_name"`
	Type       AssociationType `json:"association_type" db:"association_type"`
	AdminEmail string          `json:"admin_email" db:"admin_email"`
}

// DisplayName returns the best available human name for the association
func (a *Association) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ShortName
}

// Session is a billing period scoping payers and payment items
type Session struct {
	ID            int64     `json:"id" db:"id"`
	AssociationID int64     `json:"association_id" db:"association_id"`
	Title         string    `json:"title" db:"title"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Payer is a member paying dues within a session
type Payer struct {
	ID            int64  `json:"id" db:"id"`
	AssociationID int64  `json:"association_id" db:"association_id"`
	SessionID     int64  `json:"session_id" db:"session_id"`
	FirstName     string `json:"first_name" db:"first_name"`
	LastName      string `json:"last_name" db:"last_name"`
	Email         string `json:"email" db:"email"`
	PhoneNumber   string `json:"phone_number" db:"phone_number"`
	MatricNumber  string `json:"matric_number" db:"matric_number"`
}

// FullName joins first and last name
func (p *Payer) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// PaymentItem is a payable line defined by an association for a session
type PaymentItem struct {
	ID            int64           `json:"id" db:"id"`
	AssociationID int64           `json:"association_id" db:"association_id"`
	SessionID     int64           `json:"session_id" db:"session_id"`
	Title         string          `json:"title" db:"title"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Status        string          `json:"status" db:"status"`
	IsActive      bool            `json:"is_active" db:"is_active"`
}

// ReceiverBankAccount is the association's payout destination
type ReceiverBankAccount struct {
	AssociationID int64  `json:"association_id" db:"association_id"`
	BankName      string `json:"bank_name" db:"bank_name"`
	BankCode      string `json:"bank_code" db:"bank_code"`
	AccountName   string `json:"account_name" db:"account_name"`
	AccountNumber string `json:"account_number" db:"account_number"`
	IsVerified    bool   `json:"is_verified" db:"is_verified"`
}
