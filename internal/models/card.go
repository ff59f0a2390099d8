package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OperationType string

const (
	OperationLoad  OperationType = "LOAD"
	OperationSpend OperationType = "SPEND"
)

func (o OperationType) IsValid() bool {
	switch o {
	case OperationLoad, OperationSpend:
		return true
	default:
		return false
	}
}

// Card is the ledger row backing a physical prepaid card.
// The sync/fraud core never touches this directly; the service layer
// wraps reads and balance mutations into executor callbacks.
type Card struct {
	ID        string  `json:"id" gorm:"primaryKey"`
	CardUID   string  `json:"card_uid" gorm:"index;not null"`
	StudentID string  `json:"student_id" gorm:"index"`
	Balance   float64 `json:"balance" gorm:"not null"`
	Active    bool    `json:"active" gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Card) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	return
}

func (c *Card) Validate() error {
	if c.CardUID == "" {
		return fmt.Errorf("card UID is required")
	}
	if c.Balance < 0 {
		return fmt.Errorf("balance cannot be negative")
	}

	return nil
}
