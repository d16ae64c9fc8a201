package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pet representa una mascota. OwnerID es inmutable después de la creación:
// una mascota tiene exactamente un dueño.
type Pet struct {
	ID           string
	OwnerID      string
	Name         string
	Species      string
	Age          int
	Weight       decimal.Decimal // kg, NUMERIC en DB
	Observations string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
