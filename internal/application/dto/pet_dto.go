package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePetRequest entrada para crear una mascota. El dueño se toma del
// actor autenticado, nunca del body.
type CreatePetRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=100"`
	Species      string          `json:"species" validate:"required,min=1,max=100"`
	Age          int             `json:"age" validate:"min=0"`
	Weight       decimal.Decimal `json:"weight" validate:"min=0"`
	Observations string          `json:"observations" validate:"omitempty,max=500"`
}

// UpdatePetRequest entrada para actualización parcial: solo los campos
// presentes se aplican, los ausentes quedan intactos.
type UpdatePetRequest struct {
	Name         *string          `json:"name"`
	Species      *string          `json:"species"`
	Age          *int             `json:"age"`
	Weight       *decimal.Decimal `json:"weight"`
	Observations *string          `json:"observations"`
}

// PetResponse salida de una mascota.
type PetResponse struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"owner_id"`
	Name         string          `json:"name"`
	Species      string          `json:"species"`
	Age          int             `json:"age"`
	Weight       decimal.Decimal `json:"weight"`
	Observations string          `json:"observations,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PetListResponse listado paginado de mascotas.
type PetListResponse struct {
	Items []PetResponse `json:"items"`
}
