package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownAllocationMode возвращается при неизвестном режиме аллокации
var ErrUnknownAllocationMode = errors.New("domain: unknown allocation mode")

// AllocationMode determines how a manual allocation changes effective capacity
type AllocationMode string

const (
	// ModeAllocateAll reserves the full base capacity of the resource within the window
	ModeAllocateAll AllocationMode = "allocate_all"
	// ModeIncrease adds Quantity to the effective capacity within the window
	ModeIncrease AllocationMode = "increase"
	// ModeReserve subtracts Quantity from the effective capacity within the window
	ModeReserve AllocationMode = "reserve"
)

// ParseAllocationMode парсит режим аллокации из строки
func ParseAllocationMode(s string) (AllocationMode, error) {
	switch AllocationMode(s) {
	case ModeAllocateAll:
		return ModeAllocateAll, nil
	case ModeIncrease:
		return ModeIncrease, nil
	case ModeReserve:
		return ModeReserve, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAllocationMode, s)
	}
}

// IsValid проверяет, что режим известен
func (m AllocationMode) IsValid() bool {
	return m == ModeAllocateAll || m == ModeIncrease || m == ModeReserve
}

// Allocation represents an administrator-declared capacity change over a window
// Quantity is ignored when Mode is ModeAllocateAll
type Allocation struct {
	ID         int64
	ResourceID int64
	Window     Window
	Quantity   int // >= 0
	Mode       AllocationMode
	Note       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
