package onitama

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidSlot     = errors.New("invalid card slot")
	ErrInvalidSide     = errors.New("invalid side")
	ErrInvalidCatalog  = errors.New("invalid card catalog")
	ErrCatalogTooSmall = errors.New("card catalog has fewer than 5 cards")
	ErrInvalidEncoding = errors.New("invalid position encoding")
	ErrIllegalMove     = errors.New("illegal move")
)

// Reason 说明一步棋为什么不合法；ReasonNone 表示合法
type Reason int8

const (
	ReasonNone Reason = iota
	ReasonInvalidSlot
	ReasonNoPiece
	ReasonNotYourTurn
	ReasonFriendlyTarget
	ReasonUnreachable
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonInvalidSlot:
		return "invalid_slot"
	case ReasonNoPiece:
		return "no_piece"
	case ReasonNotYourTurn:
		return "not_your_turn"
	case ReasonFriendlyTarget:
		return "friendly_target"
	case ReasonUnreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("reason(%d)", int8(r))
	}
}

// IllegalMoveError is returned by PlayMove; the board is left untouched.
type IllegalMoveError struct {
	Move   Move
	Slot   CardSlot
	Reason Reason
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s with slot %d: %s", e.Move, e.Slot, e.Reason)
}

func (e *IllegalMoveError) Unwrap() error { return ErrIllegalMove }
