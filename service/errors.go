package service

import "errors"

var (
	ErrNilPlayer          = errors.New("player is required")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrUnknownBox         = errors.New("unknown lucky box")
	ErrUnknownCase        = errors.New("unknown case")
	ErrUnknownSuspect     = errors.New("unknown suspect")
	ErrUnknownTarget      = errors.New("unknown goal target")
	ErrInvalidCrossing    = errors.New("invalid crossing")
	ErrNoMoreClues        = errors.New("no more clues")
	ErrAccusationNotReady = errors.New("reveal every clue before accusing")
	ErrRoundClosed        = errors.New("round already closed")
)
