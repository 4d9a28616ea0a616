package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrGameOver        = errors.New("game is over")

	// Input errors
	ErrInvalidAction = errors.New("invalid action")

	// Catalog errors
	ErrUnknownPieceKind = errors.New("unknown piece kind")
)
