package domain

import "errors"

var (
	ErrInvalidID       = errors.New("invalid id")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidTitle    = errors.New("invalid title")
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidColumnID = errors.New("invalid column id")
	ErrCardNotOnBoard  = errors.New("card not on board")
	ErrDragInProgress  = errors.New("drag already in progress")
	ErrNoDrag          = errors.New("no drag in progress")
)
