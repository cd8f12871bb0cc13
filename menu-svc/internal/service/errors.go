package service

import "errors"

var (
	ErrInvalidMenuItem = errors.New("invalid menu item")
	ErrInvalidOrder    = errors.New("invalid order")
	ErrInvalidContact  = errors.New("invalid contact")
	ErrInvalidPeriod   = errors.New("invalid period")
	ErrInvalidDate     = errors.New("invalid date")
)
