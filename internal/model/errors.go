package model

import "errors"

var ErrNoRecord = errors.New("no record")
var ErrAlreadyExists = errors.New("entity already exists")
var ErrEventNotFound = errors.New("event not found")
var ErrInvalidTimeFormat = errors.New("invalid time format")
var ErrInvalidDateRange = errors.New("invalid date range")
var ErrDragInProgress = errors.New("drag already in progress")
