package game

import "errors"

var (
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrLevelLocked       = errors.New("level is locked")
	ErrUnknownItem       = errors.New("unknown shop item")
	ErrNotFound          = errors.New("not found")
	ErrNoUpgradePending  = errors.New("no upgrade choice pending")
)
