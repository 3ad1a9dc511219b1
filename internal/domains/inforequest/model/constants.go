package model

const (
	MaxNameLength  = 50
	MaxNotesLength = 2000
)
