package services

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrMediaNotFound = errors.New("media not found")
)
