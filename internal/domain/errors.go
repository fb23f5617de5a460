package domain

import "errors"

var (
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrRecordNotFound        = errors.New("record not found")
	ErrEditConflict          = errors.New("edit conflict")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrDuplicateFavorite     = errors.New("movie already in favorites")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
