package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrJobNotFound        = errors.New("job description not found")
	ErrResumeNotFound     = errors.New("resume not found")
	ErrScreeningNotFound  = errors.New("screening result not found")
	ErrStorageUnavailable = errors.New("file storage unavailable")
)
