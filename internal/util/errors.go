package util

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRegistered    = errors.New("user already exists with this email")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrChapterNotFound    = errors.New("chapter not found")
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrPageNotFound       = errors.New("page not found")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrTitleTaken         = errors.New("title already in use")
	ErrInvalidSecret      = errors.New("invalid promote secret")
)
