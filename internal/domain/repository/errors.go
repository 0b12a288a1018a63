// Package repository defines the persistence contracts the usecase layer
// depends on, keeping the domain independent of any database driver.
package repository

import "bluecarbon/internal/errors"

// Sentinel errors returned by repository implementations. Usecases translate
// these into domain errors with the right HTTP semantics.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrAuthNotFound         = errors.New("authentication not found")
	ErrSiteNotFound         = errors.New("project site not found")
	ErrRecordNotFound       = errors.New("plantation record not found")
	ErrCreditNotFound       = errors.New("carbon credit not found")
	ErrDuplicateCredit      = errors.New("carbon credit already exists for record")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
)
