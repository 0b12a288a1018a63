// Package model contains the GORM persistence models mirroring the PostgreSQL
// schema. Constraints that back domain invariants (unique username, FK
// cascades, the 1:1 record/credit index) are declared here.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(150);unique;not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Organization string    `gorm:"type:varchar(200)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Owned rows are removed with the account; the verifier back-reference on
	// verified records is only nulled out.
	Authentications []AuthenticationModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens   []RefreshTokenModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Sites           []ProjectSiteModel     `gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE"`
	UploadedRecords []PlantationRecordModel `gorm:"foreignKey:UploadedBy;constraint:OnDelete:CASCADE"`
	VerifiedRecords []PlantationRecordModel `gorm:"foreignKey:VerifiedBy;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AuthenticationModel mirrors the 'user_authentications' table.
type AuthenticationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_auth_user_provider"`
	Provider     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_auth_user_provider"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthenticationModel) TableName() string {
	return "user_authentications"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
