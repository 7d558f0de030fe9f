package models

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"volunteer-connect/internal/apperror"
)

// Role distinguishes volunteers from organization accounts
type Role string

const (
	RoleVolunteer    Role = "volunteer"
	RoleOrganization Role = "organization"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleVolunteer || r == RoleOrganization
}

// User represents a registered account
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null;index" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime;<-:create" json:"created_at"`

	// Relationships
	Organizations        []Organization `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Applications         []Application  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Payments             []Payment      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedOpportunities []Opportunity  `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// Validate checks the fields every stored user must carry
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return apperror.Validation("name", "Name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return apperror.Validation("email", "Email is required")
	}
	if u.PasswordHash == "" {
		return apperror.Validation("password", "Password is required")
	}
	if !u.Role.Valid() {
		return apperror.Validation("role", "Role must be one of: volunteer, organization")
	}
	return nil
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	return u.Validate()
}

// UserResponse is the external form of a User. It never carries the password hash.
type UserResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

// formatTime renders timestamps as RFC 3339 in UTC; zero times render empty
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
