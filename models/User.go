package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

const (
	RoleAdmin    = "admin"
	RoleLandlord = "landlord"
	RoleTenant   = "tenant"
	RoleAgent    = "agent"
)

var userRoles = []string{RoleAdmin, RoleLandlord, RoleTenant, RoleAgent}

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255"`
	Password  string    `json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role" gorm:"type:varchar(20);default:tenant;index"` // admin, landlord, tenant, agent
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUser(email, password, firstName, lastName, phone, role string) *User {
	if role == "" {
		role = RoleTenant
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func ValidUserRole(role string) bool {
	return slices.Contains(userRoles, role)
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) Touch() {
	u.UpdatedAt = time.Now().UTC()
}
