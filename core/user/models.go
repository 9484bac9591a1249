package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/eskwela/admin/core"
)

// Roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

var AllRoles = []string{RoleStudent, RoleTeacher, RoleAdmin}

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	GradeLevel   string    `json:"gradeLevel,omitempty"`
	PasswordHash []byte    `json:"-"`
	LastActive   time.Time `json:"lastActive"` // UTC
	CreatedAt    time.Time `json:"createdAt"`  // UTC
	Status       string    `json:"status"`
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsStudent() bool { return u.Role == RoleStudent }
func (u *User) IsTeacher() bool { return u.Role == RoleTeacher }
func (u *User) IsAdmin() bool   { return u.Role == RoleAdmin }
func (u *User) IsActive() bool  { return u.Status == core.StatusActive }

// NewUser contains information needed to create a new User.
type NewUser struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role" validate:"required,oneof=student teacher admin"`
	GradeLevel string `json:"gradeLevel" validate:"omitempty,gradelevel"`
	Password   string `json:"password" validate:"required"`
}

func (nu *NewUser) Validate() error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	return core.Validate.Struct(nu)
}

// UpdateUser defines what information may be provided to modify an existing
// User. Zero-valued fields are left unchanged.
type UpdateUser struct {
	Name       string `json:"name"`
	Email      string `json:"email" validate:"omitempty,email"`
	Role       string `json:"role" validate:"omitempty,oneof=student teacher admin"`
	GradeLevel string `json:"gradeLevel" validate:"omitempty,gradelevel"`
	Password   string `json:"password"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (uu *UpdateUser) Validate() error {
	uu.Name = core.CleanString(uu.Name)
	uu.Email = core.CleanString(uu.Email, true /* lower */)
	return core.Validate.Struct(uu)
}

// QueryFilter narrows, orders and pages user listings.
type QueryFilter struct {
	Page       int    `query:"page"`
	PerPage    int    `query:"per_page"`
	Role       string `query:"role"`
	GradeLevel string `query:"gradeLevel"`
	Status     string `query:"status"`
	Search     string `query:"search"`
	SortBy     string `query:"sortBy"`    // name | email | role | createdAt
	SortOrder  string `query:"sortOrder"` // asc (default) | desc
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// Counts summarizes the user table for the dashboard.
type Counts struct {
	Total    int
	Students int
	Teachers int
	Admins   int
	Active   int
}
