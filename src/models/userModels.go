package models

type UserRole string

const (
	RoleStudent        UserRole = "STUDENT"
	RoleProfessor      UserRole = "PROFESSOR"
	RoleAdministrative UserRole = "ADMINISTRATIVE"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleAdministrative:
		return true
	}
	return false
}

type UserModel struct {
	Id       int      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string   `json:"name" gorm:"type:varchar(255);not null"`
	Email    string   `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	Password string   `json:"-" gorm:"type:varchar(100)"`
	Role     UserRole `json:"role" gorm:"type:varchar(20);not null;default:STUDENT"`
}

func (UserModel) TableName() string {
	return "users"
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

type RegisterResponse struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
