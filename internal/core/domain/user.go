package domain

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User - учетная запись маркетплейса (общая часть для обоих вариантов).
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// StudentUser - пользователь студенческого варианта (студент или арендодатель).
type StudentUser struct {
	User
	University   string   `json:"university"`
	StudyField   string   `json:"studyField"`
	YearOfStudy  int      `json:"yearOfStudy"`
	Bio          *string  `json:"bio"`
	ProfileImage *string  `json:"profileImage"`
	Lifestyle    []string `json:"lifestyle"`
	Preferences  []string `json:"preferences"`
	IsVerified   bool     `json:"isVerified"`
}

// NewUser - данные для регистрации, уже прошедшие валидацию схемой.
type NewUser struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     *string `json:"phone,omitempty"`
}

type NewStudentUser struct {
	NewUser
	University   string   `json:"university"`
	StudyField   string   `json:"studyField"`
	YearOfStudy  int      `json:"yearOfStudy"`
	Bio          *string  `json:"bio,omitempty"`
	ProfileImage *string  `json:"profileImage,omitempty"`
	Lifestyle    []string `json:"lifestyle,omitempty"`
	Preferences  []string `json:"preferences,omitempty"`
	IsVerified   *bool    `json:"isVerified,omitempty"`
}

func (u User) Clone() User {
	u.Phone = clonePtr(u.Phone)
	return u
}

func (u StudentUser) Clone() StudentUser {
	u.User = u.User.Clone()
	u.Bio = clonePtr(u.Bio)
	u.ProfileImage = clonePtr(u.ProfileImage)
	u.Lifestyle = cloneStrings(u.Lifestyle)
	u.Preferences = cloneStrings(u.Preferences)
	return u
}

// HashPassword хэширует пароль bcrypt'ом. cost <= 0 означает bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword сравнивает пароль с хэшем, хранящимся у пользователя.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
