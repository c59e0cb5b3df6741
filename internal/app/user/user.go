/*
Package user contains account rules shared by patients and doctors.

It owns password hashing, the accepted gender values and the public views of stored accounts,
which never carry the password hash.
*/
package user

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	dbc "medconnect/internal/app/db/sqlc"
)

// PasswordCost is the bcrypt work factor for stored passwords.
const PasswordCost = 10

// UploadsPath is the public route prefix for stored profile pictures.
const UploadsPath = "/uploads/"

// Genders lists the values accepted for a patient's gender, in display order.
var Genders = []string{"Male", "Female", "Other"}

// ErrPasswordMismatch is returned by CheckPassword for a wrong password.
var ErrPasswordMismatch = errors.New("password does not match")

// ValidGender reports whether g is one of Genders.
func ValidGender(g string) bool {
	for _, allowed := range Genders {
		if g == allowed {
			return true
		}
	}
	return false
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares password against a stored hash.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

// PictureURL turns a stored object key into the public URL served by the uploads route.
func PictureURL(key string) string {
	if key == "" {
		return ""
	}
	return UploadsPath + strings.TrimPrefix(key, "/")
}

// Patient is the public view of a registered patient.
type Patient struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	CountryCode string    `json:"countryCode"`
	NhsNumber   string    `json:"nhsNumber"`
	Phone       string    `json:"phone"`
	BloodGroup  string    `json:"bloodGroup"`
	Gender      string    `json:"gender"`
	ProfilePic  string    `json:"profilePic,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewPatient converts a stored row into its public view.
func NewPatient(u dbc.User) Patient {
	return Patient{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Address:     u.Address,
		CountryCode: u.CountryCode,
		NhsNumber:   u.NhsNumber,
		Phone:       u.Phone,
		BloodGroup:  u.BloodGroup,
		Gender:      u.Gender,
		ProfilePic:  PictureURL(u.ProfilePic.String),
		CreatedAt:   u.CreatedAt.Time,
	}
}

// Doctor is the public view of a registered doctor.
type Doctor struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	CountryCode string    `json:"countryCode"`
	NhsNumber   string    `json:"nhsNumber"`
	Phone       string    `json:"phone"`
	Department  string    `json:"department"`
	Role        string    `json:"role"`
	Hospital    string    `json:"hospital"`
	Gender      string    `json:"gender"`
	ProfilePic  string    `json:"profilePic,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewDoctor converts a stored row into its public view.
func NewDoctor(d dbc.Doctor) Doctor {
	return Doctor{
		ID:          d.ID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Address:     d.Address,
		CountryCode: d.CountryCode,
		NhsNumber:   d.NhsNumber,
		Phone:       d.Phone,
		Department:  d.Department,
		Role:        d.Role,
		Hospital:    d.Hospital,
		Gender:      d.Gender,
		ProfilePic:  PictureURL(d.ProfilePic.String),
		CreatedAt:   d.CreatedAt.Time,
	}
}
