package jwt

import "github.com/golang-jwt/jwt"

// Payload is the claim set of an identity token issued at login or registration.
type Payload struct {
	jwt.StandardClaims `json:"standard_claims"`

	// ID is the database id of the patient or doctor, rendered as a string.
	ID string `json:"id"`

	// Role is either RolePatient or RoleDoctor; ids are only unique within a role.
	Role string `json:"role"`

	// Email is the login email at the time the token was issued.
	Email string `json:"email"`
}

const (
	// RolePatient marks tokens for rows of the users table.
	RolePatient = "patient"

	// RoleDoctor marks tokens for rows of the doctors table.
	RoleDoctor = "doctor"
)
