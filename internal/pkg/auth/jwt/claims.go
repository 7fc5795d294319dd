package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the claims carried by a Pariksha Mitra bearer token.
//
// Only the user id is embedded. Role and profile details are deliberately
// re-fetched from the credential store on every authenticated request, so a
// role change takes effect without waiting for the token to expire.
type Payload struct {
	// StandardClaims embeds the JWT standard fields such as Exp (Expiration),
	// Iat (Issued At), and Iss (Issuer), which drive token validity checks.
	jwt.StandardClaims

	// UserID is the unique identifier of the authenticated user.
	UserID string `json:"uid"`
}
