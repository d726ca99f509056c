package models

import "time"

// Token is an issued or verified JWT bearer token.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in the Authorization header. UserID is the owner
// identifier extracted from the "sub" claim during verification.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the identifier carried in the "sub" claim.
	UserID int64 `json:"-"`

	// ExpiresAt is the instant after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
