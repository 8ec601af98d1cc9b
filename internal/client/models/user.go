// Package models defines the wire entities exchanged with the Pulse
// backend and the pure derivations the client computes from them.
package models

// UserRecord is the backend's representation of an account. The client
// treats it as immutable; a re-login replaces it wholesale.
type UserRecord struct {
	ID          string `json:"_id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Location    string `json:"location"`
	Occupation  string `json:"occupation"`
	PicturePath string `json:"picturePath"`
}

// Session is the authenticated identity plus the opaque bearer token.
// Once published, the token travels with every authenticated request.
type Session struct {
	User  UserRecord `json:"user"`
	Token string     `json:"token"`
}
