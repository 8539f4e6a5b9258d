package domain

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// ProviderKakao is the only federated login provider currently wired.
const ProviderKakao = "kakao"

// Account is a local account record. A single record covers both credential
// styles: HasPassword reports whether a local password is set, HasSocialLink
// whether a federated identity is linked. A federated-only account has no
// password hash; a local signup has no social id.
type Account struct {
	ID            int64     `json:"-"`
	Email         string    `json:"email,omitempty"`
	Name          string    `json:"name"`
	PasswordHash  string    `json:"-"`
	ProfileImgURL string    `json:"profileImgUrl,omitempty"`
	Role          string    `json:"role"`
	Provider      string    `json:"-"`
	SocialID      string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (a *Account) HasPassword() bool   { return a.PasswordHash != "" }
func (a *Account) HasSocialLink() bool { return a.SocialID != "" }

// Principal is the authenticated caller for the duration of one request.
// It is created by the request gate after token validation, lives only in
// that request's context and is never shared across requests.
type Principal struct {
	AccountID int64
	Role      string
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// SessionAttributes is the outward-facing attribute set handed to the
// front end after a successful login (local or federated). Identifiers are
// already in opaque form; raw ids never appear here.
type SessionAttributes struct {
	AccessToken   string   `json:"accessToken"`
	Name          string   `json:"userName"`
	ProfileImgURL string   `json:"userProfileUrl"`
	IsFirstLogin  bool     `json:"isFirstLogin"`
	UserID        string   `json:"userId"`
	Role          string   `json:"userRole"`
	StoreIDs      []string `json:"storeIdList"`
}

// SocialProfile is what an OAuth provider reports about the caller after a
// successful code exchange.
type SocialProfile struct {
	Provider      string
	SocialID      string
	Name          string
	ProfileImgURL string
}
