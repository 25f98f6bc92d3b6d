// file: service/auth_service.go

package service

import (
	"crypto/sha512"
	"encoding/hex"
	"time"

	"scoring-api/model"
)

// AuthService checks request tokens against the expected SHA-512 digest.
// The concatenation order and the admin-hour time format are a wire
// contract: changing either invalidates every previously issued token.
type AuthService struct {
	salt       string
	adminSalt  string
	adminLogin string

	// Now supplies the clock for the admin digest. Tests override it.
	Now func() time.Time
}

func NewAuthService(salt, adminSalt, adminLogin string) *AuthService {
	return &AuthService{
		salt:       salt,
		adminSalt:  adminSalt,
		adminLogin: adminLogin,
		Now:        time.Now,
	}
}

// IsAdmin reports whether the request authenticates as the admin account.
func (s *AuthService) IsAdmin(req *model.MethodRequest) bool {
	return req.Login == s.adminLogin
}

// Check compares the request token with the expected digest: for the admin
// account the digest covers the current hour plus the admin salt, for
// everyone else the account, the login and the shared salt.
func (s *AuthService) Check(req *model.MethodRequest) bool {
	var digest string
	if s.IsAdmin(req) {
		digest = sha512Hex(s.Now().Format("2006010215") + s.adminSalt)
	} else {
		digest = sha512Hex(req.Account + req.Login + s.salt)
	}
	return digest == req.Token
}

func sha512Hex(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}
