package service

import (
	"crypto/subtle"

	"hotelhub/internal/models"
	"hotelhub/internal/store"

	"github.com/rs/zerolog"
)

type account struct {
	email    string
	password string
	user     models.User
}

// demoAccounts are the two fixed identities. There is no registration.
var demoAccounts = []account{
	{
		email:    "admin@hotel.com",
		password: "admin123",
		user:     models.User{ID: "admin-1", Name: "Admin Manager", Email: "admin@hotel.com", Role: models.RoleAdmin},
	},
	{
		email:    "user@hotel.com",
		password: "user123",
		user:     models.User{ID: "user-1", Name: "John Doe", Email: "user@hotel.com", Role: models.RoleUser},
	},
}

type AuthService struct {
	session *store.Session
	logger  *zerolog.Logger
}

func NewAuthService(session *store.Session, logger *zerolog.Logger) *AuthService {
	return &AuthService{session: session, logger: logger}
}

// SignIn matches the credentials against the fixed accounts. On success the
// matched identity becomes the current one, replacing any previous session.
func (s *AuthService) SignIn(email, password string) (models.User, bool) {
	for _, acc := range demoAccounts {
		emailOK := subtle.ConstantTimeCompare([]byte(acc.email), []byte(email)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(acc.password), []byte(password)) == 1
		if emailOK && passOK {
			s.session.SetCurrent(acc.user)
			s.logger.Info().Str("user_id", acc.user.ID).Str("role", acc.user.Role).Msg("signed in")
			return acc.user, true
		}
	}

	s.logger.Warn().Str("email", email).Msg("sign-in rejected")
	return models.User{}, false
}

func (s *AuthService) SignOut() {
	if u, ok := s.session.Current(); ok {
		s.logger.Info().Str("user_id", u.ID).Msg("signed out")
	}
	s.session.Clear()
}

func (s *AuthService) Current() (models.User, bool) {
	return s.session.Current()
}
