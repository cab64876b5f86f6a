package middleware

import (
	"errors"
	"log"
	"net/http"

	"course-server/crypto"
	"course-server/entities"
	"course-server/repositories"

	"github.com/gin-gonic/gin"
)

const principalKey = "currentUser"

// denyReason is only ever written to the operator log. The HTTP response for
// every reason is the identical 401 produced by deny, so clients cannot tell
// a missing header, an unknown email and a wrong password apart.
type denyReason string

const (
	denyNoCredentials denyReason = "authorization header missing or malformed"
	denyUnknownUser   denyReason = "no user for email"
	denyBadPassword   denyReason = "password mismatch"
	denyLookupFailed  denyReason = "user lookup failed"
)

// Authenticate verifies Basic-Auth credentials against the user store and
// attaches the resolved user to the request context. The username half of the
// credentials is the account's email address.
func Authenticate(users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			deny(c, denyNoCredentials, "", nil)
			return
		}

		email = entities.NormalizeEmail(email)
		user, err := users.GetByEmail(email)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				deny(c, denyUnknownUser, email, nil)
			} else {
				// Fail closed on data-access errors.
				deny(c, denyLookupFailed, email, err)
			}
			return
		}

		if !crypto.CheckPassword(password, user.Password) {
			deny(c, denyBadPassword, email, nil)
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// deny aborts the request with the fixed 401 body and emits one operator log
// line. The reason and cause never leave that log.
func deny(c *gin.Context, reason denyReason, email string, cause error) {
	line := "request " + RequestIDFrom(c) + ": authentication failure"
	if email != "" {
		line += " for " + email
	}
	line += ": " + string(reason)
	if cause != nil {
		line += ": " + cause.Error()
	}
	log.Print(line)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
}

// CurrentUser returns the principal attached by Authenticate.
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entities.User)
	return user, ok
}
