package middleware

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"course-server/crypto"
	"course-server/entities"
	"course-server/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

const accessDeniedBody = `{"message":"Access Denied"}`

type fakeUserRepo struct {
	user *entities.User
}

func (r *fakeUserRepo) Create(*entities.User) error { return nil }

func (r *fakeUserRepo) GetByID(id uint) (*entities.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	if r.user != nil && r.user.EmailAddress == email {
		return r.user, nil
	}
	return nil, repositories.ErrNotFound
}

func newAuthRouter(t *testing.T) (*gin.Engine, *entities.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := crypto.HashPassword("secret12", bcrypt.MinCost)
	require.NoError(t, err)

	user := &entities.User{
		ID:           1,
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@example.com",
		Password:     hash,
	}

	r := gin.New()
	r.Use(RequestID())
	r.GET("/protected", Authenticate(&fakeUserRepo{user: user}), func(c *gin.Context) {
		principal, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": principal.EmailAddress})
	})
	return r, user
}

func doRequest(r *gin.Engine, setAuth func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if setAuth != nil {
		setAuth(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateNoHeader(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doRequest(r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, accessDeniedBody, w.Body.String())
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doRequest(r, func(req *http.Request) {
		req.Header.Set("Authorization", "Basic not!!base64")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, accessDeniedBody, w.Body.String())
}

func TestAuthenticateUnknownUser(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doRequest(r, func(req *http.Request) {
		req.SetBasicAuth("nobody@example.com", "secret12")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, accessDeniedBody, w.Body.String())
}

func TestAuthenticateWrongPassword(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doRequest(r, func(req *http.Request) {
		req.SetBasicAuth("joe@example.com", "wrongpw1")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, accessDeniedBody, w.Body.String())
}

// All three rejection causes must be byte-for-byte indistinguishable.
func TestAuthenticateRejectionsIndistinguishable(t *testing.T) {
	r, _ := newAuthRouter(t)

	noHeader := doRequest(r, nil)
	unknown := doRequest(r, func(req *http.Request) { req.SetBasicAuth("nobody@example.com", "secret12") })
	wrongPw := doRequest(r, func(req *http.Request) { req.SetBasicAuth("joe@example.com", "wrongpw1") })

	assert.Equal(t, noHeader.Code, unknown.Code)
	assert.Equal(t, unknown.Code, wrongPw.Code)
	assert.Equal(t, noHeader.Body.String(), unknown.Body.String())
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestAuthenticateSuccess(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doRequest(r, func(req *http.Request) {
		req.SetBasicAuth("joe@example.com", "secret12")
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"joe@example.com"}`, w.Body.String())
}

func TestAuthenticateEmailCaseInsensitive(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doRequest(r, func(req *http.Request) {
		req.SetBasicAuth("Joe@Example.COM", "secret12")
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

type failingUserRepo struct{}

func (failingUserRepo) Create(*entities.User) error { return nil }

func (failingUserRepo) GetByID(uint) (*entities.User, error) {
	return nil, errors.New("connection refused")
}

func (failingUserRepo) GetByEmail(string) (*entities.User, error) {
	return nil, errors.New("connection refused")
}

// A data-access failure still denies uniformly, and produces exactly one
// operator log line carrying the underlying cause.
func TestAuthenticateLookupErrorFailsClosed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	r := gin.New()
	r.Use(RequestID())
	r.GET("/protected", Authenticate(failingUserRepo{}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := doRequest(r, func(req *http.Request) {
		req.SetBasicAuth("joe@example.com", "secret12")
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, accessDeniedBody, w.Body.String())

	logged := buf.String()
	assert.Equal(t, 1, strings.Count(logged, "authentication failure"))
	assert.Contains(t, logged, "connection refused")
	assert.NotContains(t, logged, "secret12")
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doRequest(r, nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	echoed := doRequest(r, func(req *http.Request) {
		req.Header.Set("X-Request-ID", "abc-123")
	})
	assert.Equal(t, "abc-123", echoed.Header().Get("X-Request-ID"))
}
