package v1

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrygo/summarify/store"
)

// minPasswordLength mirrors the identity layer's minimum strength policy.
const minPasswordLength = 8

var emailMatcher = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type userRegistrationRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser creates a new account with the email as the login identifier.
// Validation failures respond with field-level error details.
func (s *APIV1Service) RegisterUser(c echo.Context) error {
	request := new(userRegistrationRequest)
	if err := c.Bind(request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string][]string{
			"non_field_errors": {"Invalid request body."},
		})
	}

	fieldErrors := map[string][]string{}
	if request.Email == "" {
		fieldErrors["email"] = append(fieldErrors["email"], "This field is required.")
	} else if !emailMatcher.MatchString(request.Email) {
		fieldErrors["email"] = append(fieldErrors["email"], "Enter a valid email address.")
	}
	if request.Password == "" {
		fieldErrors["password"] = append(fieldErrors["password"], "This field is required.")
	} else if len(request.Password) < minPasswordLength {
		fieldErrors["password"] = append(fieldErrors["password"],
			"This password is too short. It must contain at least 8 characters.")
	}
	if len(fieldErrors) > 0 {
		return c.JSON(http.StatusBadRequest, fieldErrors)
	}

	ctx := c.Request().Context()
	existing, err := s.Store.GetUser(ctx, &store.FindUser{Email: &request.Email})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to find user").SetInternal(err)
	}
	if existing != nil {
		return c.JSON(http.StatusBadRequest, map[string][]string{
			"email": {"A user with that email already exists."},
		})
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to hash password").SetInternal(err)
	}

	if _, err := s.Store.CreateUser(ctx, &store.User{
		Username:     request.Email,
		Email:        request.Email,
		PasswordHash: string(passwordHash),
	}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create user").SetInternal(err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "User registered successfully",
	})
}
