package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/hrygo/summarify/ai/llm"
	"github.com/hrygo/summarify/internal/profile"
	"github.com/hrygo/summarify/server/auth"
	"github.com/hrygo/summarify/store"
)

type APIV1Service struct {
	Profile   *profile.Profile
	Store     *store.Store
	Generator llm.Generator
	Secret    string
}

func NewAPIV1Service(secret string, profile *profile.Profile, store *store.Store, generator llm.Generator) *APIV1Service {
	return &APIV1Service{
		Secret:    secret,
		Profile:   profile,
		Store:     store,
		Generator: generator,
	}
}

// RegisterRoutes attaches all v1 routes to the echo instance. The bearer guard
// is attached per-route; registration and token endpoints stay public.
func (s *APIV1Service) RegisterRoutes(e *echo.Echo) {
	e.POST("/user-registration/", s.RegisterUser)
	e.POST("/token/", s.ObtainTokenPair)
	e.POST("/token/refresh/", s.RefreshToken)

	guard := auth.BearerAuth(s.Secret)
	e.POST("/generate-summary/", s.GenerateSummary, guard)
	e.POST("/generate-bullet-points/", s.GenerateBulletPoints, guard)
}
