package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lithammer/shortuuid/v4"

	"github.com/hrygo/summarify/store"
)

const generationSystemPrompt = "You are a helpful assistant."

// generationTarget selects which record field receives the completion.
type generationTarget int

const (
	targetSummary generationTarget = iota
	targetBulletPoints
)

type generateRequest struct {
	Text string `json:"text"`
}

type generationRecordResponse struct {
	OriginalText string `json:"original_text"`
	Summary      string `json:"summary"`
	BulletPoints string `json:"bullet_points"`
}

// GenerateSummary summarizes the submitted text and persists the result.
func (s *APIV1Service) GenerateSummary(c echo.Context) error {
	return s.handleGeneration(c, "Summarize the following text:", targetSummary)
}

// GenerateBulletPoints converts the submitted text into bullet points and
// persists the result.
func (s *APIV1Service) GenerateBulletPoints(c echo.Context) error {
	return s.handleGeneration(c, "Convert this text into bullet points:", targetBulletPoints)
}

// handleGeneration is the shared request flow for both generation endpoints.
// Validation short-circuits before any network I/O; the record is persisted
// only after a successful adapter call, so no partial records can exist.
func (s *APIV1Service) handleGeneration(c echo.Context, instruction string, target generationTarget) error {
	request := new(generateRequest)
	if err := c.Bind(request); err != nil || request.Text == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Text is required"})
	}

	output, err := s.Generator.Generate(
		c.Request().Context(),
		generationSystemPrompt,
		instruction+"\n"+request.Text,
	)
	if err != nil {
		// The upstream failure message is surfaced verbatim.
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	create := &store.GenerationRecord{
		UID:          shortuuid.New(),
		OriginalText: request.Text,
	}
	switch target {
	case targetSummary:
		create.Summary = output
	case targetBulletPoints:
		create.BulletPoints = output
	}

	record, err := s.Store.CreateGenerationRecord(c.Request().Context(), create)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, &generationRecordResponse{
		OriginalText: record.OriginalText,
		Summary:      record.Summary,
		BulletPoints: record.BulletPoints,
	})
}
