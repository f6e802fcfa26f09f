package v1

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSummary_Success(t *testing.T) {
	service, e := newTestService(t)
	token := registerAndLogin(t, e)

	generator := &fakeGenerator{output: "This is a short summary of the input text."}
	service.Generator = generator

	inputText := "This is a long paragraph that we want to summarize."
	rec := performRequest(e, http.MethodPost, "/generate-summary/", map[string]string{"text": inputText}, token)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, inputText, body["original_text"])
	assert.Equal(t, "This is a short summary of the input text.", body["summary"])
	assert.Equal(t, "", body["bullet_points"])
	assert.Equal(t, 1, generator.calls)

	records := listRecords(t, service)
	require.Len(t, records, 1)
	assert.Equal(t, inputText, records[0].OriginalText)
	assert.Equal(t, "This is a short summary of the input text.", records[0].Summary)
	assert.Equal(t, "", records[0].BulletPoints)
}

func TestGenerateSummary_MissingText(t *testing.T) {
	service, e := newTestService(t)
	token := registerAndLogin(t, e)

	generator := &fakeGenerator{output: "unused"}
	service.Generator = generator

	for _, body := range []map[string]string{
		{"text": ""},
		{},
	} {
		rec := performRequest(e, http.MethodPost, "/generate-summary/", body, token)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Text is required", decodeBody(t, rec)["error"])
	}

	assert.Equal(t, 0, generator.calls, "validation must short-circuit before the adapter call")
	assert.Empty(t, listRecords(t, service))
}

func TestGenerateSummary_UpstreamError(t *testing.T) {
	service, e := newTestService(t)
	token := registerAndLogin(t, e)

	service.Generator = &fakeGenerator{err: errors.New("OpenAI API failed")}

	rec := performRequest(e, http.MethodPost, "/generate-summary/", map[string]string{
		"text": "This is a long paragraph that we want to summarize.",
	}, token)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "OpenAI API failed", decodeBody(t, rec)["error"])
	assert.Empty(t, listRecords(t, service), "no record may be persisted on upstream failure")
}

func TestGenerateBulletPoints_Success(t *testing.T) {
	service, e := newTestService(t)
	token := registerAndLogin(t, e)

	generator := &fakeGenerator{output: "• Point 1\n• Point 2\n• Point 3"}
	service.Generator = generator

	inputText := "This is a long paragraph that we want to convert into bullet points."
	rec := performRequest(e, http.MethodPost, "/generate-bullet-points/", map[string]string{"text": inputText}, token)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, inputText, body["original_text"])
	assert.Equal(t, "", body["summary"])
	assert.Equal(t, "• Point 1\n• Point 2\n• Point 3", body["bullet_points"])

	records := listRecords(t, service)
	require.Len(t, records, 1)
	assert.Equal(t, inputText, records[0].OriginalText)
	assert.Equal(t, "", records[0].Summary)
	assert.Equal(t, "• Point 1\n• Point 2\n• Point 3", records[0].BulletPoints)
}

func TestGenerateBulletPoints_MissingText(t *testing.T) {
	service, e := newTestService(t)
	token := registerAndLogin(t, e)

	rec := performRequest(e, http.MethodPost, "/generate-bullet-points/", map[string]string{"text": ""}, token)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Text is required", decodeBody(t, rec)["error"])
	assert.Empty(t, listRecords(t, service))
}

func TestGenerateBulletPoints_UpstreamError(t *testing.T) {
	service, e := newTestService(t)
	token := registerAndLogin(t, e)

	service.Generator = &fakeGenerator{err: errors.New("OpenAI API failed")}

	rec := performRequest(e, http.MethodPost, "/generate-bullet-points/", map[string]string{
		"text": "This is a long paragraph that we want to convert into bullet points.",
	}, token)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "OpenAI API failed", decodeBody(t, rec)["error"])
	assert.Empty(t, listRecords(t, service))
}

func TestGeneration_Unauthenticated(t *testing.T) {
	service, e := newTestService(t)

	generator := &fakeGenerator{output: "unused"}
	service.Generator = generator

	for _, path := range []string{"/generate-summary/", "/generate-bullet-points/"} {
		// No token at all.
		rec := performRequest(e, http.MethodPost, path, map[string]string{"text": "some text"}, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authentication credentials were not provided.", decodeBody(t, rec)["detail"])

		// Garbage token.
		rec = performRequest(e, http.MethodPost, path, map[string]string{"text": "some text"}, "not-a-token")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token is invalid or expired", decodeBody(t, rec)["detail"])
	}

	assert.Equal(t, 0, generator.calls, "the guard must reject before handler logic runs")
	assert.Empty(t, listRecords(t, service))
}

func TestGeneration_RefreshTokenRejectedByGuard(t *testing.T) {
	service, e := newTestService(t)
	registerAndLogin(t, e)

	rec := performRequest(e, http.MethodPost, "/token/", map[string]string{
		"username": "testuser@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	refresh := decodeBody(t, rec)["refresh"].(string)

	rec = performRequest(e, http.MethodPost, "/generate-summary/", map[string]string{"text": "some text"}, refresh)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, listRecords(t, service))
}

func TestGeneration_NoDeduplication(t *testing.T) {
	service, e := newTestService(t)
	token := registerAndLogin(t, e)

	service.Generator = &fakeGenerator{output: "Same summary."}

	inputText := "Identical text posted twice."
	for i := 0; i < 2; i++ {
		rec := performRequest(e, http.MethodPost, "/generate-summary/", map[string]string{"text": inputText}, token)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	records := listRecords(t, service)
	require.Len(t, records, 2, "identical input must create two distinct records")
	assert.NotEqual(t, records[0].UID, records[1].UID)
}
