package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/studyquiz-api/internal/aiquiz"
	"github.com/saulo-duarte/studyquiz-api/internal/health"
	"github.com/saulo-duarte/studyquiz-api/internal/router"
	util "github.com/saulo-duarte/studyquiz-api/internal/utils"
)

const photosynthesis = `{"questions":[{"id":1,"type":"multiple-choice","difficulty":"easy","question":"Which pigment absorbs light?","options":["Chlorophyll","Keratin","Hemoglobin","Melanin"],"correct_answer":"Chlorophyll","explanation":"Chlorophyll absorbs red and blue light.","topic":"Pigments"},{"id":2,"type":"short-answer","difficulty":"medium","question":"What are the products?","sample_answer":"Glucose and oxygen","explanation":"6CO2 + 6H2O -> C6H12O6 + 6O2","topic":"Equation"},{"id":3,"type":"true-false","difficulty":"hard","question":"The Calvin cycle needs light directly.","correct_answer":false,"explanation":"It uses ATP and NADPH.","topic":"Calvin cycle"}]}`

func newTestRouter(t *testing.T, limit int64, responses ...aiquiz.MockResponse) (http.Handler, *aiquiz.MockProvider) {
	t.Helper()
	mock := aiquiz.NewMockProvider(responses...)
	quiz := aiquiz.NewAIQuizContainerWithProvider(mock, "gemini-test")
	return router.New(router.RouterConfig{
		AIQuizHandler:  quiz.Handler,
		HealthHandler:  health.NewHandler("Backend Zinda Hai", util.SystemClock),
		AllowedOrigins: []string{"*"},
		MaxBodyBytes:   limit,
	}), mock
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t, 1<<20)

	rec := serve(h, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Backend Zinda Hai", body["service"])

	ts, err := util.ParseISO(body["timestamp"])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, 5*time.Second)
}

func TestNotFound(t *testing.T) {
	h, _ := newTestRouter(t, 1<<20)

	cases := []struct{ method, path string }{
		{http.MethodGet, "/does/not/exist"},
		{http.MethodPost, "/does/not/exist"},
		{http.MethodDelete, "/api"},
		{http.MethodGet, "/api/using_pdf"},
		{http.MethodPost, "/api/health"},
		{http.MethodPost, "/api/using_audio"},
	}
	for _, c := range cases {
		t.Run(c.method+" "+c.path, func(t *testing.T) {
			rec := serve(h, c.method, c.path, "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":"Not found","message":"The requested endpoint does not exist"}`, rec.Body.String())
		})
	}
}

func TestUsingTopic_EndToEnd(t *testing.T) {
	h, mock := newTestRouter(t, 1<<20, aiquiz.MockResponse{Text: "```json\n" + photosynthesis + "\n```"})

	rec := serve(h, http.MethodPost, "/api/using_topic", `{"topic":"Photosynthesis","questionCount":3}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, photosynthesis, rec.Body.String())

	var decoded aiquiz.QuestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	require.Len(t, decoded.Questions, 3)
	assert.Nil(t, decoded.Metadata)
	assert.Equal(t, aiquiz.TypeMultipleChoice, decoded.Questions[0].Type)
	assert.JSONEq(t, `"Chlorophyll"`, string(decoded.Questions[0].CorrectAnswer))
	assert.Equal(t, "Glucose and oxygen", decoded.Questions[1].SampleAnswer)
	assert.JSONEq(t, `false`, string(decoded.Questions[2].CorrectAnswer))

	call, ok := mock.LastCall()
	require.True(t, ok)
	assert.Equal(t, "gemini-test", call.Model)
	assert.Contains(t, call.Prompt, "Photosynthesis")
	assert.Contains(t, call.Prompt, "Include exactly 3 questions")
}

func TestUsingPDF_UpstreamFailure(t *testing.T) {
	h, _ := newTestRouter(t, 1<<20)

	rec := serve(h, http.MethodPost, "/api/using_pdf", `{"text":"Some passage"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "UpstreamCallError", body["error"])
}

func TestBodyLimit(t *testing.T) {
	h, mock := newTestRouter(t, 64, aiquiz.MockResponse{Text: `{"questions":[]}`})

	rec := serve(h, http.MethodPost, "/api/using_ocr", `{"text":"`+strings.Repeat("x", 200)+`"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Zero(t, mock.CallCount())
}

func TestCorsPreflight(t *testing.T) {
	h, _ := newTestRouter(t, 1<<20)

	req := httptest.NewRequest(http.MethodOptions, "/api/using_topic", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestTrailingSlash(t *testing.T) {
	h, mock := newTestRouter(t, 1<<20, aiquiz.MockResponse{Text: `{"questions":[]}`})

	rec := serve(h, http.MethodPost, "/api/using_topic/", `{"topic":"Rivers"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"questions":[]}`, rec.Body.String())
	assert.Equal(t, 1, mock.CallCount())

	rec = serve(h, http.MethodGet, "/api/health/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDocs(t *testing.T) {
	h, _ := newTestRouter(t, 1<<20)

	rec := serve(h, http.MethodGet, "/api/docs/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "/api", doc.BasePath)
	for _, p := range []string{"/health", "/using_pdf", "/using_topic", "/using_ocr"} {
		assert.Contains(t, doc.Paths, p)
	}

	rec = serve(h, http.MethodGet, "/api/docs", "")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/api/docs/index.html", rec.Header().Get("Location"))
}
