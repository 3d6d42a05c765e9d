package aiquiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/saulo-duarte/studyquiz-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateFromPDF godoc
// @Summary      Generate questions from a text passage
// @Description  Requires text. Response includes a metadata block.
// @Tags         questions
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        request  body      QuestionRequest  true  "Source material and options"
// @Success      200      {object}  QuestionsResponse
// @Failure      400      {object}  config.ErrorBody
// @Failure      413      {object}  config.ErrorBody
// @Failure      422      {object}  config.ErrorBody
// @Failure      502      {object}  config.ErrorBody
// @Router       /using_pdf [post]
func (h *Handler) GenerateFromPDF(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, VariantPDF)
}

// GenerateFromTopic godoc
// @Summary      Generate questions about a topic
// @Description  Requires topic.
// @Tags         questions
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        request  body      QuestionRequest  true  "Source material and options"
// @Success      200      {object}  QuestionsResponse
// @Failure      400      {object}  config.ErrorBody
// @Failure      413      {object}  config.ErrorBody
// @Failure      422      {object}  config.ErrorBody
// @Failure      502      {object}  config.ErrorBody
// @Router       /using_topic [post]
func (h *Handler) GenerateFromTopic(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, VariantTopic)
}

// GenerateFromOCR godoc
// @Summary      Generate questions from OCR-extracted text
// @Description  Requires text. Count, difficulty and types are inferred; each question carries source_quality and ocr_notes.
// @Tags         questions
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        request  body      QuestionRequest  true  "Source material and options"
// @Success      200      {object}  QuestionsResponse
// @Failure      400      {object}  config.ErrorBody
// @Failure      413      {object}  config.ErrorBody
// @Failure      422      {object}  config.ErrorBody
// @Failure      502      {object}  config.ErrorBody
// @Router       /using_ocr [post]
func (h *Handler) GenerateFromOCR(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, VariantOCR)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request, v Variant) {
	log := config.WithContext(r.Context()).WithField("variant", v.Name)

	req, err := decodeRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// The model call runs to completion even if the client goes away.
	ctx := context.WithoutCancel(r.Context())

	questions, err := h.service.GenerateQuestions(ctx, v, req)
	if err != nil {
		log.WithError(err).Errorf("Failed to generate questions: %v", err)
		writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := classify(err)
	if status >= http.StatusInternalServerError {
		config.WithContext(r.Context()).WithError(err).Warnf("Responding %d %s", status, kind)
	}
	config.Error(w, status, kind, err.Error())
}

func decodeRequest(r *http.Request) (QuestionRequest, error) {
	req := NewQuestionRequest()

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := decodeForm(r, &req); err != nil {
			return req, err
		}
		return req, nil
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, err
		}
		if errors.Is(err, io.EOF) {
			return req, &ErrRequestShape{Reason: "request body is empty"}
		}
		return req, &ErrRequestShape{Reason: "invalid request body", Err: err}
	}

	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, err
		}
		return req, &ErrRequestShape{Reason: "invalid request body: unexpected data after JSON value"}
	}
	return req, nil
}

func decodeForm(r *http.Request, req *QuestionRequest) error {
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return &ErrRequestShape{Reason: "invalid form body", Err: err}
	}

	form := r.PostForm
	if raw := form.Get("questionCount"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return &ErrRequestShape{Field: "questionCount", Reason: fmt.Sprintf("must be an integer, got %q", raw)}
		}
		req.QuestionCount = Count(n)
	}
	if d := form.Get("difficulty"); d != "" {
		req.Difficulty = d
	}
	if types := form["questionTypes"]; len(types) > 0 {
		req.QuestionTypes = nil
		for _, t := range types {
			for _, part := range strings.Split(t, ",") {
				if p := strings.TrimSpace(part); p != "" {
					req.QuestionTypes = append(req.QuestionTypes, p)
				}
			}
		}
	}
	req.Text = form.Get("text")
	req.Topic = form.Get("topic")
	return nil
}
