package aiquiz

import (
	"strings"
	"time"
)

// Variant parameterizes the single generation pipeline for one input modality.
type Variant struct {
	Name string
	Path string
	// SourceField names the request field that must carry content.
	SourceField string
	// UsesCallerOptions is false when count, difficulty and types are left to
	// the model.
	UsesCallerOptions bool
	BuildPrompt       func(req QuestionRequest, now time.Time) string
}

var (
	VariantPDF = Variant{
		Name:              "pdf",
		Path:              "/using_pdf",
		SourceField:       "text",
		UsesCallerOptions: true,
		BuildPrompt:       BuildPDFPrompt,
	}
	VariantTopic = Variant{
		Name:              "topic",
		Path:              "/using_topic",
		SourceField:       "topic",
		UsesCallerOptions: true,
		BuildPrompt:       BuildTopicPrompt,
	}
	VariantOCR = Variant{
		Name:        "ocr",
		Path:        "/using_ocr",
		SourceField: "text",
		BuildPrompt: BuildOCRPrompt,
	}
)

func Variants() []Variant {
	return []Variant{VariantPDF, VariantTopic, VariantOCR}
}

// VariantByName looks a variant up by its short name (pdf, topic, ocr).
func VariantByName(name string) (Variant, bool) {
	for _, v := range Variants() {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return Variant{}, false
}

func (v Variant) source(req QuestionRequest) string {
	if v.SourceField == "topic" {
		return req.Topic
	}
	return req.Text
}

// Validate rejects requests whose prompt would embed empty content.
func (v Variant) Validate(req QuestionRequest) error {
	if strings.TrimSpace(v.source(req)) == "" {
		return &ErrRequestShape{Field: v.SourceField, Reason: "is required"}
	}
	if v.UsesCallerOptions && req.QuestionCount <= 0 {
		return &ErrRequestShape{Field: "questionCount", Reason: "must be a positive integer"}
	}
	return nil
}
