package aiquiz

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/studyquiz-api/internal/config"
	"github.com/sirupsen/logrus"
	util "github.com/saulo-duarte/studyquiz-api/internal/utils"
)

type Service interface {
	GenerateQuestions(ctx context.Context, v Variant, req QuestionRequest) (json.RawMessage, error)
}

type service struct {
	provider Provider
	model    string
	now      util.Clock
}

func NewService(provider Provider, model string) Service {
	return NewServiceWithClock(provider, model, util.SystemClock)
}

func NewServiceWithClock(provider Provider, model string, now util.Clock) Service {
	return &service{provider: provider, model: model, now: now}
}

func (s *service) GenerateQuestions(ctx context.Context, v Variant, req QuestionRequest) (json.RawMessage, error) {
	req.applyDefaults()
	if err := v.Validate(req); err != nil {
		return nil, err
	}

	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"generation_id": uuid.NewString(),
		"variant":       v.Name,
		"model":         s.model,
	})

	prompt := v.BuildPrompt(req, s.now())

	start := time.Now()
	raw, err := s.provider.SendPrompt(ctx, s.model, prompt)
	if err != nil {
		var upstream *ErrUpstreamCall
		if !errors.As(err, &upstream) {
			err = &ErrUpstreamCall{Err: err}
		}
		log.WithError(err).Error("[AIQUIZ] Model call failed")
		return nil, err
	}
	log = log.WithField("latency_ms", time.Since(start).Milliseconds())

	questions, err := ParseQuestions(raw)
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] Unusable model response")
		log.Debugf("[AIQUIZ] Cleaned content:\n%s", StripCodeFences(raw))
		return nil, err
	}

	log.Info("[AIQUIZ] Questions generated")
	return questions, nil
}
