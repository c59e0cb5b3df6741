/*
Package translate detects the language of clinical notes and translates them.

Detection and translation go to the Google Cloud Translation v2 REST API when an API key is
configured. Without one, detection falls back to an offline n-gram detector and only
same-language requests can be answered.
*/
package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"medconnect/internal/pkg/logx"
)

var (
	// ErrInvalidTarget is returned when the target is not a BCP 47 language tag.
	ErrInvalidTarget = errors.New("invalid target language")

	// ErrNotConfigured is returned when a translation is needed but no provider is set up.
	ErrNotConfigured = errors.New("translation provider not configured")

	// ErrUndetermined is returned when the source language cannot be identified.
	ErrUndetermined = errors.New("source language could not be determined")
)

// Result is the outcome of DetectAndTranslate.
type Result struct {
	DetectedLanguage string `json:"detectedLanguage"`
	TranslatedText   string `json:"translatedText"`
}

// Provider is a remote detection and translation backend.
type Provider interface {
	Detect(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Service detects the source language of a text and translates it to a target language.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService returns a Service. A nil provider enables offline detection only.
func NewService(provider Provider) *Service {
	return &Service{
		provider: provider,
		logger:   logx.Component("translate"),
	}
}

// ParseTarget validates a target language and returns its canonical tag string.
func ParseTarget(target string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(target))
	if err != nil || tag == language.Und {
		return "", fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	return tag.String(), nil
}

// DetectAndTranslate identifies the language of text and translates it to target. Text already
// in the target language is returned unchanged without a provider round trip.
func (s *Service) DetectAndTranslate(ctx context.Context, text, target string) (Result, error) {
	target, err := ParseTarget(target)
	if err != nil {
		return Result{}, err
	}

	detected, err := s.detect(ctx, text)
	if err != nil {
		return Result{}, err
	}

	if sameLanguage(detected, target) {
		return Result{DetectedLanguage: detected, TranslatedText: text}, nil
	}

	if s.provider == nil {
		return Result{}, ErrNotConfigured
	}

	translated, err := s.provider.Translate(ctx, text, detected, target)
	if err != nil {
		return Result{}, err
	}

	return Result{DetectedLanguage: detected, TranslatedText: translated}, nil
}

func (s *Service) detect(ctx context.Context, text string) (string, error) {
	if s.provider != nil {
		detected, err := s.provider.Detect(ctx, text)
		if err != nil {
			return "", err
		}
		if detected != "" && detected != "und" {
			return detected, nil
		}
		s.logger.Debug().Msg("Provider could not detect language, trying offline detector")
	}

	return DetectOffline(text)
}

// DetectOffline guesses the ISO 639-1 code of text without any network access.
func DetectOffline(text string) (string, error) {
	info := whatlanggo.Detect(text)
	code := info.Lang.Iso6391()
	if code == "" {
		return "", ErrUndetermined
	}
	return code, nil
}

func sameLanguage(a, b string) bool {
	tagA, errA := language.Parse(a)
	tagB, errB := language.Parse(b)
	if errA != nil || errB != nil {
		return false
	}
	baseA, _ := tagA.Base()
	baseB, _ := tagB.Base()
	return baseA == baseB
}
