package service

import (
	"context"
	"log/slog"

	"github.com/gvpass/gvpass-go/internal/crypto"
	"github.com/gvpass/gvpass-go/internal/model"
)

const (
	EncodingBase64    = "base64"
	EncodingBase64URL = "base64url"
)

// EventRecorder stores generation events for usage statistics.
type EventRecorder interface {
	Record(ctx context.Context, event *model.GenerationEvent) error
}

// GeneratorService handles password and key generation business logic.
type GeneratorService struct {
	generator *crypto.Generator
	recorder  EventRecorder
}

// NewGeneratorService creates a new GeneratorService. A nil recorder disables statistics.
func NewGeneratorService(gen *crypto.Generator, recorder EventRecorder) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{generator: gen, recorder: recorder}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := OptionsFromRequest(req)

	password, err := s.generator.Password(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	strength := crypto.Estimate(password, opts)
	if password != "" {
		s.record(ctx, &model.GenerationEvent{
			Mode:       model.ModePassword,
			Length:     len(password),
			Categories: opts.TypesEnabled(),
			Score:      strength.Score,
		})
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: toStrengthResponse(strength),
	}, nil
}

// GenerateKey produces a Base64 encoded random key.
func (s *GeneratorService) GenerateKey(ctx context.Context, req model.KeyRequest) (model.KeyResponse, error) {
	size := req.Bytes
	if size == 0 {
		size = crypto.DefaultKeySize
	}

	key, err := s.generator.Key(size, req.URLSafe)
	if err != nil {
		return model.KeyResponse{}, err
	}

	encoding := EncodingBase64
	if req.URLSafe {
		encoding = EncodingBase64URL
	}

	strength := crypto.KeyStrength()
	s.record(ctx, &model.GenerationEvent{
		Mode:   model.ModeKey,
		Length: size,
		Score:  strength.Score,
	})

	return model.KeyResponse{
		Key:      key,
		Bytes:    size,
		Encoding: encoding,
		Strength: toStrengthResponse(strength),
	}, nil
}

// Strength rates a password produced with the categories named in the request.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthResponse {
	opts := crypto.Options{
		Uppercase: req.Uppercase,
		Lowercase: req.Lowercase,
		Numbers:   req.Numbers,
		Symbols:   req.Symbols,
	}
	return toStrengthResponse(crypto.Estimate(req.Password, opts))
}

// OptionsFromRequest applies defaults to a generation request:
// 16 characters and every category enabled unless explicitly disabled.
func OptionsFromRequest(req model.GenerateRequest) crypto.Options {
	opts := crypto.Options{
		Length:              req.Length,
		Uppercase:           boolOrDefault(req.Uppercase, true),
		Lowercase:           boolOrDefault(req.Lowercase, true),
		Numbers:             boolOrDefault(req.Numbers, true),
		Symbols:             boolOrDefault(req.Symbols, true),
		RequireEachCategory: req.RequireEach,
	}

	if opts.Length == 0 {
		opts.Length = crypto.DefaultLength
	}

	return opts
}

// record stores a generation event. Failures are logged and never surface to the caller.
func (s *GeneratorService) record(ctx context.Context, event *model.GenerationEvent) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, event); err != nil {
		slog.Warn("recording generation event failed", "mode", event.Mode, "error", err)
	}
}

func toStrengthResponse(s crypto.Strength) model.StrengthResponse {
	return model.StrengthResponse{Score: s.Score, Label: s.Label}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
