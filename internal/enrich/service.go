package enrich

import (
	"context"
	"time"

	"log/slog"

	"github.com/nirmitsaini1024/Productathon-26/internal/dossier"
	"github.com/nirmitsaini1024/Productathon-26/internal/llm"
	"github.com/nirmitsaini1024/Productathon-26/internal/tender"
)

// Clock supplies the dossier timestamp; tests swap it out.
type Clock func() time.Time

// Service runs the enrichment pipeline: validate input, render the
// instruction, call the completion engine, validate its output. Every
// failure propagates to the caller untouched; nothing is defaulted in.
type Service struct {
	client llm.Client
	format string
	logger *slog.Logger
	now    Clock
}

type ServiceDeps struct {
	Client llm.Client
	Logger *slog.Logger
	Now    Clock
}

func NewService(deps ServiceDeps) *Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		client: deps.Client,
		format: dossier.FormatInstructions(),
		logger: deps.Logger,
		now:    now,
	}
}

// Enrich produces a validated lead dossier for one tender. Exactly one
// completion call is made per invocation, and none when the input is
// already invalid.
func (s *Service) Enrich(ctx context.Context, in *tender.TenderInput) (*dossier.LeadDossier, error) {
	if err := tender.Validate(in); err != nil {
		return nil, err
	}

	instruction, err := RenderInstruction(in, s.format, s.now())
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Complete(ctx, instruction)
	if err != nil {
		return nil, err
	}

	d, err := dossier.ParseResponse(raw)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("model output rejected",
				slog.String("tender_id", in.TenderID),
				slog.String("error", err.Error()))
		}
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("tender enriched",
			slog.String("tender_id", in.TenderID),
			slog.Int("lead_score", *d.LeadScore),
			slog.String("urgency", d.Urgency))
	}
	return d, nil
}
