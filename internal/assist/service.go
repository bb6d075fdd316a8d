package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yojana-mitra/backend/internal/ai"
	"github.com/yojana-mitra/backend/internal/metrics"
	"github.com/yojana-mitra/backend/internal/schemes"
)

type service struct {
	ai       ai.AI // nil when no provider credential is configured
	provider string
	log      *logrus.Entry
}

// NewService wires the orchestration. A nil client means every request
// is answered from the local knowledge base or rejected.
func NewService(client ai.AI, provider string, log *logrus.Entry) Service {
	return &service{ai: client, provider: provider, log: log}
}

func (s *service) Ask(ctx context.Context, req AskRequest) (Answer, error) {
	if isCreatorQuery(req.Query) {
		s.log.Debug("creator question answered locally")
		return Answer{Response: CreatorAnswer}, nil
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return Answer{}, ErrEmptyQuery
	}

	if s.ai == nil {
		return s.fallback(query, &UpstreamError{
			Message: fmt.Sprintf("no API key configured for provider %q", s.provider),
		})
	}

	msgs := buildMessages(req.Lang, query, sanitizeHistory(req.History))
	text, err := s.ai.GetReply(ctx, msgs)
	if err != nil {
		s.log.WithError(err).Warn("provider call failed, trying local schemes")
		return s.fallback(query, &UpstreamError{
			Message: "provider request failed",
			Detail:  providerDetail(err),
		})
	}

	return Answer{Response: text}, nil
}

// fallback serves the local scheme knowledge base; when nothing
// matches, the prepared upstream error is returned instead.
func (s *service) fallback(query string, failure *UpstreamError) (Answer, error) {
	if text, ok := schemes.Lookup(query); ok {
		metrics.FallbackServed.Inc()
		s.log.WithField("provider", s.provider).Info("served from local scheme fallback")
		return Answer{Response: text, Fallback: true}, nil
	}
	return Answer{}, failure
}

func providerDetail(err error) string {
	var pe *ai.ProviderError
	if errors.As(err, &pe) {
		return pe.Detail
	}
	return err.Error()
}
