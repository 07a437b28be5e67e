package address

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"costela-bot/internal/mask"
	"costela-bot/internal/order"
	"costela-bot/pkg/viacep"
)

var (
	ErrInvalidFormat = errors.New("postal code must have 8 digits")
	ErrNotFound      = errors.New("postal code not found")
	ErrLookupFailed  = errors.New("postal code lookup failed")
)

type Outcome string

const (
	OutcomeResolved      Outcome = "resolved"
	OutcomeNotFound      Outcome = "not_found"
	OutcomeFailed        Outcome = "failed"
	OutcomeInvalidFormat Outcome = "invalid_format"
)

// Resolver answers postal code queries; *viacep.Client is the production one.
type Resolver interface {
	Lookup(ctx context.Context, cep string) (*viacep.Address, error)
}

// Recorder counts lookup outcomes.
type Recorder interface {
	LookupOutcome(outcome string)
}

// Result is the outcome of one lookup. Address fields are set only when
// Outcome is OutcomeResolved.
type Result struct {
	Outcome      Outcome
	PostalCode   string
	Street       string
	Neighborhood string
	City         string
	State        string
}

// Fill converts the result into what the checkout form accepts.
func (r Result) Fill() order.AddressFill {
	return order.AddressFill{
		Resolved:     r.Outcome == OutcomeResolved,
		Street:       r.Street,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
	}
}

type Service struct {
	resolver Resolver
	logger   *zap.Logger
	metrics  Recorder
}

func NewService(resolver Resolver, logger *zap.Logger, metrics Recorder) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		resolver: resolver,
		logger:   logger,
		metrics:  metrics,
	}
}

// Clean strips the mask from raw and checks it is a full postal code.
func Clean(raw string) (string, error) {
	cep := mask.Digits(raw)
	if len(cep) != 8 {
		return "", fmt.Errorf("%w: got %d digits", ErrInvalidFormat, len(cep))
	}
	return cep, nil
}

// Lookup resolves raw into an address with a single request and no retry.
// ErrInvalidFormat is returned before any request is made.
func (s *Service) Lookup(ctx context.Context, raw string) (Result, error) {
	cep, err := Clean(raw)
	if err != nil {
		s.record(OutcomeInvalidFormat)
		return Result{Outcome: OutcomeInvalidFormat}, err
	}

	addr, err := s.resolver.Lookup(ctx, cep)
	switch {
	case errors.Is(err, viacep.ErrNotFound):
		s.record(OutcomeNotFound)
		return Result{Outcome: OutcomeNotFound, PostalCode: cep}, ErrNotFound
	case err != nil:
		s.logger.Warn("Postal code lookup failed",
			zap.String("cep", cep),
			zap.Error(err))
		s.record(OutcomeFailed)
		return Result{Outcome: OutcomeFailed, PostalCode: cep}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}

	s.record(OutcomeResolved)
	return Result{
		Outcome:      OutcomeResolved,
		PostalCode:   cep,
		Street:       addr.Street,
		Neighborhood: addr.Neighborhood,
		City:         addr.City,
		State:        addr.State,
	}, nil
}

func (s *Service) record(o Outcome) {
	if s.metrics != nil {
		s.metrics.LookupOutcome(string(o))
	}
}
