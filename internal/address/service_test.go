package address

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"costela-bot/pkg/viacep"
)

type stubResolver struct {
	calls []string
	addr  *viacep.Address
	err   error
}

func (s *stubResolver) Lookup(_ context.Context, cep string) (*viacep.Address, error) {
	s.calls = append(s.calls, cep)
	return s.addr, s.err
}

type countingRecorder map[string]int

func (c countingRecorder) LookupOutcome(outcome string) { c[outcome]++ }

func TestLookupInvalidFormatMakesNoCall(t *testing.T) {
	for _, raw := range []string{"", "0131093", "01310-93", "013109301", "abcdefgh"} {
		resolver := &stubResolver{}
		rec := countingRecorder{}
		svc := NewService(resolver, nil, rec)

		res, err := svc.Lookup(context.Background(), raw)

		assert.ErrorIs(t, err, ErrInvalidFormat, raw)
		assert.Empty(t, res.PostalCode, raw)
		assert.Empty(t, resolver.calls, raw)
		assert.Equal(t, 1, rec[string(OutcomeInvalidFormat)], raw)
	}
}

func TestLookupResolved(t *testing.T) {
	resolver := &stubResolver{addr: &viacep.Address{
		Street:       "Avenida Paulista",
		Neighborhood: "Bela Vista",
		City:         "São Paulo",
		State:        "SP",
	}}
	svc := NewService(resolver, nil, nil)

	res, err := svc.Lookup(context.Background(), "01310-930")
	require.NoError(t, err)

	assert.Equal(t, []string{"01310930"}, resolver.calls)
	assert.Equal(t, OutcomeResolved, res.Outcome)

	fill := res.Fill()
	assert.True(t, fill.Resolved)
	assert.Equal(t, "Avenida Paulista", fill.Street)
	assert.Equal(t, "SP", fill.State)
}

func TestLookupNotFoundRevealsFields(t *testing.T) {
	svc := NewService(&stubResolver{err: viacep.ErrNotFound}, nil, nil)

	res, err := svc.Lookup(context.Background(), "99999999")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, OutcomeNotFound, res.Outcome)
	assert.False(t, res.Fill().Resolved)
}

func TestLookupTransportFailureFailsOpen(t *testing.T) {
	resolver := &stubResolver{err: errors.New("dial tcp: connection refused")}
	svc := NewService(resolver, nil, nil)

	res, err := svc.Lookup(context.Background(), "01310930")

	assert.ErrorIs(t, err, ErrLookupFailed)
	assert.Equal(t, OutcomeFailed, res.Outcome)
	assert.Len(t, resolver.calls, 1, "no retries")
}
