package assist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/yojana-mitra/backend/internal/ai"
)

type stubAI struct {
	reply string
	err   error
	calls int
	got   []ai.Message
}

func (s *stubAI) GetReply(_ context.Context, messages []ai.Message) (string, error) {
	s.calls++
	s.got = messages
	return s.reply, s.err
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestAskCreatorOverrideSkipsProvider(t *testing.T) {
	stub := &stubAI{reply: "should never be used"}
	svc := NewService(stub, "groq", testLogger())

	ans, err := svc.Ask(context.Background(), AskRequest{Query: "  WHO made you? ", Lang: "en"})

	require.NoError(t, err)
	require.Equal(t, CreatorAnswer, ans.Response)
	require.False(t, ans.Fallback)
	require.Zero(t, stub.calls)
}

func TestAskEmptyQuery(t *testing.T) {
	svc := NewService(&stubAI{}, "groq", testLogger())

	for _, q := range []string{"", "   ", "\n\t"} {
		_, err := svc.Ask(context.Background(), AskRequest{Query: q})
		require.ErrorIs(t, err, ErrEmptyQuery, "%q", q)
	}
}

func TestAskWithoutCredentialFallsBack(t *testing.T) {
	svc := NewService(nil, "groq", testLogger())

	ans, err := svc.Ask(context.Background(), AskRequest{Query: "schemes for farmers", Lang: "en"})

	require.NoError(t, err)
	require.True(t, ans.Fallback)
	require.Contains(t, ans.Response, "PM-KISAN")
}

func TestAskWithoutCredentialMissNamesProvider(t *testing.T) {
	svc := NewService(nil, "together", testLogger())

	_, err := svc.Ask(context.Background(), AskRequest{Query: "capital of France", Lang: "en"})

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Contains(t, ue.Message, `"together"`)
	require.Empty(t, ue.Detail)
}

func TestAskProviderSuccess(t *testing.T) {
	stub := &stubAI{reply: "Namaste! Here is what I found."}
	svc := NewService(stub, "groq", testLogger())

	ans, err := svc.Ask(context.Background(), AskRequest{Query: "pension schemes", Lang: "en"})

	require.NoError(t, err)
	require.Equal(t, "Namaste! Here is what I found.", ans.Response)
	require.False(t, ans.Fallback)
	require.Equal(t, 1, stub.calls)
}

func TestAskProviderFailureFallsBack(t *testing.T) {
	stub := &stubAI{err: &ai.ProviderError{Status: 503, Detail: "model overloaded"}}
	svc := NewService(stub, "groq", testLogger())

	ans, err := svc.Ask(context.Background(), AskRequest{Query: "tell me about ayushman", Lang: "en"})

	require.NoError(t, err)
	require.True(t, ans.Fallback)
	require.Contains(t, ans.Response, "Ayushman Bharat")
}

func TestAskProviderFailureMissCarriesDetail(t *testing.T) {
	stub := &stubAI{err: &ai.ProviderError{Status: 503, Detail: "model overloaded"}}
	svc := NewService(stub, "groq", testLogger())

	_, err := svc.Ask(context.Background(), AskRequest{Query: "capital of France", Lang: "en"})

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, "provider request failed", ue.Message)
	require.Equal(t, "model overloaded", ue.Detail)
}

func TestAskProviderFailurePlainErrorDetail(t *testing.T) {
	stub := &stubAI{err: errors.New("context deadline exceeded")}
	svc := NewService(stub, "groq", testLogger())

	_, err := svc.Ask(context.Background(), AskRequest{Query: "capital of France", Lang: "en"})

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, "context deadline exceeded", ue.Detail)
}

func TestAskForwardsSanitizedHistory(t *testing.T) {
	stub := &stubAI{reply: "ok"}
	svc := NewService(stub, "groq", testLogger())

	var history []ChatMessage
	history = append(history, ChatMessage{Role: "operator", Content: "dropped"})
	for i := 0; i < 14; i++ {
		history = append(history, ChatMessage{Role: "user", Content: fmt.Sprintf("turn %d", i)})
	}

	_, err := svc.Ask(context.Background(), AskRequest{
		Query:   "what about housing schemes",
		Lang:    "hi",
		History: history,
	})

	require.NoError(t, err)
	// system prompt + 12 newest turns + current question
	require.Len(t, stub.got, 14)
	require.Equal(t, "system", stub.got[0].Role)
	require.Equal(t, "turn 2", stub.got[1].Content)
	require.Equal(t, "turn 13", stub.got[12].Content)
	require.Equal(t, "what about housing schemes", stub.got[13].Content)
}
