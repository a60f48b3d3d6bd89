package fanout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure/fanout"
	"github.com/andreyxaxa/Image-Transformer/internal/infrastructure/results"
	"github.com/andreyxaxa/Image-Transformer/internal/repo/persistent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct {
	events   []*entity.Event
	sendErr  error
	closeErr error
	closed   bool
}

func (s *sink) SendEvents(_ context.Context, events ...*entity.Event) error {
	s.events = append(s.events, events...)
	return s.sendErr
}

func (s *sink) Close() error {
	s.closed = true
	return s.closeErr
}

func TestSender_DeliversToAll(t *testing.T) {
	broken := &sink{sendErr: errors.New("broker down"), closeErr: errors.New("close failed")}
	ok := &sink{}
	s := fanout.New(broken, ok)

	e := entity.ResizeCompleted("a.png")

	err := s.SendEvents(context.Background(), e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")

	assert.Equal(t, []*entity.Event{e}, broken.events)
	assert.Equal(t, []*entity.Event{e}, ok.events)

	require.Error(t, s.Close())
	assert.True(t, broken.closed)
	assert.True(t, ok.closed)
}

func TestSender_WithRecorder(t *testing.T) {
	ctx := context.Background()
	store := persistent.NewResultMemoryRepo(time.Minute)
	primary := &sink{}
	s := fanout.New(primary, results.NewRecorder(store))

	e := entity.ConversionCompleted("a.png", []byte("x"))
	e.RequestID = "req"

	require.NoError(t, s.SendEvents(ctx, e))
	require.NoError(t, s.Close())

	got, err := store.Results(ctx, "req")
	require.NoError(t, err)
	assert.Equal(t, []*entity.Event{e}, got)
	assert.Equal(t, []*entity.Event{e}, primary.events)
}
