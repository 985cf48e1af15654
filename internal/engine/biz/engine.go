// Package biz provides the engine business logic.
package biz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/kart-io/ai-engine/internal/engine/store"
	v1 "github.com/kart-io/ai-engine/pkg/api/engine/v1"
	engineopts "github.com/kart-io/ai-engine/pkg/options/engine"
)

const vowels = "aeiouAEIOU"

// EngineService handles engine business logic.
type EngineService struct {
	store store.StateStore
	opts  *engineopts.Options

	// luckyNumber is swappable in tests.
	luckyNumber func() int
	// now is swappable in tests.
	now func() time.Time
}

// NewEngineService creates a new EngineService.
func NewEngineService(store store.StateStore, opts *engineopts.Options) *EngineService {
	if opts == nil {
		opts = engineopts.NewOptions()
	}
	return &EngineService{
		store:       store,
		opts:        opts,
		luckyNumber: func() int { return rand.IntN(100) + 1 },
		now:         time.Now,
	}
}

// Status increments the request counter and returns the current status
// with a fresh lucky number.
func (s *EngineService) Status(ctx context.Context) *v1.StatusResponse {
	count := s.store.Increment(ctx)

	return &v1.StatusResponse{
		Type:      v1.TypeStatus,
		Message:   fmt.Sprintf("Here is your lucky number: %d", s.luckyNumber()),
		Count:     count,
		Timestamp: s.timestamp(),
	}
}

// ProcessInput increments the request counter and echoes the input back.
// The vowel-stripped output field is included when enabled.
func (s *EngineService) ProcessInput(ctx context.Context, input string) *v1.InputResponse {
	count := s.store.Increment(ctx)

	resp := &v1.InputResponse{
		Type:      v1.TypeUserInput,
		Input:     input,
		Message:   "You said: " + input,
		Count:     count,
		Timestamp: s.timestamp(),
	}
	if s.opts.StripVowels {
		output := StripVowels(input)
		resp.Output = &output
	}
	return resp
}

// ResetCounter resets the request counter to zero.
func (s *EngineService) ResetCounter(ctx context.Context) {
	s.store.Reset(ctx)
}

// Count returns the current request counter without incrementing it.
func (s *EngineService) Count(ctx context.Context) int64 {
	return s.store.Count(ctx)
}

func (s *EngineService) timestamp() float64 {
	return float64(s.now().UnixNano()) / float64(time.Second)
}

// StripVowels removes all ASCII vowels, upper and lower case, from s.
func StripVowels(s string) string {
	if !strings.ContainsAny(s, vowels) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(vowels, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
