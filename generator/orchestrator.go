package generator

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 60 * time.Second

// Result is the tagged outcome of one generation request, handed back to
// the UI-owning context over the Results channel.
type Result struct {
	Text string
	Err  error
}

// Orchestrator mediates between UI intent and the LLM client. It validates
// input, dispatches at most one background generation call at a time, and
// delivers every result on the Results channel.
type Orchestrator struct {
	llm     LLMClient
	log     *zap.Logger
	results chan Result
	busy    atomic.Bool
}

func NewOrchestrator(llm LLMClient, log *zap.Logger) (*Orchestrator, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		llm: llm,
		log: log,
		// Single-flight means at most one undelivered result.
		results: make(chan Result, 1),
	}, nil
}

// Results is the hand-off channel from the background call back to the
// UI-owning context, which must be its sole consumer.
func (o *Orchestrator) Results() <-chan Result {
	return o.results
}

// Request validates the input and dispatches exactly one background
// generation call. A nil return means the call was dispatched and its
// outcome will arrive on Results. ErrBusy means a request is still in
// flight and this invocation had no effect. A *ValidationError is returned
// synchronously and starts no background work.
//
// There is no cancellation: a dispatched request runs to completion and its
// result is always delivered.
func (o *Orchestrator) Request(email string, tone Tone) error {
	if !tone.Valid() {
		return &ValidationError{Reason: "unknown tone: " + string(tone)}
	}
	if !o.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}

	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		o.busy.Store(false)
		return &ValidationError{Reason: "Please enter email content"}
	}

	prompt := BuildReplyPrompt(trimmed, tone)
	o.log.Info("dispatching generation request",
		zap.String("tone", string(tone)),
		zap.Int("email_len", len(trimmed)))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		text, err := o.llm.Complete(ctx, prompt)
		if err != nil {
			o.log.Warn("generation failed", zap.Error(err))
		} else {
			o.log.Info("generation succeeded", zap.Int("reply_len", len(text)))
		}

		// Release the slot before hand-off so the UI can accept the next
		// request as soon as it has rendered this result.
		o.busy.Store(false)
		o.results <- Result{Text: text, Err: err}
	}()
	return nil
}
