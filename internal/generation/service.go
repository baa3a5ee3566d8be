package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/studycoach/backend/internal/config"
)

// Service turns one generation request into study content by decomposing it
// into sub-tasks, driving each through the prompt builder, the completion
// provider and the extractor, and folding the outcomes into one aggregate.
type Service interface {
	Generate(ctx context.Context, req Request) (*Aggregate, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// subTaskResult is the terminal state of one sub-task.
type subTaskResult struct {
	kind    Kind
	records []Record
	summary string
	err     error
}

// Generate validates the request, runs its sub-tasks concurrently and
// aggregates the results. A single-kind request fails when its one sub-task
// fails; an "all" request succeeds as long as at least one sub-task produced
// usable content.
func (s *service) Generate(ctx context.Context, req Request) (*Aggregate, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidRequest)
	}
	kind := Kind(strings.ToLower(string(req.Kind)))
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidRequest, req.Kind)
	}

	kinds := subKinds(kind)
	results := make([]subTaskResult, len(kinds))

	// Independent model calls dominate total latency, so sub-tasks run
	// concurrently and are awaited jointly. Each goroutine writes only its
	// own slot; the aggregate is assembled afterwards by this goroutine.
	var wg sync.WaitGroup
	for i, k := range kinds {
		wg.Add(1)
		go func(i int, k Kind) {
			defer wg.Done()
			results[i] = s.runSubTask(ctx, k, text)
		}(i, k)
	}
	wg.Wait()

	return aggregate(ctx, results)
}

// subKinds decomposes the requested kind. Only "all" fans out; summary and
// flashcard requests are single-kind by construction.
func subKinds(kind Kind) []Kind {
	if kind == KindAll {
		return quizKinds
	}
	return []Kind{kind}
}

func (s *service) runSubTask(ctx context.Context, kind Kind, text string) subTaskResult {
	log := config.WithContext(ctx).WithField("kind", string(kind))

	prompt := BuildPrompt(kind, text)
	log.WithFields(logrus.Fields{
		"text_chars":  len(text),
		"count_range": prompt.CountRange,
	}).Info("Starting generation sub-task")

	raw, err := s.provider.Complete(ctx, prompt.User, prompt.System)
	if err != nil {
		log.WithError(err).Error("Generation sub-task failed")
		return subTaskResult{kind: kind, err: err}
	}
	log.WithField("response_chars", len(raw)).Info("Received model response")

	if kind == KindSummary {
		return subTaskResult{kind: kind, summary: raw}
	}

	records := Extract(raw)
	log.WithField("records", len(records)).Info("Extracted records from model response")
	if len(records) == 0 {
		// "The model technically responded" is not success; usable content is.
		return subTaskResult{kind: kind, err: fmt.Errorf("%w: no %s records extracted", ErrEmptyGeneration, kind)}
	}

	validateRecords(log, kind, records)
	return subTaskResult{kind: kind, records: records}
}

// validateRecords warn-logs records missing expected fields without dropping
// them.
func validateRecords(log *logrus.Entry, kind Kind, records []Record) {
	fields, ok := requiredFields[kind]
	if !ok {
		return
	}
	for i, rec := range records {
		for _, f := range fields {
			if _, present := rec[f]; !present {
				log.Warnf("Record %d is missing expected field %q", i, f)
			}
		}
	}
}

func aggregate(ctx context.Context, results []subTaskResult) (*Aggregate, error) {
	log := config.WithContext(ctx)

	agg := &Aggregate{Records: make(map[Kind][]Record)}
	var firstErr error
	succeeded := 0

	for _, res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		if res.kind == KindSummary {
			agg.Summary = res.summary
		} else {
			agg.Records[res.kind] = res.records
		}
		succeeded++
	}

	if succeeded == 0 {
		return nil, terminalError(firstErr)
	}
	if firstErr != nil {
		log.WithError(firstErr).Warn("Partial generation: some sub-tasks failed")
	}
	return agg, nil
}

// terminalError maps the representative sub-task failure onto the
// caller-visible error taxonomy.
func terminalError(err error) error {
	if err == nil {
		return ErrEmptyGeneration
	}

	var cerr *CompletionError
	if errors.As(err, &cerr) {
		switch cerr.Class {
		case FailureTimeout, FailureUnreachable:
			return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		case FailureUpstream:
			return fmt.Errorf("%w: %v", ErrUpstreamError, err)
		case FailureEmpty:
			return fmt.Errorf("%w: %v", ErrEmptyGeneration, err)
		}
	}
	return err
}
