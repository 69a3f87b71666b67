package tmdb

import (
	"context"

	"github.com/filmgraph/tmdb/internal/fetchqueue"
)

// executor abstracts the internal async job runner used by hydration.
type executor interface {
	Submit(ctx context.Context, key string, j fetchqueue.Job) error
	Barrier(ctx context.Context, key string) error
	Stop()
}

// inlineExecutor runs each job synchronously on the submitting goroutine.
// Installed by WithoutExecutor for short-lived callers that prefer serial
// hydration over background workers.
type inlineExecutor struct{}

func (inlineExecutor) Submit(ctx context.Context, _ string, j fetchqueue.Job) error {
	return j.Run(ctx)
}

func (inlineExecutor) Barrier(context.Context, string) error { return nil }

func (inlineExecutor) Stop() {}
