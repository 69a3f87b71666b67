package job

import (
	"context"
	"errors"
	"testing"
)

func TestJobFunc_RunsClosure(t *testing.T) {
	t.Parallel()
	ran := false
	j := New(func(context.Context) error {
		ran = true
		return nil
	})
	if err := j.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !ran {
		t.Fatal("closure did not run")
	}
}

func TestJobFunc_NilFunc(t *testing.T) {
	t.Parallel()
	var j jobFunc
	if err := j.Run(context.Background()); !errors.Is(err, ErrNilJobFunc) {
		t.Fatalf("expected ErrNilJobFunc, got %v", err)
	}
}

func TestShardLabel_Stable(t *testing.T) {
	t.Parallel()
	if ShardLabel("movie-42") != ShardLabel("movie-42") {
		t.Fatal("shard label not stable for equal keys")
	}
}
