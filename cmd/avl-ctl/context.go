package main

import (
	"context"
)

type fsContextKeyType uint

var fsContextKey fsContextKeyType = 0

func contextWithFS(ctx context.Context, fs FileSystem) context.Context {
	return context.WithValue(ctx, fsContextKey, fs)
}

func fsFromContext(ctx context.Context) FileSystem {
	v := ctx.Value(fsContextKey)
	if v == nil {
		panic("no file system in context")
	}

	return v.(FileSystem)
}
