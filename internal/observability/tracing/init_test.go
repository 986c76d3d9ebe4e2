package tracing

import (
	"context"
	"testing"
)

func TestInitTracer(t *testing.T) {
	shutdown, err := InitTracer("docbrief-test")
	if err != nil {
		t.Fatalf("InitTracer err=%v", err)
	}
	if shutdown == nil {
		t.Fatal("InitTracer returned nil shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown err=%v", err)
	}
}
