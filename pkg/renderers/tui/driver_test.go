package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestSurveyDriverInfoWritesToOutput(t *testing.T) {
	var out bytes.Buffer
	driver := NewSurveyDriver(&out)

	if err := driver.Info(context.Background(), "Total: $100"); err != nil {
		t.Fatalf("info: %v", err)
	}
	if got := out.String(); got != "Total: $100\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSurveyDriverHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	driver := NewSurveyDriver(&bytes.Buffer{})

	if _, err := driver.Input(ctx, InputConfig{Message: "Name"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected input to stop on a cancelled context, got %v", err)
	}
	if _, err := driver.Confirm(ctx, ConfirmConfig{Message: "Fix these fields now?"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected confirm to stop on a cancelled context, got %v", err)
	}
	if err := driver.Info(ctx, "ignored"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected info to stop on a cancelled context, got %v", err)
	}
}
