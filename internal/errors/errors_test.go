package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Wrap(KindStorage, "read events", fs.ErrPermission)
	if got := err.Error(); got != "read events: permission denied" {
		t.Fatalf("expected wrapped message, got %q", got)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatal("expected cause to be reachable with errors.Is")
	}
}

func TestIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("add event: %w", New(KindValidation, "name is required"))
	if !errors.Is(err, ErrValidation) {
		t.Fatal("expected validation sentinel to match")
	}
	if errors.Is(err, ErrStorage) {
		t.Fatal("expected storage sentinel not to match")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain", err: errors.New("boom"), want: ""},
		{name: "direct", err: New(KindFormat, "bad json"), want: KindFormat},
		{name: "wrapped", err: fmt.Errorf("load: %w", Newf(KindStorage, "open %s", "x")), want: KindStorage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Fatalf("expected kind %q, got %q", tt.want, got)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	if code := ExitCode(nil); code != 0 {
		t.Fatalf("expected 0 for nil, got %d", code)
	}
	if code := ExitCode(New(KindInvalidArgument, "bad flag")); code != 2 {
		t.Fatalf("expected 2 for invalid argument, got %d", code)
	}
	if code := ExitCode(New(KindFormat, "bad file")); code != 1 {
		t.Fatalf("expected 1 for format error, got %d", code)
	}
	if code := ExitCode(errors.New("unclassified")); code != 1 {
		t.Fatalf("expected 1 for unclassified error, got %d", code)
	}
}
