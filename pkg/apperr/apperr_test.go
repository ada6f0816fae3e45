package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Codenidhi/-hustlehub-jobportal/pkg/apperr"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperr.Kind
	}{
		{name: "NotFound", err: apperr.New(apperr.KindNotFound, "missing"), want: apperr.KindNotFound},
		{name: "Validation", err: apperr.New(apperr.KindValidation, "bad"), want: apperr.KindValidation},
		{name: "WrappedInChain", err: fmt.Errorf("outer: %w", apperr.New(apperr.KindConflict, "dup")), want: apperr.KindConflict},
		{name: "PlainError", err: errors.New("boom"), want: apperr.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apperr.KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMessageOf(t *testing.T) {
	cause := errors.New("disk full")
	err := apperr.Wrap(apperr.KindInternal, "Error saving notifications", cause)

	if got := apperr.MessageOf(err); got != "Error saving notifications" {
		t.Fatalf("MessageOf = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to survive errors.Is")
	}
	if got := apperr.MessageOf(errors.New("raw")); got != "raw" {
		t.Fatalf("MessageOf plain error = %q", got)
	}
}
