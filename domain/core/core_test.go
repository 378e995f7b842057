package core

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewID_UniqueAndParseable(t *testing.T) {
	a := NewID()
	b := NewID()
	if a == b {
		t.Error("consecutive IDs must differ")
	}
	if _, err := uuid.Parse(a.String()); err != nil {
		t.Errorf("ID should be a valid UUID: %v", err)
	}
	if a.IsEmpty() {
		t.Error("fresh ID must not be empty")
	}
}

func TestParseRunID(t *testing.T) {
	if _, err := ParseRunID("  "); err == nil {
		t.Error("blank run ID must be rejected")
	}
	id, err := ParseRunID("run-1")
	if err != nil || id.String() != "run-1" {
		t.Errorf("ParseRunID(run-1) = %q, %v", id, err)
	}
}

func TestParseConstantKey(t *testing.T) {
	if _, err := ParseConstantKey(""); err == nil {
		t.Error("blank constant key must be rejected")
	}
	key, err := ParseConstantKey("alpha")
	if err != nil || key.String() != "alpha" {
		t.Errorf("ParseConstantKey(alpha) = %q, %v", key, err)
	}
}

func TestHash(t *testing.T) {
	h := NewHash([]byte("payload"))
	if len(h.String()) != 64 || h.IsEmpty() {
		t.Errorf("unexpected hash %q", h)
	}
	if !h.Equals(NewHash([]byte("payload"))) {
		t.Error("equal payloads must hash equally")
	}
	if h.Equals(NewHash([]byte("other"))) {
		t.Error("distinct payloads must not collide")
	}
}

func TestErrorClassification(t *testing.T) {
	err := NewInvalidParameterError("alpha", -1)
	if !IsInvalidParameterError(err) {
		t.Error("wrapped invalid-parameter error not recognized")
	}
	if !strings.Contains(err.Error(), "alpha=-1") {
		t.Errorf("error should name the offending constant: %v", err)
	}

	if !IsEmptyInputError(NewEmptyInputError("pareto filter")) {
		t.Error("empty-input error not recognized")
	}
	if !IsEmptyInputError(ErrInsufficientData) {
		t.Error("insufficient-data counts as an empty-input condition")
	}
	if IsEmptyInputError(err) {
		t.Error("invalid-parameter must not classify as empty input")
	}
}
