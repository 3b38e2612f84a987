package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-inputmask/pkg/selector"
)

func TestCompileSelector(t *testing.T) {
	if _, err := compileSelector("", nil, "", false); err == nil {
		t.Fatalf("expected error without a format")
	}
	if _, err := compileSelector("[00]", []string{"[000]"}, "bogus", false); err == nil {
		t.Fatalf("expected error for unknown affinity")
	}
	if _, err := compileSelector("[00", nil, "", false); err == nil {
		t.Fatalf("expected error for malformed format")
	}

	sel, err := compileSelector("[00]", nil, "", false)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, ok := sel.(*selector.Single); !ok {
		t.Fatalf("expected *selector.Single, got %T", sel)
	}

	sel, err = compileSelector("[00]", []string{"[000]"}, "capacity", false)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, ok := sel.(*selector.Poly); !ok {
		t.Fatalf("expected *selector.Poly, got %T", sel)
	}
}

func TestFormat_Caret(t *testing.T) {
	sel, err := compileSelector("[00].[00].[0000]", nil, "", false)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	state, err := format(sel, "0102", 2, true, false)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	got := newRecord("0102", state)
	want := record{Input: "0102", Formatted: "01.02", Value: "0102", Caret: 3, TailPlaceholder: ".0000"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestInputs(t *testing.T) {
	got, err := inputs(nil, strings.NewReader("a\nb\n"))
	if err != nil {
		t.Fatalf("inputs: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("unexpected lines (-want +got):\n%s", diff)
	}

	got, err = inputs([]string{"x"}, strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("inputs: %v", err)
	}
	if diff := cmp.Diff([]string{"x"}, got); diff != "" {
		t.Fatalf("unexpected args (-want +got):\n%s", diff)
	}
}

func TestWriteRecord(t *testing.T) {
	var b strings.Builder
	if err := writeRecord(&b, false, record{Formatted: "+375 (29) 123-45-67", Country: "BY"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := writeRecord(&b, true, record{Input: "1", Formatted: "1", Value: "1", Complete: true, Caret: 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "+375 (29) 123-45-67\tBY\n" +
		`{"input":"1","formatted":"1","value":"1","complete":true,"caret":1}` + "\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}
