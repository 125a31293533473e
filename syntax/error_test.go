package syntax

import "testing"

func TestLexErrorImplementsError(t *testing.T) {
	var err error = &LexError{Span: NewSpan(2, 3), Message: "bad escape sequence"}
	if err.Error() != "bad escape sequence" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "bad escape sequence")
	}
}

func TestParseErrorImplementsError(t *testing.T) {
	var err error = &ParseError{Span: NewSpan(0, 1), Message: "unexpected `end`"}
	if err.Error() != "unexpected `end`" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "unexpected `end`")
	}
}

func TestErrExpectedMessage(t *testing.T) {
	err := errExpected(NewSpan(0, 1), "an expression", TkEnd)
	if err.Span != NewSpan(0, 1) {
		t.Fatalf("Span = %v, want %v", err.Span, NewSpan(0, 1))
	}
	want := "expected an expression, found " + TkEnd.Name()
	if err.Message != want {
		t.Fatalf("Message = %q, want %q", err.Message, want)
	}
}

func TestErrUnexpectedMessage(t *testing.T) {
	err := errUnexpected(NewSpan(4, 5), TkEOF)
	want := "unexpected " + TkEOF.Name()
	if err.Message != want {
		t.Fatalf("Message = %q, want %q", err.Message, want)
	}
}
