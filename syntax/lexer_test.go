package syntax

import (
	"testing"
)

func kindsOf(t *testing.T, tokens []Token) []TokenKind {
	t.Helper()
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestLexerBasicTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenKind
	}{
		{
			name:  "local assignment",
			input: "local x = 1",
			want:  []TokenKind{TkLocal, TkIdent, TkEq, TkNumber, TkEOF},
		},
		{
			name:  "string literal",
			input: `local s = "hi"`,
			want:  []TokenKind{TkLocal, TkIdent, TkEq, TkString, TkEOF},
		},
		{
			name:  "dot and double-colon",
			input: "a.b::T",
			want:  []TokenKind{TkIdent, TkDot, TkIdent, TkDblColon, TkIdent, TkEOF},
		},
		{
			name:  "concat and concat-assign",
			input: "a .. b ..= c",
			want:  []TokenKind{TkIdent, TkDotDot, TkIdent, TkDotDotEq, TkIdent, TkEOF},
		},
		{
			name:  "ellipsis is not concat-assign",
			input: "...",
			want:  []TokenKind{TkEllipsis, TkEOF},
		},
		{
			name:  "floor div and floor-div-assign",
			input: "a // b //= c",
			want:  []TokenKind{TkIdent, TkSlash2, TkIdent, TkSlash2Eq, TkIdent, TkEOF},
		},
		{
			name:  "compound operators",
			input: "a += b -= c *= d /= e %= f ^= g",
			want: []TokenKind{
				TkIdent, TkPlusEq, TkIdent, TkMinusEq, TkIdent, TkStarEq, TkIdent,
				TkSlashEq, TkIdent, TkPercentEq, TkIdent, TkCaretEq, TkIdent, TkEOF,
			},
		},
		{
			name:  "arrow in function type",
			input: "(number) -> string",
			want:  []TokenKind{TkLParen, TkIdent, TkRParen, TkArrow, TkIdent, TkEOF},
		},
		{
			name:  "comparison operators",
			input: "a ~= b == c <= d >= e < f > g",
			want: []TokenKind{
				TkIdent, TkNotEq, TkIdent, TkEqEq, TkIdent, TkLtEq, TkIdent,
				TkGtEq, TkIdent, TkLt, TkIdent, TkGt, TkIdent, TkEOF,
			},
		},
		{
			name:  "line comment trivia does not produce a token",
			input: "local x -- comment\n",
			want:  []TokenKind{TkLocal, TkIdent, TkEOF},
		},
		{
			name:  "attribute sigil",
			input: "@native",
			want:  []TokenKind{TkAt, TkIdent, TkEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Lex([]byte(tt.input))
			if err != nil {
				t.Fatalf("Lex(%q) returned error: %v", tt.input, err)
			}
			got := kindsOf(t, tokens)
			if len(got) != len(tt.want) {
				t.Fatalf("Lex(%q) kinds = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Lex(%q) kind[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexerTriviaTotality(t *testing.T) {
	// P2: the union of every token's trivia span and its own span must
	// exactly partition [0, len(s)) with no gap and no overlap.
	inputs := []string{
		"local x = 1",
		"  local x = 1  ",
		"-- comment\nlocal x = 1 -- trailing\n",
		"local s = `hi {name}!`",
		"for i = 1, 10, 2 do end",
	}
	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			tokens, err := Lex([]byte(src))
			if err != nil {
				t.Fatalf("Lex(%q) returned error: %v", src, err)
			}
			cursor := 0
			for _, tok := range tokens {
				for _, tr := range tok.Trivia {
					if tr.Span.Start != cursor {
						t.Fatalf("trivia gap/overlap at %d, trivia starts at %d", cursor, tr.Span.Start)
					}
					cursor = tr.Span.End
				}
				if tok.Kind == TkEOF {
					continue
				}
				if tok.Span.Start != cursor {
					t.Fatalf("token gap/overlap at %d, token %v starts at %d", cursor, tok.Kind, tok.Span.Start)
				}
				cursor = tok.Span.End
			}
			if cursor != len(src) {
				t.Fatalf("trivia+tokens cover [0,%d), want [0,%d)", cursor, len(src))
			}
		})
	}
}

func TestLexerUnterminatedStringErrors(t *testing.T) {
	_, err := Lex([]byte(`local s = "unterminated`))
	if err == nil {
		t.Fatalf("expected a LexError for an unterminated string")
	}
}

func TestLexerInterpStringSegments(t *testing.T) {
	tokens, err := Lex([]byte("`a{1}b{2}c`"))
	if err != nil {
		t.Fatalf("Lex returned error: %v", err)
	}
	want := []TokenKind{
		TkInterpStringBegin, TkNumber, TkInterpStringMid, TkNumber, TkInterpStringEnd, TkEOF,
	}
	got := kindsOf(t, tokens)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("kind[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
