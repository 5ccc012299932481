package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `local mugen = cons("∞", mugen);
if n == 0 then 1 else n * fact(n-1)
{ name: "Alice", age: 20.5, friends: ["Bob","Charlie"] }
a != b && c || !d
// a comment
x.y[0]`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{LOCAL, "local"},
		{IDENT, "mugen"},
		{ASSIGN, "="},
		{IDENT, "cons"},
		{LPAREN, "("},
		{STRING, "∞"},
		{COMMA, ","},
		{IDENT, "mugen"},
		{RPAREN, ")"},
		{SEMICOLON, ";"},

		{IF, "if"},
		{IDENT, "n"},
		{EQ, "=="},
		{NUMBER, "0"},
		{THEN, "then"},
		{NUMBER, "1"},
		{ELSE, "else"},
		{IDENT, "n"},
		{STAR, "*"},
		{IDENT, "fact"},
		{LPAREN, "("},
		{IDENT, "n"},
		{MINUS, "-"},
		{NUMBER, "1"},
		{RPAREN, ")"},

		{LBRACE, "{"},
		{IDENT, "name"},
		{COLON, ":"},
		{STRING, "Alice"},
		{COMMA, ","},
		{IDENT, "age"},
		{COLON, ":"},
		{NUMBER, "20.5"},
		{COMMA, ","},
		{IDENT, "friends"},
		{COLON, ":"},
		{LBRACKET, "["},
		{STRING, "Bob"},
		{COMMA, ","},
		{STRING, "Charlie"},
		{RBRACKET, "]"},
		{RBRACE, "}"},

		{IDENT, "a"},
		{NEQ, "!="},
		{IDENT, "b"},
		{AND, "&&"},
		{IDENT, "c"},
		{OR, "||"},
		{BANG, "!"},
		{IDENT, "d"},

		{IDENT, "x"},
		{DOT, "."},
		{IDENT, "y"},
		{LBRACKET, "["},
		{NUMBER, "0"},
		{RBRACKET, "]"},
		{EOF, ""},
	}

	l := New([]byte(input), "test.jack")
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - token type wrong. expected=%s, got=%s (literal %q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	l := New([]byte(`"a\nb\t\"c\""`), "test.jack")
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	want := "a\nb\t\"c\""
	if tok.Literal != want {
		t.Fatalf("expected %q, got %q", want, tok.Literal)
	}
}

func TestIllegalUnterminatedString(t *testing.T) {
	l := New([]byte(`"unterminated`), "test.jack")
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL for unterminated string, got %s", tok.Type)
	}
}

func TestBOMAndNFCNormalization(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`true`)...)
	l := New(withBOM, "test.jack")
	tok := l.NextToken()
	if tok.Type != TRUE {
		t.Fatalf("expected BOM to be stripped and lex to TRUE, got %s", tok.Type)
	}

	decomposed := New([]byte("\"é\""), "test.jack")
	tok = decomposed.NextToken()
	if tok.Type != STRING || tok.Literal != "é" {
		t.Fatalf("expected decomposed input to be NFC-composed to %q, got %s %q", "é", tok.Type, tok.Literal)
	}
}
