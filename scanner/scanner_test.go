package scanner

import (
	"reflect"
	"testing"
)

func TestCountOutsideLiterals(t *testing.T) {
	tests := []struct {
		name string
		src  string
		ch   byte
		want int
	}{
		{"bare semicolons", "int x = 1; int y = 2;", ';', 2},
		{"semicolon in string", `printf("a;b"); int x;`, ';', 2},
		{"braces in string", `char *s = "{;}";`, '{', 0},
		{"braces outside string", "int main() { return 0; }", '{', 1},
		{"close brace", "int main() { return 0; }", '}', 1},
		{"escaped quote keeps literal open", `s = "a\";b"; x;`, ';', 2},
		{"char literal", "char c = ';'; int x;", ';', 2},
		{"comment hides brace", "int x; // {\n int y;", '{', 0},
		{"comment ends at newline", "// ;\n;", ';', 1},
		{"empty source", "", ';', 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountOutsideLiterals(tt.src, tt.ch); got != tt.want {
				t.Errorf("CountOutsideLiterals(%q, %q) = %d, want %d", tt.src, tt.ch, got, tt.want)
			}
		})
	}
}

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			"one-line main",
			"int main() { int x = 5; return 0; }",
			[]string{"int main() {", "int x = 5;", "return 0;", "}"},
		},
		{
			"already multi-line",
			"int x = 1;\nint y = 2;\n",
			[]string{"int x = 1;", "int y = 2;"},
		},
		{
			"semicolon inside string not split",
			`std::cout << "a;b" << std::endl;`,
			[]string{`std::cout << "a;b" << std::endl;`},
		},
		{
			"braces inside string not split",
			`char *s = "{x}";`,
			[]string{`char *s = "{x}";`},
		},
		{
			"blank lines dropped",
			"\n\nint x;\n\n",
			[]string{"int x;"},
		},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitStatements(tt.src)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitStatements(%q) = %#v, want %#v", tt.src, got, tt.want)
			}
		})
	}
}

func TestScannerLineTracking(t *testing.T) {
	s := New("a\nb\nc")
	for _, ok := s.Next(); ok; _, ok = s.Next() {
	}
	if s.Line() != 3 {
		t.Errorf("Line() = %d, want 3", s.Line())
	}
}

func TestScannerLiteralSpansIncludeDelimiters(t *testing.T) {
	s := New(`x"y"z`)
	var states []bool
	for _, ok := s.Next(); ok; _, ok = s.Next() {
		states = append(states, s.InLiteral())
	}
	want := []bool{false, true, true, true, false}
	if !reflect.DeepEqual(states, want) {
		t.Errorf("InLiteral states = %v, want %v", states, want)
	}
}

func TestScannerCommentResetAtNewline(t *testing.T) {
	s := New("// hi\nx")
	var last bool
	for _, ok := s.Next(); ok; _, ok = s.Next() {
		last = s.InComment()
	}
	if last {
		t.Error("InComment() still true after newline")
	}
}
