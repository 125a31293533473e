package syntax

import "testing"

// TestRoundTrip covers spec.md §8's P1 ("for every source s that parses,
// print(parse(s)) == s byte-for-byte") over a representative slice of the
// grammar, including the six well-formed concrete scenarios from §8.
func TestRoundTrip(t *testing.T) {
	tests := []string{
		"return 1",
		"local x: {a: number, [string]: boolean} = t",
		"local s = `hi {name}!`",
		"for i = 1, 10, 2 do end",
		"a.b:c(1)(2)",
		"x += y",
		"",
		"  local x = 1  ",
		"-- leading comment\nlocal x = 1\n-- trailing comment\n",
		"local x, y = 1, 2",
		"local function f(a: number, b: string): boolean return true end",
		"function t.a.b:c(...) end",
		"if a then b() elseif c then d() else e() end",
		"while a do b() end",
		"repeat a() until b",
		"for k, v in pairs(t) do end",
		"local t = {1, 2, [3] = 4, name = 5}",
		"type T<A, B = number> = {a: A, b: B}",
		"local f: (number, string) -> boolean = g",
		"local f: (number, ...string) -> () = g",
		"local x: number? = nil",
		"local x: A | B & C = y",
		"local x = a and b or not c",
		"local x = -a ^ 2",
		"local x = (a + b) * c",
		"local x = if a then b else c",
		"local x = if a then b elseif c then d else e",
		"a()",
		"a[1] = 2",
		"local x: typeof(a) = a",
		"export type T = number",
		"@native function f() end",
		"@native local function f() end",
		"continue",
		"break",
		"do end",
		"local x = +1",
		"type T<A, B...> = {}",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			cst, err := Parse([]byte(src))
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", src, err)
			}
			got := Print(cst)
			if got != src {
				t.Fatalf("Print(Parse(%q)) = %q, want %q", src, got, src)
			}
		})
	}
}
