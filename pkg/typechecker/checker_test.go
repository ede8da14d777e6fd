package typechecker

import (
	"reflect"
	"testing"

	"onec/compiler-go/pkg/ast"
	"onec/compiler-go/pkg/diagnostics"
	"onec/compiler-go/pkg/parser"
)

func checkSource(t *testing.T, src string) []diagnostics.Diagnostic {
	t.Helper()
	program, parseDiags := parser.ParseProgram(src)
	if len(parseDiags) > 0 {
		t.Fatalf("parse %q: %v", src, parseDiags)
	}
	diags, err := New().CheckProgram(program)
	if err != nil {
		t.Fatalf("CheckProgram returned error: %v", err)
	}
	return diags
}

type checkCase struct {
	name string
	src  string
	want []diagnostics.Code
}

func runCheckCases(t *testing.T, cases []checkCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := diagnostics.Codes(checkSource(t, tc.src))
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("codes = %v, want %v", got, tc.want)
			}
		})
	}
}

var (
	mismatch  = []diagnostics.Code{diagnostics.CodeTypeMismatch}
	undefined = []diagnostics.Code{diagnostics.CodeUndefinedName}
	operands  = []diagnostics.Code{diagnostics.CodeInvalidOperands}
	overflow  = []diagnostics.Code{diagnostics.CodeLiteralRange}
)

func TestEmptyProgramChecks(t *testing.T) {
	runCheckCases(t, []checkCase{{name: "empty", src: ""}})
}

func TestCheckProgramRejectsNil(t *testing.T) {
	if _, err := New().CheckProgram(nil); err == nil {
		t.Fatalf("expected error for nil program")
	}
}

func TestIntegerCompatibility(t *testing.T) {
	var cases []checkCase
	for _, name := range []string{"u8", "u16", "u32", "i8", "i16", "i32"} {
		cases = append(cases, checkCase{
			name: "same " + name,
			src:  "fn main() { let a: " + name + " = 12; let b: " + name + " = a; }",
		})
	}
	for _, pair := range [][2]string{
		{"u8", "u16"}, {"u16", "u32"}, {"i8", "i16"}, {"u8", "i8"}, {"u16", "i16"}, {"u32", "i32"}, {"i32", "u32"},
	} {
		cases = append(cases, checkCase{
			name: pair[0] + " to " + pair[1],
			src:  "fn main() { let a: " + pair[0] + "; let b: " + pair[1] + " = a; }",
			want: mismatch,
		})
	}
	cases = append(cases, checkCase{
		name: "unknown integer type",
		src:  "fn main() { let a: i16; let b: iu = a; }",
		want: []diagnostics.Code{diagnostics.CodeUnknownType},
	})
	runCheckCases(t, cases)
}

func TestIntegerConstants(t *testing.T) {
	runCheckCases(t, []checkCase{
		{name: "i32 default", src: "fn main() { let n = 30; let a: i32 = n; let b = a; }"},
		{name: "folded default", src: "fn main() { let n = 30 + 10; let a: i32 = n; }"},
		{name: "default is not u32", src: "fn main() { let n = 30; let a: u32 = n; }", want: mismatch},
		{name: "default is not u8", src: "fn main() { let n = 30; let a: u8 = n; }", want: mismatch},
		{name: "default is not i8", src: "fn main() { let n = 30; let a: i8 = n; }", want: mismatch},
		{name: "u8 bounds", src: "fn main() { let a: u8 = 255; let b: u8 = 0; }"},
		{name: "u8 overflow", src: "fn main() { let a: u8 = 256; }", want: overflow},
		{name: "negative unsigned", src: "fn main() { let a: u8 = -1; }", want: overflow},
		{name: "i8 lower bound", src: "fn main() { let a: i8 = -128; }"},
		{name: "i8 underflow", src: "fn main() { let a: i8 = -129; }", want: overflow},
		{name: "folded overflow", src: "fn main() { let a: u8 = 200 + 56; }", want: overflow},
		{name: "operand overflow", src: "fn main() { let a: u8 = 1; let b = a + 300; }", want: overflow},
		{name: "i32 default overflow", src: "fn main() { let a = 3000000000; }", want: overflow},
		{name: "fractional literal", src: "fn main() { let a = 1.5; }", want: overflow},
		{name: "constant to string", src: "fn main() { let a: string = 1; }", want: mismatch},
		{name: "division by zero constant", src: "fn main() { let a: i32 = 1 / 0; }"},
		{name: "argument constant", src: "fn f(x: u8) {} fn main() { f(7); }"},
		{name: "argument overflow", src: "fn f(x: u8) {} fn main() { f(700); }", want: overflow},
	})
}

func TestBinaryOperators(t *testing.T) {
	var cases []checkCase
	for _, op := range []string{"+", "-", "*", "/", "%", "|", "&", "^"} {
		cases = append(cases, checkCase{
			name: "i32 " + op,
			src:  "fn main() { let a: i32 = 1 " + op + " 2; let b: i32 = a " + op + " 0; let c: i32 = a " + op + " b; }",
		})
	}
	cases = append(cases,
		checkCase{name: "relational", src: "fn main() { let n: i32 = 3; let m: i32 = 4; let a: boolean = 1 > 2; let b: boolean = n < 0; let c: boolean = n >= m; }"},
		checkCase{name: "string equality", src: `fn main() { let n: string = "foo"; let m: string = "bar"; let a: boolean = "foo" == "bar"; let b: boolean = n == "foo"; let c: boolean = n != m; }`},
		checkCase{name: "string ordering", src: `fn main() { let a: boolean = "a" < "b"; }`},
		checkCase{name: "boolean equality", src: "fn main() { let a: boolean = true == false; }"},
		checkCase{name: "logical", src: "fn main() { let a: boolean = true || false; let b: boolean = a && true; let c: boolean = !a; }"},
		checkCase{name: "string concatenation", src: `fn main() { let a = "a" + "b"; let b: string = a; }`},
		checkCase{name: "string minus", src: `fn main() { let a = "a" - "b"; }`, want: operands},
		checkCase{name: "mixed widths", src: "fn main() { let a: u8 = 1; let b: u16 = 2; let c = a + b; }", want: operands},
		checkCase{name: "int and string", src: `fn main() { let a = 1 + "b"; }`, want: operands},
		checkCase{name: "logical on ints", src: "fn main() { let a = 1 && 2; }", want: operands},
		checkCase{name: "boolean ordering", src: "fn main() { let a = true < false; }", want: operands},
		checkCase{name: "not on int", src: "fn main() { let a = !1; }", want: operands},
		checkCase{name: "negate string", src: `fn main() { let a = -"x"; }`, want: operands},
		checkCase{name: "negate keeps width", src: "fn main() { let a: i16 = 3; let b: i16 = -a; }"},
		checkCase{name: "comparison result", src: "fn main() { let a: i32 = 1 < 2; }", want: mismatch},
	)
	runCheckCases(t, cases)
}

func TestAssignment(t *testing.T) {
	runCheckCases(t, []checkCase{
		{name: "same type", src: "fn main() { let a = 0; let b = 1; a = b; b = a; }"},
		{name: "string from int", src: `fn main() { let a: string = ""; let b = 1; a = b; }`, want: mismatch},
		{name: "undefined target", src: "fn main() { a = 1; }", want: undefined},
		{name: "chained", src: "fn main() { let a = 0; let b = 1; a = b = 2; }"},
		{name: "first assignment fixes type", src: "fn main() { let a; a = 1; let b: i32 = a; }"},
		{name: "fixed type is enforced", src: `fn main() { let a; a = "x"; a = 1; }`, want: mismatch},
		{name: "read before assignment", src: "fn main() { let a; let b = a; }", want: mismatch},
	})
}

func TestVariableDeclarations(t *testing.T) {
	runCheckCases(t, []checkCase{
		{name: "declared", src: "fn main() { let b: string; let a: string = b; }"},
		{name: "declared mismatch", src: "fn main() { let b: i32; let a: string = b; }", want: mismatch},
		{name: "implicit", src: `fn main() { let b = ""; let a: string = b; }`},
		{name: "implicit mismatch", src: `fn main() { let b = ""; let a: i32 = b; }`, want: mismatch},
		{name: "tuple", src: "fn main() { let a: (string, string); let b: (string, string) = a; let c = b; }"},
		{name: "tuple mismatch", src: "fn main() { let a: (string, string); let b: (i32, string) = a; let c = b; }", want: mismatch},
		{name: "shadowing", src: `fn main() { let a = 1; let a = "x"; let b: string = a; }`},
		{name: "mutable", src: "fn main() { let mut a: u8 = 1; a = 2; }"},
		{name: "initializer sees previous binding", src: `fn main() { let a = "x"; let a = a + "y"; let b: string = a; }`},
	})
}

func TestTuples(t *testing.T) {
	runCheckCases(t, []checkCase{
		{name: "unit", src: "fn main() { let a: (); let b: () = a; }"},
		{name: "one tuple", src: "fn main() { let a: (string); let b: (string) = a; }"},
		{name: "pair", src: "fn main() { let a: (string, i32); let b: (string, i32) = a; }"},
		{name: "nested", src: "fn main() { let a: (string, (i32, string)); let b: (string, (i32, string)) = a; }"},
		{name: "nested mismatch", src: "fn main() { let a: (string, (string, i32)); let b: (string, (i32, string)) = a; }", want: mismatch},
		{name: "one tuple mismatch", src: "fn main() { let a: (string); let b: (i32) = a; }", want: mismatch},
		{name: "one tuple is not its member", src: "fn main() { let a: (string); let b: string = a; }", want: mismatch},
	})
}

func TestFunctions(t *testing.T) {
	runCheckCases(t, []checkCase{
		{name: "top level in scope", src: "fn add(a: i32, b: i32) -> i32 {} fn main() { let binary: fn(i32, i32) -> i32; let sum = add; let binary = sum; }"},
		{name: "params in scope", src: "fn sum(a: i32, b: i32) { let s: i32 = a + b; }"},
		{name: "call result", src: "fn a() -> i32 {} fn main() { let num: i32 = a(); }"},
		{name: "forward reference", src: "fn main() { let num: u8 = later(1); } fn later(x: u8) -> u8 { return x; }"},
		{name: "call result mismatch", src: "fn a() -> i32 {} fn main() { let s: string = a(); }", want: mismatch},
		{name: "isolated environments", src: "fn foo() { let a: string; } fn bar() { let b: string = a; }", want: undefined},
		{name: "argument type", src: `fn f(s: string) {} fn main() { f(1); }`, want: mismatch},
		{name: "argument count", src: "fn f(a: i32) {} fn main() { f(1, 2); }", want: []diagnostics.Code{diagnostics.CodeArgumentCount}},
		{name: "not callable", src: "fn main() { let a = 1; a(); }", want: []diagnostics.Code{diagnostics.CodeNotCallable}},
		{name: "call undefined", src: "fn main() { missing(); }", want: undefined},
		{name: "duplicate", src: "fn a() {} fn a() {}", want: []diagnostics.Code{diagnostics.CodeDuplicateFunction}},
		{name: "unknown parameter type", src: "fn a(x: float) {}", want: []diagnostics.Code{diagnostics.CodeUnknownType}},
		{name: "curried call", src: "fn mk() -> fn(i32) -> i32 {} fn main() { let x: i32 = mk()(1); }"},
	})
}

func TestReturns(t *testing.T) {
	invalidReturn := []diagnostics.Code{diagnostics.CodeInvalidReturn}
	runCheckCases(t, []checkCase{
		{name: "value", src: "fn a() -> i32 { return 1; }"},
		{name: "bare in unit", src: "fn a() { return; }"},
		{name: "bare in i32", src: "fn a() -> i32 { return; }", want: invalidReturn},
		{name: "wrong type", src: `fn a() -> i32 { return "x"; }`, want: invalidReturn},
		{name: "value in unit", src: "fn a() { return 1; }", want: invalidReturn},
		{name: "return overflow", src: "fn a() -> u8 { return 256; }", want: overflow},
		{name: "lambda return", src: "fn main() { let f = fn() -> string { return \"x\"; }; }"},
		{name: "lambda return mismatch", src: "fn a() -> i32 { let f = fn() -> string { return 1; }; return 2; }", want: invalidReturn},
	})
}

func TestLambdas(t *testing.T) {
	runCheckCases(t, []checkCase{
		{name: "compatible", src: `fn main() {
			let binary: fn(i32, i32) -> i32;
			let add = fn(a: i32, b: i32) -> i32 { a + b; };
			let mul = fn(a: i32, b: i32) -> i32 { a * b; };
			binary = add;
			binary = mul;
		}`},
		{name: "differing return types", src: `fn main() {
			let binary: fn(i32, i32) -> i32;
			let concat = fn(a: i32, b: i32) -> string {};
			binary = concat;
		}`, want: mismatch},
		{name: "differing arity", src: `fn main() {
			let binary: fn(i32, i32) -> i32;
			let square = fn(a: i32) -> i32 {};
			binary = square;
		}`, want: mismatch},
		{name: "differing arguments", src: `fn main() {
			let unary: fn(i32) -> i32;
			let parse_int = fn(a: string) -> i32 {};
			binary = parse_int;
		}`, want: undefined},
		{name: "params", src: `fn main() {
			let repeat = fn(what: string, times: i32) -> string {
				let i = 0;
				let result = what;
				while i < times {
					result = result + what;
					i = i + 1;
				}
			};
		}`},
		{name: "param mismatch", src: `fn main() {
			let repeat = fn(what: string, times: i32) -> string {
				let i = 0;
				let result: i32 = what;
			};
		}`, want: mismatch},
		{name: "param comparison", src: `fn main() {
			let repeat = fn(what: string, times: string) -> string {
				let i = 0;
				while i < times {
					i = i + 1;
				}
			};
		}`, want: operands},
		{name: "no capture", src: "fn main() { let x = 1; let f = fn() { let y = x; }; }", want: undefined},
		{name: "sees globals", src: "fn helper() -> i32 {} fn main() { let f = fn() -> i32 { return helper(); }; }"},
		{name: "called", src: "fn main() { let f = fn(a: i32) -> i32 { return a; }; let b: i32 = f(2); }"},
	})
}

func TestScopes(t *testing.T) {
	runCheckCases(t, []checkCase{
		{name: "outer visible", src: "fn main() { let a = 1; { let b: i32 = a; } }"},
		{name: "inner hidden", src: "fn main() { { let a = 1; } let b = a; }", want: undefined},
		{name: "if block", src: "fn main() { let a = true; if a { let b = 1; } else { let c = 2; } }"},
		{name: "else if", src: "fn main() { let a = 1; if a == 1 { } else if a == 2 { } else { } }"},
		{name: "if block hidden", src: "fn main() { if true { let b = 1; } let c = b; }", want: undefined},
		{name: "condition type", src: "fn main() { if 1 { } }", want: mismatch},
		{name: "while condition type", src: `fn main() { while "x" { } }`, want: mismatch},
	})
}

func TestEnvironmentStack(t *testing.T) {
	globals := map[string]Type{"main": FunctionType{Return: unitType}}
	env := NewEnvironment(globals)
	env.Define("a", boolType)
	env.Push()
	env.Define("a", stringType)
	if typ, _ := env.Lookup("a"); !sameType(typ, stringType) {
		t.Fatalf("inner lookup = %v, want string", typ)
	}
	if !env.Assign("a", defaultInt) {
		t.Fatalf("expected Assign to find a")
	}
	env.Pop()
	if typ, _ := env.Lookup("a"); !sameType(typ, boolType) {
		t.Fatalf("outer lookup = %v, want boolean", typ)
	}
	if _, ok := env.Lookup("main"); !ok {
		t.Fatalf("expected globals to be visible")
	}
	env.Pop()
	env.Pop()
	if env.Depth() != 1 {
		t.Fatalf("depth = %d, want the global scope to remain", env.Depth())
	}
	if env.Assign("missing", boolType) {
		t.Fatalf("Assign should fail for unbound names")
	}
}

func TestSameTypeIsStructural(t *testing.T) {
	i32 := IntegerType{Bits: 32, Signed: true}
	cases := []struct {
		a, b Type
		want bool
	}{
		{i32, IntegerType{Bits: 32, Signed: true}, true},
		{i32, IntegerType{Bits: 32}, false},
		{TupleType{}, TupleType{Members: []Type{}}, true},
		{TupleType{Members: []Type{stringType}}, stringType, false},
		{FunctionType{Params: []Type{i32}, Return: unitType}, FunctionType{Params: []Type{i32}, Return: TupleType{}}, true},
		{FunctionType{Params: []Type{i32}, Return: unitType}, FunctionType{Params: []Type{i32, i32}, Return: unitType}, false},
		{boolType, stringType, false},
	}
	for _, tc := range cases {
		if got := sameType(tc.a, tc.b); got != tc.want {
			t.Fatalf("sameType(%s, %s) = %v, want %v", typeName(tc.a), typeName(tc.b), got, tc.want)
		}
	}
}

func TestTypeNames(t *testing.T) {
	cases := map[string]Type{
		"u16":                     IntegerType{Bits: 16},
		"i8":                      IntegerType{Bits: 8, Signed: true},
		"()":                      unitType,
		"(string, (i32, string))": TupleType{Members: []Type{stringType, TupleType{Members: []Type{defaultInt, stringType}}}},
		"fn(i32) -> fn() -> ()":   FunctionType{Params: []Type{defaultInt}, Return: FunctionType{Return: unitType}},
	}
	for want, typ := range cases {
		if got := typ.Name(); got != want {
			t.Fatalf("Name() = %q, want %q", got, want)
		}
	}
}

func TestTypeOfRecordsConstantWidth(t *testing.T) {
	program := ast.Prog(ast.Fn("main", nil, nil,
		ast.Let("a", ast.Ty("u16"), ast.Num(7)),
	))
	checker := New()
	diags, err := checker.CheckProgram(program)
	if err != nil || len(diags) > 0 {
		t.Fatalf("unexpected result: %v %v", diags, err)
	}
	let := program.Functions[0].Body.Body[0].(*ast.LetStatement)
	typ, ok := checker.TypeOf(let.Initializer)
	if !ok || !sameType(typ, IntegerType{Bits: 16}) {
		t.Fatalf("TypeOf(7) = %v, want u16", typ)
	}
	if sig, ok := checker.Globals()["main"]; !ok || sig.Name() != "fn() -> ()" {
		t.Fatalf("Globals()[main] = %v", sig)
	}
}
