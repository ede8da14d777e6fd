package typechecker

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"

	"onec/compiler-go/pkg/ast"
	"onec/compiler-go/pkg/diagnostics"
)

// InferenceMap records the type assigned to each checked expression.
type InferenceMap map[ast.Expression]Type

func (m InferenceMap) set(expr ast.Expression, typ Type) {
	if expr == nil || typ == nil {
		return
	}
	m[expr] = typ
}

func (m InferenceMap) get(expr ast.Expression) (Type, bool) {
	typ, ok := m[expr]
	return typ, ok
}

// Checker walks a program's functions and records type diagnostics.
type Checker struct {
	infer   InferenceMap
	globals map[string]Type
	returns []Type
}

// New returns a checker instance.
func New() *Checker {
	return &Checker{
		infer:   make(InferenceMap),
		globals: make(map[string]Type),
	}
}

// CheckProgram typechecks program and returns its diagnostics. The error is
// reserved for misuse, not for problems in the program.
func (c *Checker) CheckProgram(program *ast.Program) ([]diagnostics.Diagnostic, error) {
	if program == nil {
		return nil, fmt.Errorf("typechecker: program is nil")
	}
	c.infer = make(InferenceMap)
	c.globals = make(map[string]Type)
	c.returns = nil

	diags := c.collectDeclarations(program)
	for _, fn := range program.Functions {
		diags = append(diags, c.checkFunction(fn)...)
	}
	return diags, nil
}

// TypeOf returns the type inferred for expr by the last CheckProgram call.
// Integer constants report the width their context gave them.
func (c *Checker) TypeOf(expr ast.Expression) (Type, bool) {
	return c.infer.get(expr)
}

// Globals returns the signatures of the top-level functions.
func (c *Checker) Globals() map[string]Type {
	out := make(map[string]Type, len(c.globals))
	for name, typ := range c.globals {
		out[name] = typ
	}
	return out
}

// collectDeclarations binds every function signature before any body is
// checked, so functions may call ones declared later. Type errors inside
// signatures are reported when the function itself is checked.
func (c *Checker) collectDeclarations(program *ast.Program) []diagnostics.Diagnostic {
	var diags []diagnostics.Diagnostic
	seen := set.New[string](len(program.Functions))
	for _, fn := range program.Functions {
		if fn == nil || fn.ID == nil {
			continue
		}
		name := fn.ID.Name
		if !seen.Insert(name) {
			diags = append(diags, errorAt(fn.ID, diagnostics.CodeDuplicateFunction, "function %s is declared more than once", name))
			continue
		}
		_, sig := c.functionSignature(fn.Params, fn.ReturnType)
		c.globals[name] = sig
	}
	return diags
}

func (c *Checker) checkFunction(fn *ast.FunctionDefinition) []diagnostics.Diagnostic {
	if fn == nil {
		return nil
	}
	diags, sig := c.functionSignature(fn.Params, fn.ReturnType)
	env := NewEnvironment(c.globals)
	for i, param := range fn.Params {
		env.Define(param.Name.Name, sig.Params[i])
	}

	c.enterFunction(sig.Return)
	defer c.leaveFunction()
	return append(diags, c.checkBlock(env, fn.Body)...)
}

// functionSignature resolves the declared parameter and return types.
func (c *Checker) functionSignature(params []*ast.FunctionParameter, ret ast.TypeExpression) ([]diagnostics.Diagnostic, FunctionType) {
	var diags []diagnostics.Diagnostic
	sig := FunctionType{Params: make([]Type, len(params))}
	for i, param := range params {
		paramDiags, typ := c.resolveTypeExpression(param.ParamType)
		diags = append(diags, paramDiags...)
		sig.Params[i] = typ
	}
	retDiags, retType := c.resolveTypeExpression(ret)
	diags = append(diags, retDiags...)
	sig.Return = retType
	return diags, sig
}

func errorAt(node ast.Node, code diagnostics.Code, format string, args ...any) diagnostics.Diagnostic {
	d := diagnostics.Errorf(format, args...).WithCode(code)
	if node != nil {
		d = d.WithSpan(node.Span())
	}
	return *d
}
