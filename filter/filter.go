// Package filter provides expression-based client-side filtering of
// resource listings, built on the expr language.
//
// Expressions evaluate against one resource at a time and must return a
// boolean. Resource properties are exposed both as direct variables
// (publicID, format, bytes, tags, createdAt, ...) and through helper
// functions (hasTag, daysSince, ...):
//
//	bytes > 10*1024*1024 && hasTag("archive")
//	daysSince(createdAt) > 365 && format == "png"
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mediary/cloudctl/admin"
)

// DefaultCacheSize bounds the compiled-program cache of the default
// compiler.
const DefaultCacheSize = 64

// Filter is a compiled filter expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compiler compiles filter expressions, caching compiled programs.
type Compiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithCache sets the compiled-program cache size. A size of zero disables
// caching.
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		} else {
			c.cache = nil
		}
	}
}

// NewCompiler creates a filter compiler.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helperFuncs: createHelperFunctions(),
		cache:       newLRUCache(DefaultCacheSize),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles an expression into an executable filter.
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Check cache if enabled
	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Compile with static environment for validation
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(), // Allow resource properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &Filter{
		expression: expression,
		program:    program,
	}

	// Cache if enabled
	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// defaultCompiler backs the package-level Compile.
var defaultCompiler = NewCompiler()

// Compile compiles an expression with the default compiler.
func Compile(expression string) (*Filter, error) {
	return defaultCompiler.Compile(expression)
}

// Match evaluates the filter against a resource. Evaluation errors count
// as non-matches.
func (f *Filter) Match(resource admin.Resource) bool {
	matched, err := f.Evaluate(resource)
	if err != nil {
		return false
	}
	return matched
}

// Evaluate evaluates the filter against a resource, reporting evaluation
// failures instead of treating them as non-matches.
func (f *Filter) Evaluate(resource admin.Resource) (bool, error) {
	env := createRuntimeEnvironment(resource)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			PublicID:   resource.PublicID,
			Reason:     "failed to run expression",
			Err:        err,
		}
	}

	// Result is guaranteed to be bool due to AsBool() during compilation
	return result.(bool), nil
}

// Expression returns the original expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Resources returns the resources matching the filter, preserving input
// order.
func (f *Filter) Resources(resources []admin.Resource) []admin.Resource {
	var matched []admin.Resource
	for _, resource := range resources {
		if f.Match(resource) {
			matched = append(matched, resource)
		}
	}
	return matched
}
