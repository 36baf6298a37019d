package codegen

import "errors"

// ErrEmptyClassName is returned when a class is created without a name.
var ErrEmptyClassName = errors.New("class name is required")

// Visibility scopes for generated methods.
const (
	ScopePublic    = "public"
	ScopeProtected = "protected"
	ScopePrivate   = "private"
)

// Body writes the statements of a method. It is called with the writer
// positioned inside the method braces and must leave the depth as it found it.
type Body interface {
	Render(w Writer)
}

// BodyFunc adapts a plain function to Body.
type BodyFunc func(w Writer)

// Render calls f(w).
func (f BodyFunc) Render(w Writer) {
	f(w)
}

// Param describes a method parameter. Type may be empty.
type Param struct {
	Type string
	Name string
}

// Return describes a documented return type.
type Return struct {
	Type string
}

// Method describes one method of a generated class.
type Method struct {
	name        string
	scope       string
	description string
	params      []Param
	returns     []Return
	body        Body
}

// NewMethod creates a method with no params, returns or body.
func NewMethod(name, scope, description string) *Method {
	return &Method{
		name:        name,
		scope:       scope,
		description: description,
	}
}

func (m *Method) Name() string        { return m.name }
func (m *Method) Scope() string       { return m.scope }
func (m *Method) Description() string { return m.description }

// AddParam appends a parameter.
func (m *Method) AddParam(p Param) {
	m.params = append(m.params, p)
}

// Params returns the parameters in insertion order.
func (m *Method) Params() []Param {
	return m.params
}

// AddReturn appends a documented return type.
func (m *Method) AddReturn(r Return) {
	m.returns = append(m.returns, r)
}

// Returns returns the documented return types in insertion order.
func (m *Method) Returns() []Return {
	return m.returns
}

// SetBody sets the body. A nil body renders a placeholder comment.
func (m *Method) SetBody(b Body) {
	m.body = b
}

// Body returns the body, or nil when none was set.
func (m *Method) Body() Body {
	return m.body
}

// Class describes a class to be generated. Every list keeps insertion
// order, which is also the order in which it is rendered.
type Class struct {
	name       string
	imports    []string
	extends    []string
	implements []string
	methods    []*Method
}

// NewClass creates an empty class.
func NewClass(name string) (*Class, error) {
	if name == "" {
		return nil, ErrEmptyClassName
	}
	return &Class{name: name}, nil
}

func (c *Class) Name() string { return c.name }

// AddImport appends a fully-qualified symbol to import. Duplicates are kept.
func (c *Class) AddImport(symbol string) {
	c.imports = append(c.imports, symbol)
}

func (c *Class) Imports() []string { return c.imports }

// AddExtend appends a base type.
func (c *Class) AddExtend(name string) {
	c.extends = append(c.extends, name)
}

func (c *Class) Extends() []string { return c.extends }

// AddImplement appends an implemented interface.
func (c *Class) AddImplement(name string) {
	c.implements = append(c.implements, name)
}

func (c *Class) Implements() []string { return c.implements }

// AddMethod appends a method.
func (c *Class) AddMethod(m *Method) {
	c.methods = append(c.methods, m)
}

func (c *Class) Methods() []*Method { return c.methods }
