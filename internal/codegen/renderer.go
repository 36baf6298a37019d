package codegen

import "strings"

// Placeholder is written into methods that have no body.
const Placeholder = "// Your code goes here..."

// Renderer serializes a Class as PHP source.
type Renderer struct {
	params bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithParams makes the renderer write method parameters into the signature
// and as @param doc lines. By default signatures are "name()" and parameters
// stay in the model only.
func WithParams() Option {
	return func(r *Renderer) {
		r.params = true
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the full source of c through w.
func (r *Renderer) Render(c *Class, w Writer) {
	r.writeHeader(w)
	r.writeImports(c, w)
	r.writeClass(c, w)
}

func (r *Renderer) writeHeader(w Writer) {
	w.WriteLine("<?php")
	w.WriteLine("")
}

func (r *Renderer) writeImports(c *Class, w Writer) {
	for _, symbol := range c.Imports() {
		w.WriteLine("use " + symbol + ";")
	}
	w.WriteLine("")
}

func (r *Renderer) writeClass(c *Class, w Writer) {
	w.WriteLine(signature(c))
	w.WriteLine("{")
	w.Indent()

	methods := c.Methods()
	for i, m := range methods {
		r.writeDocBlock(m, w)
		r.writeMethod(m, w)
		if i < len(methods)-1 {
			w.WriteLine("")
		}
	}

	w.Outdent()
	w.WriteLine("}")
}

func (r *Renderer) writeDocBlock(m *Method, w Writer) {
	w.WriteLine("/**")
	w.WriteLine(" * " + m.Description())
	w.WriteLine(" *")
	if r.params {
		for _, p := range m.Params() {
			w.WriteLine(" * @param " + formatParam(p))
		}
	}
	for _, ret := range m.Returns() {
		w.WriteLine(" * @return " + ret.Type)
	}
	w.WriteLine(" */")
}

func (r *Renderer) writeMethod(m *Method, w Writer) {
	var params []string
	if r.params {
		for _, p := range m.Params() {
			params = append(params, formatParam(p))
		}
	}

	w.WriteLine(m.Scope() + " function " + m.Name() + "(" + strings.Join(params, ", ") + ")")
	w.WriteLine("{")
	if body := m.Body(); body == nil {
		w.Indent()
		w.WriteLine(Placeholder)
		w.Outdent()
	} else {
		body.Render(w)
	}
	w.WriteLine("}")
}

// signature builds "class Name[ extends A, B][ implements I, J]".
func signature(c *Class) string {
	var b strings.Builder
	b.WriteString("class ")
	b.WriteString(c.Name())
	if len(c.Extends()) > 0 {
		b.WriteString(" extends ")
		b.WriteString(strings.Join(c.Extends(), ", "))
	}
	if len(c.Implements()) > 0 {
		b.WriteString(" implements ")
		b.WriteString(strings.Join(c.Implements(), ", "))
	}
	return b.String()
}

func formatParam(p Param) string {
	if p.Type == "" {
		return "$" + p.Name
	}
	return p.Type + " $" + p.Name
}
