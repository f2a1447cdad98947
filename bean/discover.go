package bean

import (
	"go/types"
	"reflect"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"beanmapper/generic"
	"beanmapper/internal/common"
)

const zeroValueLabel = "zero value"

// build discovers the descriptor of the struct type t.
func (r *Registry) build(t reflect.Type) *Descriptor {
	named := generic.NamedOf(r.source, t)

	d := &Descriptor{
		typ:       t,
		propIndex: make(map[string]int),
		attrIndex: make(map[string]int),
	}

	if named != nil {
		d.binding = generic.BindingOf(named)
	}

	fields := reflect.VisibleFields(t)
	for _, f := range fields {
		a := &Attribute{field: f, owner: t}
		if named != nil {
			a.paramType = resolveDeclared(generic.FieldType(named, f.Index), d.binding)
		}

		d.attrIndex[f.Name] = len(d.attributes)
		d.attributes = append(d.attributes, a)
	}

	d.methods, d.methodNames = collectMethods(t)

	for _, p := range r.discoverProperties(t, fields) {
		if named != nil {
			p.paramType = resolveDeclared(declaredPropertyType(named, p), d.binding)
		}

		d.propIndex[p.name] = len(d.properties)
		d.properties = append(d.properties, p)
	}

	d.initializers = append([]*Initializer{{label: zeroValueLabel, owner: t}}, r.initializers[t]...)

	r.logger.Debug("descriptor built",
		zap.Stringer("type", t),
		zap.Int("properties", len(d.properties)),
		zap.Int("attributes", len(d.attributes)),
		zap.Int("methods", len(d.methodNames)),
		zap.Bool("static", named != nil),
	)

	return d
}

func resolveDeclared(declared types.Type, b generic.Binding) *generic.ParameterizedType {
	if declared == nil {
		return nil
	}

	return generic.Resolve(declared, b)
}

func declaredPropertyType(named *types.Named, p *Property) types.Type {
	switch {
	case p.getter != nil:
		return generic.MethodResult(named, p.getter.name)
	case p.field != nil:
		return generic.FieldType(named, p.field)
	default:
		return generic.MethodParam(named, p.setter.name, 0)
	}
}

func collectMethods(t reflect.Type) (map[string][]*Method, []string) {
	ptr := reflect.PointerTo(t)
	methods := make(map[string][]*Method, ptr.NumMethod())
	names := make([]string, 0, ptr.NumMethod())

	for i := range ptr.NumMethod() {
		m := ptr.Method(i)
		methods[m.Name] = append(methods[m.Name], &Method{
			name:  m.Name,
			index: i,
			typ:   withoutReceiver(m.Type),
			owner: t,
		})
		names = append(names, m.Name)
	}

	return methods, names
}

func withoutReceiver(mt reflect.Type) reflect.Type {
	in := make([]reflect.Type, 0, mt.NumIn()-1)
	for i := 1; i < mt.NumIn(); i++ {
		in = append(in, mt.In(i))
	}

	out := make([]reflect.Type, mt.NumOut())
	for i := range out {
		out[i] = mt.Out(i)
	}

	return reflect.FuncOf(in, out, mt.IsVariadic())
}

// candidate collects everything that may back one property name.
type candidate struct {
	name     string
	field    *reflect.StructField
	position int

	getter     *accessor
	getterType reflect.Type
	explicit   bool // GetX or IsX rather than plain X

	setter     *accessor
	setterType reflect.Type
}

func (r *Registry) discoverProperties(t reflect.Type, fields []reflect.StructField) []*Property {
	var order []string
	cands := make(map[string]*candidate)

	get := func(name string) *candidate {
		c, ok := cands[name]
		if !ok {
			c = &candidate{name: name, position: -1}
			cands[name] = c
			order = append(order, name)
		}
		return c
	}

	backing := make(map[string]int)
	for i := range fields {
		f := &fields[i]

		if !f.IsExported() {
			if _, seen := backing[f.Name]; !seen && !f.Anonymous {
				backing[f.Name] = i
			}
			continue
		}

		if f.Anonymous && isStructLike(f.Type) {
			continue
		}

		name, ok := r.propertyName(f)
		if !ok {
			continue
		}

		if c := get(name); c.field == nil {
			c.field, c.position = f, i
		}
	}

	ptr := reflect.PointerTo(t)
	setters := make(map[string]bool)

	for i := range ptr.NumMethod() {
		m := ptr.Method(i)
		if prop, returns, ok := setterName(m); ok {
			c := get(prop)
			c.setter = &accessor{name: m.Name, index: i, returns: returns}
			c.setterType = m.Type.In(1)
			setters[m.Name] = true
		}
	}

	for i := range ptr.NumMethod() {
		m := ptr.Method(i)
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 || m.Type.Out(0) == errorType {
			continue
		}

		if prop, ok := explicitGetterName(m); ok {
			c := get(prop)
			c.getter = &accessor{name: m.Name, index: i}
			c.getterType, c.explicit = m.Type.Out(0), true
			continue
		}

		prop := common.Decapitalize(m.Name)
		_, hasField := backing[lowerFirst(m.Name)]
		if !hasField && !setters["Set"+m.Name] {
			continue
		}

		if c, ok := cands[prop]; ok && c.explicit {
			continue
		}

		c := get(prop)
		c.getter = &accessor{name: m.Name, index: i}
		c.getterType = m.Type.Out(0)
	}

	props := make([]*Property, 0, len(order))
	positions := make(map[string]int, len(order))

	for _, name := range order {
		c := cands[name]
		if p := r.merge(t, c); p != nil {
			props = append(props, p)

			positions[name] = c.position
			if c.position < 0 {
				if pos, ok := backing[lowerFirst(c.name)]; ok {
					positions[name] = pos
				} else if pos, ok := backing[c.name]; ok {
					positions[name] = pos
				}
			}
		}
	}

	slices.SortStableFunc(props, func(a, b *Property) int {
		pa, pb := positions[a.name], positions[b.name]
		switch {
		case pa >= 0 && pb >= 0:
			return pa - pb
		case pa >= 0:
			return -1
		case pb >= 0:
			return 1
		default:
			return strings.Compare(a.name, b.name)
		}
	})

	return props
}

// merge turns a candidate into a property; method accessors win over the field.
func (r *Registry) merge(t reflect.Type, c *candidate) *Property {
	p := &Property{name: c.name, owner: t, getter: c.getter, setter: c.setter}

	switch {
	case c.getter != nil:
		p.typ = c.getterType
	case c.setter != nil:
		p.typ = c.setterType
	default:
		p.typ = c.field.Type
	}

	if p.setter != nil && c.setterType != p.typ {
		r.logger.Debug("setter ignored",
			zap.Stringer("type", t),
			zap.String("property", c.name),
			zap.String("reason", "parameter type differs from getter result"),
		)
		p.setter = nil
	}

	if c.field != nil && c.field.Type == p.typ {
		p.field = c.field.Index
		p.fieldRead = p.getter == nil
		p.fieldSet = p.setter == nil
	}

	if !p.Readable() && !p.Writable() {
		return nil
	}

	return p
}

// propertyName applies the registry tag to an exported field.
func (r *Registry) propertyName(f *reflect.StructField) (string, bool) {
	tag, _, _ := strings.Cut(f.Tag.Get(r.tagName), ",")

	switch tag {
	case "-":
		return "", false
	case "":
		return common.Decapitalize(f.Name), true
	default:
		return tag, true
	}
}

func setterName(m reflect.Method) (prop string, returns bool, ok bool) {
	rest, found := strings.CutPrefix(m.Name, "Set")
	if !found || !startsUpper(rest) || m.Type.NumIn() != 2 || m.Type.IsVariadic() {
		return "", false, false
	}

	switch {
	case m.Type.NumOut() == 0:
		return common.Decapitalize(rest), false, true
	case m.Type.NumOut() == 1 && m.Type.Out(0) == errorType:
		return common.Decapitalize(rest), true, true
	default:
		return "", false, false
	}
}

func explicitGetterName(m reflect.Method) (string, bool) {
	if rest, found := strings.CutPrefix(m.Name, "Get"); found && startsUpper(rest) {
		return common.Decapitalize(rest), true
	}

	if rest, found := strings.CutPrefix(m.Name, "Is"); found && startsUpper(rest) && m.Type.Out(0).Kind() == reflect.Bool {
		return common.Decapitalize(rest), true
	}

	return "", false
}

func isStructLike(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
