package mycontainer

type MethodCall struct {
	Method    string
	Arguments []any
}

// Definition describes how to construct one service.
//
// Arguments and call arguments may hold plain values, strings with %parameter%
// placeholders, References or inline *Definitions.
type Definition struct {
	Type      string
	Arguments []any
	Calls     []MethodCall
	Public    bool
}

// Clone returns a deep copy of the definition, including inline definitions.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	cp := &Definition{
		Type:      d.Type,
		Arguments: cloneArgs(d.Arguments),
		Public:    d.Public,
	}
	if d.Calls != nil {
		cp.Calls = make([]MethodCall, 0, len(d.Calls))
		for _, call := range d.Calls {
			cp.Calls = append(cp.Calls, MethodCall{Method: call.Method, Arguments: cloneArgs(call.Arguments)})
		}
	}
	return cp
}

func cloneArgs(args []any) []any {
	if args == nil {
		return nil
	}
	out := make([]any, 0, len(args))
	for _, arg := range args {
		out = append(out, cloneArg(arg))
	}
	return out
}

func cloneArg(arg any) any {
	switch typed := arg.(type) {
	case *Definition:
		return typed.Clone()
	case []any:
		return cloneArgs(typed)
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = cloneArg(value)
		}
		return out
	default:
		return arg
	}
}

// DefinitionBuilder collects everything a Definition needs and hands out a finished copy.
// Nothing is visible to the container until Build is called.
type DefinitionBuilder struct {
	def Definition
}

func NewDefinitionBuilder(typeName string) *DefinitionBuilder {
	return &DefinitionBuilder{def: Definition{Type: typeName}}
}

func (b *DefinitionBuilder) AddArgument(arg any) *DefinitionBuilder {
	b.def.Arguments = append(b.def.Arguments, arg)
	return b
}

func (b *DefinitionBuilder) AddMethodCall(method string, args ...any) *DefinitionBuilder {
	b.def.Calls = append(b.def.Calls, MethodCall{Method: method, Arguments: args})
	return b
}

func (b *DefinitionBuilder) SetPublic(public bool) *DefinitionBuilder {
	b.def.Public = public
	return b
}

func (b *DefinitionBuilder) Build() *Definition {
	return b.def.Clone()
}
