package shading

import "fmt"

// Registry enumerates available shader modules by stable id, exposing their
// schemas to a host UI.
type Registry struct {
	modules map[string]Module
	order   []string // registration order, used only for Registry.All's output
}

// NewRegistry builds a registry pre-populated with the engine's built-in
// modules: basic, dynamic (lighting), faceshade, iso (fx). Callers may
// register further modules with Register.
func NewRegistry() *Registry {
	r := &Registry{modules: make(map[string]Module)}
	for _, m := range []Module{NewBasic(), NewDynamic(), NewFaceShade(), NewIso()} {
		r.Register(m)
	}
	return r
}

// Register adds or replaces a module by its ID.
func (r *Registry) Register(m Module) {
	if _, exists := r.modules[m.ID()]; !exists {
		r.order = append(r.order, m.ID())
	}
	r.modules[m.ID()] = m
}

// Lookup returns the module registered under id, or false if none is.
func (r *Registry) Lookup(id string) (Module, bool) {
	m, ok := r.modules[id]
	return m, ok
}

// All returns every registered module in registration order.
func (r *Registry) All() []Module {
	out := make([]Module, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.modules[id])
	}
	return out
}

// defaultLightingID is the module DefaultConfig builds the default chain
// from (basic light alone); Build resolves it to whatever module is
// currently registered under that id.
const defaultLightingID = "basic"

// EntryConfig is one module's slot in a ShaderConfig: which module, and the
// parameter values to invoke it with (missing keys fall back to the
// module's own schema defaults).
type EntryConfig struct {
	ModuleID string
	Params   map[string]any
}

// Config is an ordered shader chain as supplied by a caller. Execution
// always runs every lighting-category entry first, in the order given,
// then every fx-category entry, in the order given — regardless of how the
// two categories are interleaved in Entries.
type Config struct {
	Entries []EntryConfig
}

// DefaultConfig returns the mandatory default chain: basic light alone.
func DefaultConfig() Config {
	return Config{Entries: []EntryConfig{{ModuleID: defaultLightingID}}}
}

// Chain resolves a Config against a Registry into the two ordered module
// lists Run executes, failing if any entry names an unregistered module.
type Chain struct {
	lighting []EntryConfig
	fx       []EntryConfig
	modules  map[string]Module
}

// Build resolves cfg's entries against reg, partitioning them into the
// lighting and fx passes.
func Build(reg *Registry, cfg Config) (*Chain, error) {
	c := &Chain{modules: make(map[string]Module)}
	for _, e := range cfg.Entries {
		m, ok := reg.Lookup(e.ModuleID)
		if !ok {
			return nil, fmt.Errorf("shading: unknown module %q", e.ModuleID)
		}
		c.modules[e.ModuleID] = m
		switch m.Category() {
		case CategoryLighting:
			c.lighting = append(c.lighting, e)
		case CategoryFX:
			c.fx = append(c.fx, e)
		}
	}
	return c, nil
}

// Run executes the chain over inputs: every lighting module in declared
// order, then every fx module in declared order, each consuming the prior
// module's output colors as its own Base. An empty chain returns inputs'
// base colors unchanged.
func (c *Chain) Run(inputs []FaceInput, ctx *ViewContext) []FaceOutput {
	cur := inputs
	var out []FaceOutput
	apply := func(entries []EntryConfig) {
		for _, e := range entries {
			m := c.modules[e.ModuleID]
			out = m.Process(cur, e.Params, ctx)
			next := make([]FaceInput, len(cur))
			for i := range cur {
				next[i] = cur[i]
				next[i].Base = out[i].Color
			}
			cur = next
		}
	}
	apply(c.lighting)
	apply(c.fx)
	if out == nil {
		out = make([]FaceOutput, len(inputs))
		for i, in := range inputs {
			out[i] = FaceOutput{Color: in.Base}
		}
	}
	return out
}
