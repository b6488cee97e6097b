package style

import (
	"vermeer/pkg/css"
	"vermeer/pkg/dom"
)

// FontSizePass cascades the effective font size top-down. It watches the
// font-size attribute and depends on the parent's already-settled size:
// the scheduler guarantees a node runs strictly after its parent.
//
// Length values go through the unit resolution engine with em scaled by
// the parent's resolved size; rem resolves against the configured root
// size. Absolute keywords use the literal pixel table, relative keywords
// parent∓2 (see css.KeywordFontSize for the competing factor table).
type FontSizePass struct {
	store *Store
}

// NewFontSizePass creates the cascade pass writing into store.
func NewFontSizePass(store *Store) *FontSizePass {
	return &FontSizePass{store: store}
}

// Spec declares the watched attribute and the parent dependency.
func (p *FontSizePass) Spec() dom.PassSpec {
	return dom.PassSpec{
		Name:       "font-size",
		Attributes: []string{"font-size"},
		Dependency: dom.DepParent,
	}
}

// Run recomputes the node's font size. An absent or unparseable attribute
// reports no change, retaining the previous value; an equal result also
// reports no change so the cascade stops propagating.
func (p *FontSizePass) Run(n *dom.Node) (bool, error) {
	raw, ok := n.Attribute("font-size")
	if !ok {
		return false, nil
	}
	value, ok := css.ParseFontSize(raw)
	if !ok {
		return false, nil
	}

	cfg := p.store.Config()
	parent := cfg.DefaultFontSize
	if n.Parent != nil {
		parent = p.store.FontSize(n.Parent.ID)
	}

	var computed float64
	if value.Length != nil {
		// em means "relative to the parent" in this pass, so the
		// context's em base is the parent size; percentages resolve
		// against it too.
		ctx := css.ResolveContext{
			ContainerSize:   parent,
			FontSize:        parent,
			RootFontSize:    cfg.RootSize(),
			DefaultFontSize: parent,
			Viewport:        cfg.Viewport(),
		}
		v, err := value.Length.Resolve(ctx)
		if err != nil {
			return false, err
		}
		computed = v
	} else {
		computed = css.KeywordFontSize(value.Keyword, css.LiteralKeywords, parent, cfg.DefaultFontSize)
	}

	if p.store.FontSize(n.ID) == computed {
		return false, nil
	}
	p.store.fontSize[n.ID] = computed
	return true, nil
}
