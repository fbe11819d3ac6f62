package narrative

import "NarrativeScanner/internal/domain"

// Bounds on the number of ideas produced per run.
const (
	MinIdeas = 3
	MaxIdeas = 5
)

// Generator maps narratives to build ideas through a template catalog.
type Generator struct {
	catalog *Catalog
	fillers []IdeaTemplate
}

// NewGenerator wires a catalog; nil selects DefaultCatalog. A catalog without
// fillers borrows the built-in ones so the minimum is always reachable.
func NewGenerator(catalog *Catalog) *Generator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	fillers := catalog.Fillers()
	if len(fillers) == 0 {
		fillers = DefaultCatalog().Fillers()
	}
	return &Generator{catalog: catalog, fillers: fillers}
}

// Generate instantiates templates for each narrative in order until MaxIdeas
// accumulate, then pads with General fillers up to MinIdeas.
func (g *Generator) Generate(narratives []domain.Narrative) []domain.BuildIdea {
	ideas := make([]domain.BuildIdea, 0, MaxIdeas)

collect:
	for _, n := range narratives {
		for _, tpl := range g.catalog.Templates(n.Name) {
			if len(ideas) >= MaxIdeas {
				break collect
			}
			ideas = append(ideas, tpl.bind(n.Name))
		}
	}

	for i := 0; len(ideas) < MinIdeas; i++ {
		ideas = append(ideas, g.fillers[i%len(g.fillers)].bind(domain.GeneralNarrative))
	}

	if len(ideas) > MaxIdeas {
		ideas = ideas[:MaxIdeas]
	}
	return ideas
}
