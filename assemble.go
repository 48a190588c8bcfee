package trellodoc

// Assembler folds method records across all regions into a single descriptor
// document. Records accumulate linearly in discovery order; there is no
// rollback.
type Assembler struct {
	cfg    *Config
	ranker *Ranker
}

// NewAssembler returns an Assembler over a fresh descriptor document.
func NewAssembler() *Assembler {
	return &Assembler{
		cfg:    NewConfig(),
		ranker: NewRanker(),
	}
}

// Add builds the record for one extracted subsection and appends it to the
// document, returning the canonical name it was filed under. Two subsections
// rewriting to the same canonical name are a conflict: Add returns ECONFLICT
// for the second rather than silently overwriting a record that kept the
// first one's rank.
func (a *Assembler) Add(raw *RawMethod) (string, error) {
	name, m := BuildMethod(raw)
	if _, ok := a.cfg.Methods[name]; ok {
		return "", Errorf(ECONFLICT, "canonical name %q already assigned", name)
	}
	a.ranker.Rank(name)
	a.cfg.Methods[name] = m
	a.cfg.order = append(a.cfg.order, name)
	return name, nil
}

// Config returns the accumulated document.
func (a *Assembler) Config() *Config {
	return a.cfg
}
