package parser

// Имена typedef живут в лексических областях: без них "T *x;" не отличить
// от умножения.

func (p *Parser) pushScope() {
	p.scopes = append(p.scopes, map[string]bool{})
}

func (p *Parser) popScope() {
	if len(p.scopes) > 1 {
		p.scopes = p.scopes[:len(p.scopes)-1]
	}
}

// declareName records name in the innermost scope; ordinary identifiers
// shadow outer typedef names.
func (p *Parser) declareName(name string, isTypedef bool) {
	if name == "" {
		return
	}
	p.scopes[len(p.scopes)-1][name] = isTypedef
}

func (p *Parser) isTypedefName(name string) bool {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if v, ok := p.scopes[i][name]; ok {
			return v
		}
	}
	return false
}
