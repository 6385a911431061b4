package model

import "iter"

// Findings walks the tree depth-first, pre-order. A Problem is yielded and
// not descended into; any other node yields its Opinions and then its
// children. Each range over the result starts a fresh walk.
func Findings(root Node) iter.Seq[Finding] {
	return func(yield func(Finding) bool) {
		walk(root, yield)
	}
}

func walk(n Node, yield func(Finding) bool) bool {
	if n == nil {
		return true
	}
	if p, ok := n.(*Problem); ok {
		return yield(p)
	}
	for _, o := range n.Opinions() {
		if !yield(o) {
			return false
		}
	}
	if p, ok := n.(Parent); ok {
		for _, c := range p.Children() {
			if !walk(c, yield) {
				return false
			}
		}
	}
	return true
}

// HasProblems reports whether any Problem is reachable from root. A root that
// is itself a Problem or Problems counts.
func HasProblems(root Node) bool {
	for f := range Findings(root) {
		if f.Severity() == SeverityError {
			return true
		}
	}
	return false
}

// Count tallies the findings under root by severity.
func Count(root Node) (problems, opinions int) {
	for f := range Findings(root) {
		switch f.Severity() {
		case SeverityError:
			problems++
		case SeverityWarning:
			opinions++
		}
	}
	return problems, opinions
}
