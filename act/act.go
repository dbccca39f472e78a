// Package act implements the tree-based act/structural-assertion
// extractor (§4.5): for each root of a DepTree, classify one of five
// patterns and emit an Act or StructuralAssertion node.
package act

import (
	"strconv"
	"strings"

	"github.com/c360studio/tagteam/deptree"
	"github.com/c360studio/tagteam/graph"
	"github.com/c360studio/tagteam/lexicon"
)

// Resolver maps a head token id to the graph node id of the entity it
// denotes, as assigned by the entity extractor. A false second return
// means no entity covers that token and the reference is omitted.
type Resolver func(tokenID int) (string, bool)

// Extractor walks a DepTree's roots and classifies each into one of the
// five §4.5 patterns.
type Extractor struct {
	Tree     *deptree.Tree
	Resolve  Resolver
	idSeq    int
}

// New builds an Extractor over tree, resolving participant references
// through resolve.
func New(tree *deptree.Tree, resolve Resolver) *Extractor {
	return &Extractor{Tree: tree, Resolve: resolve}
}

// Extract classifies every root in the tree (and any embedded clauses
// reachable via advcl/acl:relcl/acl) and returns the resulting nodes in
// discovery order.
func (e *Extractor) Extract() []graph.Node {
	var out []graph.Node
	for _, root := range e.Tree.Roots() {
		out = append(out, e.classify(root)...)
	}
	return out
}

func (e *Extractor) classify(id int) []graph.Node {
	t := e.Tree

	if _, ok := t.ChildWithLabel(id, "cop"); ok {
		return e.copular(id)
	}
	if _, ok := t.ChildWithLabel(id, "expl"); ok {
		return []graph.Node{e.existential(id)}
	}
	lemma := lexicon.Lemmatize(t.Word(id), t.Tag(id))
	if lemma == "have" {
		if _, hasObj := t.ChildWithLabel(id, "obj"); hasObj {
			_, hasAux := t.ChildWithLabel(id, "aux")
			_, hasAuxPass := t.ChildWithLabel(id, "aux:pass")
			if !hasAux && !hasAuxPass {
				return e.possessive(id)
			}
		}
	}
	if lexicon.VerbDerivedLocativeLemmas[lemma] {
		if sa, ok := e.verbDerivedLocative(id, lemma); ok {
			return []graph.Node{sa}
		}
	}
	return e.regular(id)
}

// copular handles pattern 1 (§4.5): root has a cop child, the root is the
// predicate; emits a locative or relation-inferred structural assertion.
func (e *Extractor) copular(id int) []graph.Node {
	t := e.Tree
	subjArc, hasSubj := t.ChildWithLabel(id, "nsubj")
	if !hasSubj {
		subjArc, hasSubj = t.ChildWithLabel(id, "nsubj:pass")
	}
	copArc, _ := t.ChildWithLabel(id, "cop")

	sa := graph.NewStructuralAssertion(e.saID(id), t.SubtreeText(id))
	if hasSubj {
		if ref, ok := e.Resolve(subjArc.Dependent); ok {
			sa.Subject = graph.RefTo(ref)
		}
	}
	sa.Copula = strings.ToLower(t.Word(copArc.Dependent))
	sa.Negated = e.isNegated(id)

	if caseArc, ok := e.caseChildLocative(id); ok {
		sa.Pattern = "locative"
		sa.Relation = "bfo:located_in"
		if ref, ok := e.Resolve(caseArc); ok {
			obj := graph.RefTo(ref)
			sa.Object = &obj
		}
		return []graph.Node{sa}
	}

	objArc, ok := t.ChildWithLabel(id, "nmod")
	if !ok {
		objArc, ok = t.ChildWithLabel(id, "obl")
	}
	if ok {
		prep := e.casePreposition(objArc.Dependent)
		phrase := strings.TrimSpace(t.Word(id) + " " + prep)
		if relation, found := lexicon.RelationInference[phrase]; found {
			sa.Relation = relation
		}
		if ref, ok := e.Resolve(objArc.Dependent); ok {
			obj := graph.RefTo(ref)
			sa.Object = &obj
		}
	}

	if sa.Negated {
		sa.Pattern = "negated_predication"
	} else {
		sa.Pattern = "predication"
	}
	return []graph.Node{sa}
}

// existential handles pattern 2 (§4.5).
func (e *Extractor) existential(id int) graph.Node {
	t := e.Tree
	sa := graph.NewStructuralAssertion(e.saID(id), t.SubtreeText(id))
	sa.Pattern = "existential"
	if subjArc, ok := t.ChildWithLabel(id, "nsubj"); ok {
		if ref, ok := e.Resolve(subjArc.Dependent); ok {
			sa.Subject = graph.RefTo(ref)
		}
	}
	sa.Negated = e.isNegated(id)
	return sa
}

// possessive handles pattern 3 (§4.5): emits both a possessive assertion
// and a possessive Act for the verb itself.
func (e *Extractor) possessive(id int) []graph.Node {
	t := e.Tree
	sa := graph.NewStructuralAssertion(e.saID(id), t.SubtreeText(id))
	sa.Pattern = "possessive"
	if subjArc, ok := t.ChildWithLabel(id, "nsubj"); ok {
		if ref, ok := e.Resolve(subjArc.Dependent); ok {
			sa.Subject = graph.RefTo(ref)
		}
	}
	if objArc, ok := t.ChildWithLabel(id, "obj"); ok {
		if ref, ok := e.Resolve(objArc.Dependent); ok {
			obj := graph.RefTo(ref)
			sa.Object = &obj
		}
	}
	sa.Negated = e.isNegated(id)

	a := e.newAct(id, graph.PatternPossessive)
	return append([]graph.Node{sa, a}, e.embedded(id)...)
}

// verbDerivedLocative handles pattern 4 (§4.5): passive locate/base with
// an obl in/at case, unless the agentive-by test suppresses it.
func (e *Extractor) verbDerivedLocative(id int, lemma string) (graph.Node, bool) {
	t := e.Tree
	if !e.isPassive(id) {
		return nil, false
	}
	oblArc, ok := t.ChildWithLabel(id, "obl")
	if !ok {
		return nil, false
	}
	prep := e.casePreposition(oblArc.Dependent)
	if prep != "in" && prep != "at" {
		return nil, false
	}
	if e.hasCasePreposition(id, "by") {
		return nil, false
	}
	sa := graph.NewStructuralAssertion(e.saID(id), t.SubtreeText(id))
	sa.Pattern = "locative"
	sa.Relation = "bfo:located_in"
	if subjArc, ok := t.ChildWithLabel(id, "nsubj:pass"); ok {
		if ref, ok := e.Resolve(subjArc.Dependent); ok {
			sa.Subject = graph.RefTo(ref)
		}
	}
	if ref, ok := e.Resolve(oblArc.Dependent); ok {
		obj := graph.RefTo(ref)
		sa.Object = &obj
	}
	_ = lemma
	return sa, true
}

// regular handles pattern 5 (§4.5): a plain Act plus recursive embedded
// clauses.
func (e *Extractor) regular(id int) []graph.Node {
	a := e.newAct(id, graph.PatternRegular)
	return append([]graph.Node{a}, e.embedded(id)...)
}

// embedded recurses into advcl/acl:relcl/acl children, each producing
// further acts (§4.5 pattern 5).
func (e *Extractor) embedded(id int) []graph.Node {
	var out []graph.Node
	for _, label := range []string{"advcl", "acl:relcl", "acl"} {
		for _, arc := range e.Tree.ChildrenWithLabel(id, label) {
			out = append(out, e.classify(arc.Dependent)...)
		}
	}
	return out
}

// newAct builds an Act node for the verb at id, setting passive/negation
// flags, agent/affected participants, and modality from auxiliary
// modals.
func (e *Extractor) newAct(id int, pattern graph.Pattern) *graph.Act {
	t := e.Tree
	a := graph.NewAct(e.actID(id), t.Word(id))
	a.Lemma = lexicon.Lemmatize(t.Word(id), t.Tag(id))
	a.Tag = t.Tag(id)
	a.Pattern = pattern
	a.IsPassive = e.isPassive(id)
	a.IsNegated = e.isNegated(id)
	a.ActualityStatus = graph.Actual

	if subjArc, ok := t.ChildWithLabel(id, "nsubj:pass"); ok {
		if ref, ok := e.Resolve(subjArc.Dependent); ok {
			a.Affects = ptr(graph.RefTo(ref))
		}
	} else if subjArc, ok := t.ChildWithLabel(id, "nsubj"); ok {
		if ref, ok := e.Resolve(subjArc.Dependent); ok {
			a.HasAgent = ptr(graph.RefTo(ref))
		}
	}
	if objArc, ok := t.ChildWithLabel(id, "obj"); ok {
		if ref, ok := e.Resolve(objArc.Dependent); ok {
			a.Affects = ptr(graph.RefTo(ref))
		}
	}
	for _, label := range []string{"iobj", "obl"} {
		for _, arc := range t.ChildrenWithLabel(id, label) {
			if ref, ok := e.Resolve(arc.Dependent); ok {
				a.HasParticipant = append(a.HasParticipant, graph.RefTo(ref))
			}
		}
	}

	a.Modality = e.modality(id)
	return a
}

// modality inspects aux children for deontic/epistemic modals (§4.5,
// §4.10).
func (e *Extractor) modality(id int) graph.Modality {
	t := e.Tree
	for _, arc := range t.ChildrenWithLabel(id, "aux") {
		w := strings.ToLower(t.Word(arc.Dependent))
		if lexicon.DeonticModals[w] {
			return graph.ModalityObligation
		}
		if lexicon.EpistemicModals[w] {
			return graph.ModalityPossibility
		}
	}
	return ""
}

// isPassive reports the §4.5 passive test: nsubj:pass or aux:pass child.
func (e *Extractor) isPassive(id int) bool {
	if _, ok := e.Tree.ChildWithLabel(id, "nsubj:pass"); ok {
		return true
	}
	_, ok := e.Tree.ChildWithLabel(id, "aux:pass")
	return ok
}

// isNegated reports the §4.5 negation test: a neg label, or an advmod
// child whose word is a known negation trigger.
func (e *Extractor) isNegated(id int) bool {
	if _, ok := e.Tree.ChildWithLabel(id, "neg"); ok {
		return true
	}
	for _, arc := range e.Tree.ChildrenWithLabel(id, "advmod") {
		if lexicon.NegationWords[strings.ToLower(e.Tree.Word(arc.Dependent))] {
			return true
		}
	}
	return false
}

// caseChildLocative reports whether id has a case child whose preposition
// is in the locative set (§4.5 pattern 1) and, if so, returns id itself:
// the predicate token is the locative object.
func (e *Extractor) caseChildLocative(id int) (int, bool) {
	for _, arc := range e.Tree.ChildrenWithLabel(id, "case") {
		if lexicon.LocativePrepositions[strings.ToLower(e.Tree.Word(arc.Dependent))] {
			return id, true
		}
	}
	return 0, false
}

// casePreposition returns the lower-cased word of id's case child, or ""
// if it has none.
func (e *Extractor) casePreposition(id int) string {
	if arc, ok := e.Tree.ChildWithLabel(id, "case"); ok {
		return strings.ToLower(e.Tree.Word(arc.Dependent))
	}
	return ""
}

// hasCasePreposition reports whether id's obl child carries a case child
// with the given preposition (the agentive-by test, §4.5 pattern 4).
func (e *Extractor) hasCasePreposition(id int, prep string) bool {
	for _, arc := range e.Tree.ChildrenWithLabel(id, "obl") {
		if e.casePreposition(arc.Dependent) == prep {
			return true
		}
	}
	return false
}

func (e *Extractor) actID(id int) string {
	e.idSeq++
	hash := graph.ContentHash(8, "act", e.Tree.SubtreeText(id), strconv.Itoa(id))
	return graph.InstanceID("Act", lexicon.Lemmatize(e.Tree.Word(id), e.Tree.Tag(id)), hash)
}

func (e *Extractor) saID(id int) string {
	e.idSeq++
	hash := graph.ContentHash(8, "sa", e.Tree.SubtreeText(id), strconv.Itoa(id))
	return graph.InstanceID("StructuralAssertion", lexicon.Lemmatize(e.Tree.Word(id), e.Tree.Tag(id)), hash)
}

func ptr(r graph.Ref) *graph.Ref { return &r }
