// Package jsonld implements the JSONLDSerializer (§4.15): it turns a
// graph.Document into a {"@context", "@graph"} JSON-LD document using the
// fixed context in vocabulary/context, and parses that shape back into
// plain maps for downstream consumers that don't need typed nodes.
package jsonld

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/c360studio/tagteam/graph"
	"github.com/c360studio/tagteam/vocabulary/context"
)

// Options configures serialization (§6 compact/pretty config options).
type Options struct {
	// Compact, when true (the default), embeds the fixed @context; false
	// leaves @context out entirely, for callers who apply their own. Node
	// types are emitted as compact IRIs either way; the context's short
	// class aliases are not substituted.
	Compact bool
	// Pretty indents the JSON output for readability.
	Pretty bool
}

// DefaultOptions returns compact, non-pretty output (§6 defaults).
func DefaultOptions() Options {
	return Options{Compact: true, Pretty: false}
}

// Serialize renders doc as a JSON-LD document: {"@context": ..., "@graph":
// [...]}. Each node becomes one @graph entry with "@id", "@type", and its
// Properties(), in the node's document order (§5 ordering guarantee, §8
// P1 determinism).
func Serialize(doc *graph.Document, opts Options) ([]byte, error) {
	out := toJSONLDDocument(doc, opts)
	if opts.Pretty {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}

type jsonldDocument struct {
	Context map[string]any   `json:"@context,omitempty"`
	Graph   []map[string]any `json:"@graph"`
}

func toJSONLDDocument(doc *graph.Document, opts Options) jsonldDocument {
	out := jsonldDocument{Graph: make([]map[string]any, 0, len(doc.Nodes))}
	if opts.Compact {
		out.Context = context.Build()
	}
	for _, n := range doc.Nodes {
		out.Graph = append(out.Graph, nodeToEntry(n))
	}
	return out
}

func nodeToEntry(n graph.Node) map[string]any {
	entry := make(map[string]any, len(n.Properties())+3)
	entry["@id"] = n.NodeID()
	entry["@type"] = n.NodeTypes()
	if label := n.NodeLabel(); label != "" {
		entry["rdfs:label"] = label
	}
	for pred, val := range n.Properties() {
		entry[pred] = encodeValue(pred, val)
	}
	return entry
}

// encodeValue converts a Properties() value into its JSON-LD
// representation. Ref/[]Ref become bare id strings under the fixed
// context's "@type": "@id" coercion (§4.15); time.Time becomes an RFC3339
// string; everything else passes through unchanged.
func encodeValue(pred string, val any) any {
	switch v := val.(type) {
	case graph.Ref:
		return v.ID
	case []graph.Ref:
		ids := make([]string, len(v))
		for i, r := range v {
			ids[i] = r.ID
		}
		return ids
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return v
	}
}

// ParsedDocument is the inverse of Serialize: the raw @context and @graph
// as generic maps, for callers that validate or transform JSON-LD without
// needing typed graph.Node values back.
type ParsedDocument struct {
	Context map[string]any   `json:"@context"`
	Graph   []map[string]any `json:"@graph"`
}

// Parse decodes a JSON-LD document previously produced by Serialize (or
// any document following the same fixed shape).
func Parse(data []byte) (*ParsedDocument, error) {
	var pd ParsedDocument
	if err := json.Unmarshal(data, &pd); err != nil {
		return nil, fmt.Errorf("jsonld: parse: %w", err)
	}
	return &pd, nil
}

// EntryID returns the "@id" of a parsed @graph entry, or "" if absent or
// not a string.
func EntryID(entry map[string]any) string {
	id, _ := entry["@id"].(string)
	return id
}

// EntryTypes returns the "@type" list of a parsed @graph entry.
func EntryTypes(entry map[string]any) []string {
	switch v := entry["@type"].(type) {
	case []string:
		return v
	case []any:
		types := make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				types = append(types, s)
			}
		}
		return types
	case string:
		return []string{v}
	default:
		return nil
	}
}

// IsIDValued reports whether pred is one of the context's @id-coerced
// predicates, for callers reconstructing Ref values from parsed entries.
func IsIDValued(pred string) bool { return context.IsIDValued(pred) }
