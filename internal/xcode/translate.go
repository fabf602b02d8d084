// Package xcode turns a canonical VS Code theme into an Xcode
// .xccolortheme document. Translation is total: missing or malformed source
// data falls back to the defaults in the mapping tables, never to an error.
package xcode

import (
	"xctheme/internal/color"
	"xctheme/internal/mapping"
	"xctheme/internal/vscode"
)

// Translate converts a canonical theme into the text of an .xccolortheme
// document using the default mapping tables.
func Translate(t *vscode.Theme) string {
	return TranslateWith(t, mapping.Default())
}

// TranslateWith converts a canonical theme using the given tables.
func TranslateWith(t *vscode.Theme, tables *mapping.Tables) string {
	base, syntax := Resolve(t, tables)
	return renderPlist(base, syntax, t.Name, tables)
}

// Resolve computes the two color maps of the output document: the editor
// colors keyed by plist key, and the syntax colors keyed by xcode.syntax.*
// key. Values are float-quad component strings.
func Resolve(t *vscode.Theme, tables *mapping.Tables) (base, syntax map[string]string) {
	base = baseColors(t, tables)

	r := newResolver(tables)
	// Plain text is filled alongside the base colors but serialized with the
	// syntax entries, so it seeds the resolver.
	r.colors[mapping.PlainKey] = base[mapping.PlainKey]
	for _, rule := range t.TokenColors {
		r.apply(rule)
	}

	syntax = r.colors
	for _, key := range tables.Required {
		if _, ok := syntax[key]; !ok {
			syntax[key] = base[mapping.PlainKey]
		}
	}
	return base, syntax
}

// baseColors builds the editor-level color table: every entry starts at its
// literal default and is overwritten when the theme defines the matching
// VS Code color key. Malformed hex values keep the default.
func baseColors(t *vscode.Theme, tables *mapping.Tables) map[string]string {
	base := make(map[string]string, len(tables.Base))
	for _, b := range tables.Base {
		base[b.Key] = b.Default
		if hex, ok := t.Colors[b.Source]; ok {
			base[b.Key] = color.Components(hex, b.Default)
		}
	}
	return base
}

// resolver accumulates syntax colors from token rules under the scope
// priority policy.
type resolver struct {
	tables *mapping.Tables
	colors map[string]string
	// seen records the component string each scope produced, for the
	// retroactive priority lookup in previousPriority.
	seen map[string]string
}

func newResolver(tables *mapping.Tables) *resolver {
	return &resolver{
		tables: tables,
		colors: make(map[string]string),
		seen:   make(map[string]string),
	}
}

// apply processes one token rule: each of its scopes that maps to an output
// key proposes the rule's foreground for that key.
func (r *resolver) apply(rule vscode.TokenRule) {
	if rule.Settings.Foreground == "" {
		return
	}
	for _, scope := range rule.Scopes {
		key, ok := r.tables.Resolve(scope)
		if !ok {
			continue
		}
		comps := color.Components(rule.Settings.Foreground, "")
		r.assign(scope, key, comps)
	}
}

// assign stores comps under key unless a more specific scope already owns the
// entry. Listed scopes overwrite strictly less specific ones; unlisted scopes
// only overwrite entries that were themselves set by unlisted scopes. On
// equal priority the earlier rule wins. A scope is recorded in seen only when
// its value is actually stored, so previousPriority can recover it later.
func (r *resolver) assign(scope, key, comps string) {
	cur, ok := r.colors[key]
	if !ok {
		r.store(scope, key, comps)
		return
	}

	newPri := r.tables.ScopePriority(scope)
	prevPri := r.previousPriority(key, cur)

	if newPri == mapping.UnlistedPriority {
		if prevPri == mapping.UnlistedPriority {
			r.store(scope, key, comps)
		}
		return
	}
	if newPri < prevPri {
		r.store(scope, key, comps)
	}
}

func (r *resolver) store(scope, key, comps string) {
	r.colors[key] = comps
	r.seen[scope] = comps
}

// previousPriority re-derives the priority of whichever scope produced the
// value currently stored under key: it walks the priority list most-specific
// first and returns the index of the first scope that maps to the same key
// and whose recorded color equals the stored value. Distinct scopes sharing
// an identical foreground are therefore conflated; scanning most-specific
// first keeps the result deterministic and makes such entries the hardest to
// displace. Values with no matching scope (seeded plain text, scopes added
// by overrides) rank as unlisted.
func (r *resolver) previousPriority(key, current string) int {
	for i, scope := range r.tables.Priority {
		if r.tables.Scopes[scope] != key {
			continue
		}
		if comps, ok := r.seen[scope]; ok && comps == current {
			return i
		}
	}
	return mapping.UnlistedPriority
}
