package vscode

// ValidationError reports a source document that cannot be interpreted as a
// color theme. It is returned only for the two structural failure modes:
// input that is not a JSON object, and input without a "colors" field.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid theme: " + e.Reason
}

// Parse validates a decoded JSON value and normalizes it into a canonical
// Theme. It fails with a *ValidationError when the value is nil or not an
// object, or when the object has no "colors" field. Everything else is
// normalized: missing name and type get defaults, tokenColors becomes an
// empty slice when absent, and scope fields become string lists.
//
// Color values are not validated here; malformed hex strings pass through
// untouched and the translator falls back per key.
func Parse(decoded any) (*Theme, error) {
	obj, ok := decoded.(map[string]any)
	if !ok || obj == nil {
		return nil, &ValidationError{Reason: "theme must be a JSON object"}
	}

	if _, ok := obj["colors"]; !ok {
		return nil, &ValidationError{Reason: `theme has no "colors" field`}
	}

	t := &Theme{
		Name:                DefaultName,
		Kind:                DefaultKind,
		Colors:              parseColors(obj["colors"]),
		TokenColors:         parseTokenRules(obj["tokenColors"]),
		SemanticTokenColors: map[string]any{},
	}

	if name, ok := obj["name"].(string); ok && name != "" {
		t.Name = name
	}
	if kind, ok := obj["type"].(string); ok && kind != "" {
		t.Kind = kind
	}
	if enabled, ok := obj["semanticHighlighting"].(bool); ok {
		t.SemanticHighlightingEnabled = enabled
	}
	if semantic, ok := obj["semanticTokenColors"].(map[string]any); ok {
		t.SemanticTokenColors = semantic
	}

	return t, nil
}

// parseColors extracts the string-valued entries of the colors object.
// A colors field of the wrong type normalizes to an empty map.
func parseColors(v any) map[string]string {
	colors := make(map[string]string)
	obj, ok := v.(map[string]any)
	if !ok {
		return colors
	}
	for key, val := range obj {
		if s, ok := val.(string); ok {
			colors[key] = s
		}
	}
	return colors
}

// parseTokenRules normalizes the tokenColors array, preserving document order.
func parseTokenRules(v any) []TokenRule {
	entries, ok := v.([]any)
	if !ok {
		return []TokenRule{}
	}

	rules := make([]TokenRule, 0, len(entries))
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		rules = append(rules, TokenRule{
			Scopes:   parseScopes(obj["scope"]),
			Settings: parseSettings(obj["settings"]),
		})
	}
	return rules
}

// parseScopes normalizes a scope field to an ordered list of scope strings.
// A bare string wraps to a singleton; anything else that is not a string list
// becomes an empty list.
func parseScopes(v any) []string {
	switch scope := v.(type) {
	case string:
		return []string{scope}
	case []any:
		scopes := make([]string, 0, len(scope))
		for _, s := range scope {
			if str, ok := s.(string); ok {
				scopes = append(scopes, str)
			}
		}
		return scopes
	default:
		return []string{}
	}
}

func parseSettings(v any) Settings {
	obj, ok := v.(map[string]any)
	if !ok {
		return Settings{}
	}
	var s Settings
	if fg, ok := obj["foreground"].(string); ok {
		s.Foreground = fg
	}
	if fs, ok := obj["fontStyle"].(string); ok {
		s.FontStyle = fs
	}
	return s
}
