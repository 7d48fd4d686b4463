package scopes

import (
	"maps"
	"slices"
	"strings"
)

// ScopeCategories combines admin and recruiting categories
var ScopeCategories map[string][]string

// ScopeDescriptions combines admin and recruiting descriptions
var ScopeDescriptions map[string]string

// ScopeGroups combines admin and recruiting role templates
var ScopeGroups map[string][]string

func init() {
	ScopeCategories = make(map[string][]string)
	maps.Copy(ScopeCategories, CommonScopeCategories)
	maps.Copy(ScopeCategories, DomainScopeCategories)

	ScopeDescriptions = make(map[string]string)
	maps.Copy(ScopeDescriptions, CommonScopeDescriptions)
	maps.Copy(ScopeDescriptions, DomainScopeDescriptions)

	ScopeGroups = make(map[string][]string)
	maps.Copy(ScopeGroups, CommonScopeGroups)
	maps.Copy(ScopeGroups, DomainScopeGroups)
}

// GroupKey turns a role name ("Hiring Manager") into a template key ("hiring_manager")
func GroupKey(role string) string {
	key := strings.ToLower(strings.TrimSpace(role))
	return strings.Join(strings.Fields(strings.ReplaceAll(key, "-", " ")), "_")
}

// GetScopesByGroup returns the scopes of a role template
func GetScopesByGroup(group string) []string {
	if scopes, exists := ScopeGroups[GroupKey(group)]; exists {
		return slices.Clone(scopes)
	}
	return []string{}
}

// TemplateFor returns the scopes a new role receives; unknown roles fall back to viewer
func TemplateFor(role string) []string {
	if scopes := GetScopesByGroup(role); len(scopes) > 0 {
		return scopes
	}
	return GetScopesByGroup("viewer")
}

// GroupNames lists the template keys in stable order
func GroupNames() []string {
	return slices.Sorted(maps.Keys(ScopeGroups))
}

func GetScopeDescription(scope string) string {
	if desc, exists := ScopeDescriptions[scope]; exists {
		return desc
	}
	return "No description available"
}

// GetAllScopes returns all defined scopes, sorted
func GetAllScopes() []string {
	var all []string
	for _, scopes := range ScopeCategories {
		all = append(all, scopes...)
	}
	slices.Sort(all)
	return slices.Compact(all)
}

// ValidateScope checks if a scope is defined
func ValidateScope(scope string) bool {
	if scope == ScopeAll {
		return true
	}
	for _, scopes := range ScopeCategories {
		if slices.Contains(scopes, scope) {
			return true
		}
	}
	return false
}

// InvalidScopes returns the scopes that are not defined
func InvalidScopes(scopes []string) []string {
	var bad []string
	for _, s := range scopes {
		if !ValidateScope(s) {
			bad = append(bad, s)
		}
	}
	return bad
}

func GetScopeCategory(scope string) string {
	for category, scopes := range ScopeCategories {
		if slices.Contains(scopes, scope) {
			return category
		}
	}
	return "Unknown"
}

// ExpandWildcardScope expands a wildcard scope to all matching scopes
// e.g., "jobs:*" -> ["jobs:delete", "jobs:extract", "jobs:read", ...]
func ExpandWildcardScope(wildcardScope string) []string {
	if wildcardScope == ScopeAll {
		return GetAllScopes()
	}

	prefix, ok := strings.CutSuffix(wildcardScope, ":*")
	if !ok {
		return []string{wildcardScope}
	}

	var expanded []string
	for _, scope := range GetAllScopes() {
		if scope != wildcardScope && strings.HasPrefix(scope, prefix+":") {
			expanded = append(expanded, scope)
		}
	}
	return expanded
}
