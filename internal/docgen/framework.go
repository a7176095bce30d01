package docgen

import "strings"

// FrameworkFamily groups frameworks that share a code-style guideline block.
type FrameworkFamily int

const (
	FamilyNone FrameworkFamily = iota
	FamilyReact
	FamilyVue
	FamilyAngular
	FamilyFlutter
)

func (f FrameworkFamily) String() string {
	switch f {
	case FamilyReact:
		return "react"
	case FamilyVue:
		return "vue"
	case FamilyAngular:
		return "angular"
	case FamilyFlutter:
		return "flutter"
	}
	return "none"
}

// frameworkAliases maps normalized framework ids and names to their family.
// Keys go through normalizeFramework.
var frameworkAliases = map[string]FrameworkFamily{
	"next":         FamilyReact,
	"react":        FamilyReact,
	"react-native": FamilyReact,
	"preact":       FamilyReact,
	"remix":        FamilyReact,
	"gatsby":       FamilyReact,
	"vue":          FamilyVue,
	"vue-3":        FamilyVue,
	"nuxt":         FamilyVue,
	"angular":      FamilyAngular,
	"angularjs":    FamilyAngular,
	"flutter":      FamilyFlutter,
}

// ClassifyFramework resolves free-text framework input to a family. When the
// whole value is not a known alias, the first word that is one decides, so
// "React Router" and "Next.js 14" still resolve. Unknown values resolve to
// FamilyNone.
func ClassifyFramework(framework string) FrameworkFamily {
	key := normalizeFramework(framework)
	if key == "" {
		return FamilyNone
	}
	if fam, ok := frameworkAliases[key]; ok {
		return fam
	}
	for _, word := range strings.FieldsFunc(strings.ToLower(framework), isWordSep) {
		if fam, ok := frameworkAliases[normalizeFramework(word)]; ok {
			return fam
		}
	}
	return FamilyNone
}

func isWordSep(r rune) bool {
	switch r {
	case ' ', '\t', '-', '_', '/', '(', ')', ',', '+':
		return true
	}
	return false
}

// normalizeFramework turns "Next.js", "NextJS" and " next " into "next".
func normalizeFramework(s string) string {
	key := strings.Join(strings.Fields(strings.ToLower(s)), "-")
	if _, ok := frameworkAliases[key]; ok {
		return key
	}
	for _, suffix := range []string{".js", "-js", "js"} {
		if trimmed := strings.TrimSuffix(key, suffix); trimmed != key && trimmed != "" {
			return trimmed
		}
	}
	return key
}

var familyGuidelines = map[FrameworkFamily]string{
	FamilyReact: `## React/Next.js Specific Guidelines
- Use functional components with hooks instead of class components
- Implement proper state management patterns
- Follow the React component lifecycle best practices
- Structure components using the recommended patterns
- Implement proper error boundaries`,
	FamilyVue: `## Vue.js Specific Guidelines
- Follow Vue's Single-File Component pattern
- Implement the recommended component communication patterns
- Use Vue's reactivity system effectively
- Structure Vuex modules properly
- Follow Vue's lifecycle hook best practices`,
	FamilyAngular: `## Angular Specific Guidelines
- Follow Angular's style guide for components, services, and modules
- Implement proper dependency injection patterns
- Structure modules according to feature
- Use Angular's change detection efficiently
- Follow RxJS best practices for handling asynchronous operations`,
	FamilyFlutter: `## Flutter Specific Guidelines
- Follow Flutter's widget composition patterns
- Implement proper state management with providers or Riverpod
- Structure the widget tree for maximum reusability
- Follow performance best practices
- Implement proper navigation patterns`,
}

// Guidelines returns the family's guideline block, or "" for FamilyNone.
func (f FrameworkFamily) Guidelines() string {
	return familyGuidelines[f]
}
