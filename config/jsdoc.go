// Package config holds the simple value containers consumed alongside
// the checker: JSDoc lint-plugin settings and regular-expression
// parser options. Nothing here has behaviour beyond resolution of the
// values it carries.
package config

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cottand/tycache/util"
)

// JSDocSettings mirrors the settings surface of eslint-plugin-jsdoc
// (https://github.com/gajus/eslint-plugin-jsdoc/blob/main/docs/settings.md),
// the subset the lint rules actually consult.
type JSDocSettings struct {
	// IgnorePrivate applies to all rules but `check-access` and `empty-tags`.
	IgnorePrivate bool `yaml:"ignorePrivate"`
	// IgnoreInternal applies to all rules but `empty-tags`.
	IgnoreInternal bool `yaml:"ignoreInternal"`

	// The four *ReplacesDocs flags apply only to the
	// require-(yields|returns|description|example|param|throws) rules.
	IgnoreReplacesDocs          bool `yaml:"ignoreReplacesDocs"`
	OverrideReplacesDocs        bool `yaml:"overrideReplacesDocs"`
	AugmentsExtendsReplacesDocs bool `yaml:"augmentsExtendsReplacesDocs"`
	ImplementsReplacesDocs      bool `yaml:"implementsReplacesDocs"`

	// Only for `require-param-type` and `require-param-description`.
	ExemptDestructuredRootsFromChecks bool `yaml:"exemptDestructuredRootsFromChecks"`

	TagNamePreference map[string]TagNamePreference `yaml:"tagNamePreference"`
}

func DefaultJSDocSettings() JSDocSettings {
	return JSDocSettings{
		IgnoreReplacesDocs:   true,
		OverrideReplacesDocs: true,
	}
}

// ParseJSDocSettings decodes settings from yaml on top of the
// defaults, so absent keys keep their default values.
func ParseJSDocSettings(data []byte) (JSDocSettings, error) {
	settings := DefaultJSDocSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return JSDocSettings{}, errors.Wrap(err, "parsing jsdoc settings")
	}
	return settings, nil
}

// CheckBlockedTagName reports the reason a tag is blocked, if it is.
// Only for the `check-tag-names` rule.
func (s JSDocSettings) CheckBlockedTagName(tagName string) (string, bool) {
	switch pref := s.TagNamePreference[tagName]; {
	case pref.blocked:
		return fmt.Sprintf("Unexpected tag `@%s`.", tagName), true
	case pref.Message != "" && pref.Replacement == "":
		return pref.Message, true
	}
	return "", false
}

// defaultTagAliases are the plugin's default preferred aliases, in
// effect when the user has no preference for a tag.
var defaultTagAliases = map[string]string{
	"virtual":      "abstract",
	"extends":      "augments",
	"constructor":  "class",
	"const":        "constant",
	"defaultvalue": "default",
	"desc":         "description",
	"host":         "external",
	"fileoverview": "file",
	"overview":     "file",
	"emits":        "fires",
	"func":         "function",
	"method":       "function",
	"var":          "member",
	"arg":          "param",
	"argument":     "param",
	"prop":         "property",
	"return":       "returns",
	"exception":    "throws",
	"yield":        "yields",
}

// CheckPreferredTagName reports the reason a tag should be replaced,
// either from a user preference or a default alias. Only for the
// `check-tag-names` rule.
func (s JSDocSettings) CheckPreferredTagName(originalName string) (string, bool) {
	reason := func(preferredName string) string {
		return fmt.Sprintf("Replace tag `@%s` with `@%s`.", originalName, preferredName)
	}

	switch pref := s.TagNamePreference[originalName]; {
	case pref.Replacement != "" && pref.Message != "":
		return pref.Message, true
	case pref.Replacement != "":
		return reason(pref.Replacement), true
	}
	if aliased, ok := defaultTagAliases[originalName]; ok {
		return reason(aliased), true
	}
	return "", false
}

// ResolveTagName maps a known tag name to the user preferred name, or
// returns it unchanged when no preference replaces it.
func (s JSDocSettings) ResolveTagName(originalName string) string {
	if pref, ok := s.TagNamePreference[originalName]; ok && pref.Replacement != "" {
		return pref.Replacement
	}
	return originalName
}

// ListUserDefinedTagNames returns every replacement tag name the user
// configured, deduplicated, in sorted order.
func (s JSDocSettings) ListUserDefinedTagNames() []string {
	names := util.NewEmptySet[string]()
	for _, pref := range s.TagNamePreference {
		if pref.Replacement != "" {
			names.Add(pref.Replacement)
		}
	}
	out := names.AsSlice()
	slices.Sort(out)
	return out
}

// TagNamePreference is one entry of tagNamePreference. The yaml value
// takes four shapes: a plain replacement name, `false` (the tag is
// blocked), an object with a message (also blocked), or an object with
// a message and a replacement.
type TagNamePreference struct {
	Message     string
	Replacement string

	// blocked marks the bool form. The upstream plugin only documents
	// `false`, so any bool lands here.
	blocked bool
}

var _ yaml.Unmarshaler = &TagNamePreference{}

func (p *TagNamePreference) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!bool" {
			p.blocked = true
			return nil
		}
		var name string
		if err := value.Decode(&name); err != nil {
			return errors.Wrap(err, "tagNamePreference entry")
		}
		p.Replacement = name
		return nil
	case yaml.MappingNode:
		var obj struct {
			Message     string `yaml:"message"`
			Replacement string `yaml:"replacement"`
		}
		if err := value.Decode(&obj); err != nil {
			return errors.Wrap(err, "tagNamePreference entry")
		}
		p.Message = obj.Message
		p.Replacement = obj.Replacement
		return nil
	default:
		return errors.Errorf("tagNamePreference entry must be a string, bool or object, got yaml kind %d", value.Kind)
	}
}
