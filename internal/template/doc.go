// Package template provides the document template registry and renderer.
//
// Templates are LaTeX bodies with optional YAML frontmatter and three
// insertion points: {{title}}, {{author}} and {{date}}. They are resolved in
// order:
//  1. <config dir>/templates/<name>.tex (user)
//  2. Built-in templates (embedded in binary)
//
// Rendering an unknown name falls back to the "default" template.
package template
