// Package remover strips insist assertions from generated JavaScript.
//
// Calls are located on a tree-sitter syntax tree rather than by text search,
// so nested parentheses, strings and comments inside the arguments need no
// special handling. A call whose result is used (assigned, returned, passed
// on) shifts arguments for its caller and is always kept.
package remover

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/aretw0/insist/internal/logging"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// DefaultAliases are the call names removed when no alias is configured.
var DefaultAliases = map[string]string{
	"args":   "insist.args",
	"ofType": "insist.ofType",
}

// Reference is one call to an alias found in the source.
type Reference struct {
	Alias string
	// Start and End delimit the bytes Remove would delete (End is exclusive).
	// For shifting calls they delimit the call expression.
	Start int
	End   int
	// Shifting is set when the call's result is consumed.
	Shifting bool
	// Replacement is written in place of the removed bytes. It is ";" when
	// the statement is the body of an if, loop or label, so the statement
	// that follows keeps its meaning.
	Replacement string
}

// Remover deletes assertion statements from JavaScript sources.
type Remover struct {
	aliases map[string]string
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Remover.
type Option func(*Remover)

// WithAliases overrides the call text per alias name. Names missing from
// aliases keep their default; unknown names are added.
func WithAliases(aliases map[string]string) Option {
	return func(r *Remover) {
		for name, pattern := range aliases {
			if strings.TrimSpace(pattern) != "" {
				r.aliases[name] = normalize(pattern)
			}
		}
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Remover) {
		r.logger = logger
	}
}

// New creates a Remover for the default aliases plus any overrides.
func New(opts ...Option) *Remover {
	r := &Remover{
		aliases: make(map[string]string, len(DefaultAliases)),
		logger:  logging.NewNop(),
	}
	for name, pattern := range DefaultAliases {
		r.aliases[name] = pattern
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Aliases returns a copy of the configured aliases.
func (r *Remover) Aliases() map[string]string {
	out := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		out[k] = v
	}
	return out
}

// Find returns every call to a configured alias, in source order.
func (r *Remover) Find(ctx context.Context, source []byte) ([]Reference, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	defer tree.Close()

	patterns := make(map[string]string, len(r.aliases))
	for name, pattern := range r.aliases {
		patterns[pattern] = name
	}

	var refs []Reference
	r.walk(tree.RootNode(), source, patterns, &refs)
	sort.Slice(refs, func(i, j int) bool { return refs[i].Start < refs[j].Start })
	return refs, nil
}

// Remove deletes every non-shifting alias call statement from source.
func (r *Remover) Remove(ctx context.Context, source []byte) ([]byte, error) {
	refs, err := r.Find(ctx, source)
	if err != nil {
		return nil, err
	}
	return r.RemoveRefs(source, refs), nil
}

// RemoveRefs applies references returned by Find for the same source.
// source is not modified.
func (r *Remover) RemoveRefs(source []byte, refs []Reference) []byte {
	out := append([]byte(nil), source...)
	removed := 0
	// Back to front so earlier offsets stay valid.
	for i := len(refs) - 1; i >= 0; i-- {
		ref := refs[i]
		if ref.Shifting {
			continue
		}
		tail := append([]byte(ref.Replacement), out[ref.End:]...)
		out = append(out[:ref.Start], tail...)
		removed++
	}
	r.logger.Debug("assertions removed", "found", len(refs), "removed", removed)
	return out
}

// RemoveString is Remove for string sources.
func (r *Remover) RemoveString(ctx context.Context, source string) (string, error) {
	out, err := r.Remove(ctx, []byte(source))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (r *Remover) walk(node *sitter.Node, source []byte, patterns map[string]string, refs *[]Reference) {
	if node == nil {
		return
	}
	if node.Type() == "call_expression" {
		if callee := node.ChildByFieldName("function"); callee != nil {
			if name, ok := patterns[normalize(callee.Content(source))]; ok {
				*refs = append(*refs, reference(node, source, name))
				// Arguments of a matched call are not searched.
				return
			}
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		r.walk(node.NamedChild(i), source, patterns, refs)
	}
}

func reference(call *sitter.Node, source []byte, alias string) Reference {
	stmt := call.Parent()
	if stmt == nil || stmt.Type() != "expression_statement" {
		return Reference{
			Alias:    alias,
			Start:    int(call.StartByte()),
			End:      int(call.EndByte()),
			Shifting: true,
		}
	}
	if !inStatementList(stmt) {
		return Reference{
			Alias:       alias,
			Start:       int(stmt.StartByte()),
			End:         int(stmt.EndByte()),
			Replacement: ";",
		}
	}
	return Reference{
		Alias: alias,
		Start: statementStart(source, int(stmt.StartByte())),
		End:   int(stmt.EndByte()),
	}
}

// inStatementList reports whether stmt sits in a list of statements, where
// deleting it leaves its neighbours alone.
func inStatementList(stmt *sitter.Node) bool {
	parent := stmt.Parent()
	if parent == nil {
		return true
	}
	switch parent.Type() {
	case "program", "statement_block", "switch_case", "switch_default", "class_static_block":
		return true
	default:
		return false
	}
}

// statementStart widens start over the indentation before it, together with
// the preceding newline, when the statement begins its own line.
func statementStart(source []byte, start int) int {
	i := start - 1
	for i >= 0 && (source[i] == ' ' || source[i] == '\t') {
		i--
	}
	if i >= 0 && source[i] == '\n' {
		return i
	}
	return start
}

func normalize(pattern string) string {
	return strings.Join(strings.Fields(pattern), "")
}
