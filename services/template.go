package services

import (
	"strconv"
	"strings"
)

// TemplateModel is what a template renders against. ViewModel is the
// production implementation; tests may use any stand-in.
type TemplateModel interface {
	// Field resolves a scalar placeholder to its display string.
	Field(name string) (string, bool)
	// Numeric resolves a field for comparison conditions.
	Numeric(name string) (float64, bool)
	// Items resolves a collection for {{#each}} expansion.
	Items(name string) ([]map[string]string, bool)
}

// The template language is deliberately tiny: {{field}} placeholders,
// non-nested {{#each list}}...{{/each}} loops and
// {{#if cond}}...{{#else}}...{{/if}} conditionals. Templates are parsed
// into a typed node sequence first and rendered in a separate pass, so
// loop bodies and branches are expanded before their scalars are resolved
// and replacement output is never re-scanned.
//
// Rendering never fails: unknown placeholders stay verbatim in the output
// (missing data should be visible, not silently blanked), unknown
// collections expand to nothing, and malformed or unrecognized condition
// syntax evaluates to false.

type templateNode interface{ renderNode(b *strings.Builder, ctx renderContext) }

// textNode is a run of literal template text.
type textNode string

// placeholderNode is a {{name}} scalar. raw keeps the original marker text
// so unresolved placeholders can be emitted verbatim.
type placeholderNode struct {
	name string
	raw  string
}

// eachNode is a {{#each collection}} block.
type eachNode struct {
	collection string
	body       []templateNode
}

// ifNode is a {{#if cond}} block with an optional else branch.
type ifNode struct {
	cond     condition
	thenBody []templateNode
	elseBody []templateNode
}

type condOp int

const (
	condInvalid condOp = iota
	condTruthy
	condGreater
	condLess
)

type condition struct {
	op      condOp
	field   string
	operand float64
}

// renderContext carries the model plus, inside a loop body, the current
// element's fields and 1-based position.
type renderContext struct {
	model  TemplateModel
	item   map[string]string
	index1 int
}

// RenderTemplate renders a template against a model. It is a pure function
// of its inputs and never fails; see the language notes above for how
// malformed input degrades.
func RenderTemplate(tmpl string, model TemplateModel) string {
	nodes := parseTemplate(tmpl)
	var b strings.Builder
	b.Grow(len(tmpl))
	for _, n := range nodes {
		n.renderNode(&b, renderContext{model: model})
	}
	return b.String()
}

// HasUnresolvedMarkers reports whether rendered output still contains
// template markers. Callers use it to decide whether a document is complete
// enough to hand to the typesetter.
func HasUnresolvedMarkers(rendered string) bool {
	return strings.Contains(rendered, "{{")
}

// ── Parsing ─────────────────────────────────────────────────────────────

const (
	tagOpen  = "{{"
	tagClose = "}}"
)

type parser struct {
	src string
	pos int
}

func parseTemplate(src string) []templateNode {
	p := &parser{src: src}
	nodes, _ := p.parseNodes(nil, false)
	return nodes
}

// parseNodes parses until EOF or until one of the stop tags is seen at the
// current nesting level. The stop tag (e.g. "/each", "#else", "/if") is
// returned so block parsers can tell which terminator they got.
func (p *parser) parseNodes(stopTags []string, inEach bool) ([]templateNode, string) {
	var nodes []templateNode

	for p.pos < len(p.src) {
		open := strings.Index(p.src[p.pos:], tagOpen)
		if open < 0 {
			nodes = append(nodes, textNode(p.src[p.pos:]))
			p.pos = len(p.src)
			break
		}
		if open > 0 {
			nodes = append(nodes, textNode(p.src[p.pos:p.pos+open]))
			p.pos += open
		}

		inner, raw, ok := p.peekTag()
		if !ok {
			// "{{" with no closing "}}": literal text to the end.
			nodes = append(nodes, textNode(p.src[p.pos:]))
			p.pos = len(p.src)
			break
		}

		// LaTeX text like \textbf{{{office_header}}} puts literal braces
		// right before a tag. If the scanned tag body still contains "{",
		// the real tag starts further right: shift one brace out as text.
		if strings.Contains(inner, "{") {
			nodes = append(nodes, textNode("{"))
			p.pos++
			continue
		}

		for _, stop := range stopTags {
			if inner == stop {
				p.pos += len(raw)
				return nodes, inner
			}
		}

		switch {
		case strings.HasPrefix(inner, "#each "):
			if inEach {
				// Nested loops are unsupported; the tag stays visible.
				p.pos += len(raw)
				nodes = append(nodes, textNode(raw))
				continue
			}
			p.pos += len(raw)
			nodes = append(nodes, p.parseEach(inner, raw))
		case strings.HasPrefix(inner, "#if ") || inner == "#if":
			p.pos += len(raw)
			nodes = append(nodes, p.parseIf(inner, raw, inEach))
		case inner == "/each" || inner == "/if" || inner == "#else":
			// Stray terminator with no matching block: leave it verbatim.
			p.pos += len(raw)
			nodes = append(nodes, textNode(raw))
		default:
			p.pos += len(raw)
			nodes = append(nodes, placeholderNode{name: inner, raw: raw})
		}
	}

	return nodes, ""
}

// peekTag reads the tag at p.pos (which must point at "{{") without
// consuming it. Returns the trimmed inner text and the raw marker.
func (p *parser) peekTag() (inner, raw string, ok bool) {
	rest := p.src[p.pos+len(tagOpen):]
	end := strings.Index(rest, tagClose)
	if end < 0 {
		return "", "", false
	}
	raw = p.src[p.pos : p.pos+len(tagOpen)+end+len(tagClose)]
	inner = strings.TrimSpace(rest[:end])
	return inner, raw, true
}

func (p *parser) parseEach(inner, raw string) templateNode {
	name := strings.TrimSpace(strings.TrimPrefix(inner, "#each"))
	body, terminator := p.parseNodes([]string{"/each"}, true)
	if terminator != "/each" {
		// Unterminated loop: emit the opening tag and its body as-is.
		return textNode(raw + flattenNodes(body))
	}
	return &eachNode{collection: name, body: body}
}

func (p *parser) parseIf(inner, raw string, inEach bool) templateNode {
	cond := parseCondition(strings.TrimSpace(strings.TrimPrefix(inner, "#if")))

	thenBody, terminator := p.parseNodes([]string{"#else", "/if"}, inEach)
	var elseBody []templateNode
	if terminator == "#else" {
		elseBody, terminator = p.parseNodes([]string{"/if"}, inEach)
	}
	if terminator != "/if" {
		return textNode(raw + flattenNodes(thenBody) + flattenNodes(elseBody))
	}
	return &ifNode{cond: cond, thenBody: thenBody, elseBody: elseBody}
}

// flattenNodes re-emits parsed nodes as literal text, used when a block
// turns out to be unterminated.
func flattenNodes(nodes []templateNode) string {
	var b strings.Builder
	for _, n := range nodes {
		switch v := n.(type) {
		case textNode:
			b.WriteString(string(v))
		case placeholderNode:
			b.WriteString(v.raw)
		default:
			n.renderNode(&b, renderContext{model: emptyModel{}})
		}
	}
	return b.String()
}

// parseCondition recognizes a bare field name or "field > n" / "field < n".
// Anything else is invalid and evaluates to false.
func parseCondition(expr string) condition {
	if expr == "" {
		return condition{op: condInvalid}
	}

	for _, probe := range []struct {
		sym string
		op  condOp
	}{{">", condGreater}, {"<", condLess}} {
		if field, operandText, found := strings.Cut(expr, probe.sym); found {
			field = strings.TrimSpace(field)
			operand, err := strconv.ParseFloat(strings.TrimSpace(operandText), 64)
			if field == "" || err != nil {
				return condition{op: condInvalid}
			}
			return condition{op: probe.op, field: field, operand: operand}
		}
	}

	if strings.ContainsAny(expr, " \t=!") {
		return condition{op: condInvalid}
	}
	return condition{op: condTruthy, field: expr}
}

// ── Rendering ───────────────────────────────────────────────────────────

func (t textNode) renderNode(b *strings.Builder, _ renderContext) {
	b.WriteString(string(t))
}

func (ph placeholderNode) renderNode(b *strings.Builder, ctx renderContext) {
	if ctx.item != nil {
		if ph.name == "@index1" {
			b.WriteString(strconv.Itoa(ctx.index1))
			return
		}
		if v, ok := ctx.item[ph.name]; ok {
			b.WriteString(v)
			return
		}
	}
	if v, ok := ctx.model.Field(ph.name); ok {
		b.WriteString(v)
		return
	}
	// Unknown placeholder: keep the marker visible in the output.
	b.WriteString(ph.raw)
}

func (e *eachNode) renderNode(b *strings.Builder, ctx renderContext) {
	items, ok := ctx.model.Items(e.collection)
	if !ok {
		return
	}
	for i, item := range items {
		itemCtx := renderContext{model: ctx.model, item: item, index1: i + 1}
		for _, n := range e.body {
			n.renderNode(b, itemCtx)
		}
	}
}

func (f *ifNode) renderNode(b *strings.Builder, ctx renderContext) {
	body := f.elseBody
	if evalCondition(f.cond, ctx) {
		body = f.thenBody
	}
	for _, n := range body {
		n.renderNode(b, ctx)
	}
}

func evalCondition(c condition, ctx renderContext) bool {
	switch c.op {
	case condTruthy:
		if ctx.item != nil {
			if c.field == "@first" {
				return ctx.index1 == 1
			}
			if v, ok := ctx.item[c.field]; ok {
				return v != "" && v != "0"
			}
		}
		if v, ok := ctx.model.Numeric(c.field); ok {
			return v != 0
		}
		if v, ok := ctx.model.Field(c.field); ok {
			return v != "" && v != "0"
		}
		if items, ok := ctx.model.Items(c.field); ok {
			return len(items) > 0
		}
		return false
	case condGreater, condLess:
		v, ok := ctx.model.Numeric(c.field)
		if !ok && ctx.item != nil {
			if raw, present := ctx.item[c.field]; present {
				if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
					v, ok = parsed, true
				}
			}
		}
		if !ok {
			return false
		}
		if c.op == condGreater {
			return v > c.operand
		}
		return v < c.operand
	default:
		return false
	}
}

// emptyModel is used when re-emitting unterminated blocks as text.
type emptyModel struct{}

func (emptyModel) Field(string) (string, bool)           { return "", false }
func (emptyModel) Numeric(string) (float64, bool)        { return 0, false }
func (emptyModel) Items(string) ([]map[string]string, bool) { return nil, false }
