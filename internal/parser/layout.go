package parser

import (
	"strconv"

	"shaderlint/internal/diag"
	"shaderlint/internal/source"
	"shaderlint/internal/token"
)

// layoutList is the parsed form of layout(...). Keys appear in any
// order and most are optional; absent int keys stay -1.
type layoutList struct {
	span         source.Span
	location     int
	set          int
	binding      int
	index        int // input_attachment_index
	pushConstant bool
}

func emptyLayout() layoutList {
	return layoutList{location: -1, set: -1, binding: -1, index: -1}
}

// parseLayout consumes `layout ( key [= value] {, key [= value]} )`.
// The caller must sit on the `layout` keyword. This is a backtracking
// point: on failure the cursor rewinds and ok=false is returned so the
// caller can resynchronize with the full declaration context.
func (p *Parser) parseLayout() (layoutList, bool) {
	m := p.mark()
	ll := emptyLayout()

	layoutTok := p.advance() // layout
	ll.span = layoutTok.Span

	if !p.eat(token.LParen) {
		p.reset(m)
		return ll, false
	}

	for {
		key, ok := p.expect(token.Ident, diag.SynBadLayout, "expected layout qualifier name")
		if !ok {
			p.reset(m)
			return ll, false
		}

		value := -1
		if p.eat(token.Assign) {
			lit := p.peek()
			switch lit.Kind {
			case token.IntLit, token.UintLit:
				p.advance()
				if v, err := strconv.Atoi(trimIntSuffix(lit.Text)); err == nil {
					value = v
				}
			case token.Ident:
				// specialization constants etc.; value stays unknown
				p.advance()
			default:
				p.err(diag.SynBadLayout, "expected layout qualifier value")
				p.reset(m)
				return ll, false
			}
		}

		switch key.Text {
		case "location":
			ll.location = value
		case "set":
			ll.set = value
		case "binding":
			ll.binding = value
		case "input_attachment_index":
			ll.index = value
		case "push_constant":
			ll.pushConstant = true
		default:
			// local_size_*, std140, constant_id, ... are legal but
			// carry nothing the rules need
		}

		if p.eat(token.Comma) {
			continue
		}
		break
	}

	rparen, ok := p.expect(token.RParen, diag.SynBadLayout, "expected ')' to close layout qualifier")
	if !ok {
		p.reset(m)
		return ll, false
	}
	ll.span = ll.span.Cover(rparen.Span)
	return ll, true
}

func trimIntSuffix(text string) string {
	for len(text) > 0 {
		last := text[len(text)-1]
		if last == 'u' || last == 'U' {
			text = text[:len(text)-1]
			continue
		}
		break
	}
	return text
}
