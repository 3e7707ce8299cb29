package equation

import "strings"

// Participant is one compound-in-a-compartment occurrence on one side
// of an equation. All three fields hold raw token text: the
// coefficient may be symbolic (e.g. "(n)") and is never evaluated.
type Participant struct {
	Coefficient string
	Compound    string
	Compartment string
}

func (p Participant) String() string {
	return p.Coefficient + " " + p.Compound + "@" + p.Compartment
}

// Equation is a parsed reaction equation: substrates left of the "="
// separator, products right of it. Either side may be empty.
type Equation struct {
	Substrates []Participant
	Products   []Participant
}

// String reassembles the canonical textual form of the equation.
func (eq *Equation) String() string {
	return strings.TrimSpace(joinSide(eq.Substrates) + " = " + joinSide(eq.Products))
}

func joinSide(side []Participant) string {
	parts := make([]string, len(side))
	for i, p := range side {
		parts[i] = p.String()
	}
	return strings.Join(parts, " + ")
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) pop() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(tok Token, msg string) *SyntaxError {
	return &SyntaxError{Pos: tok.Pos, Text: tok.Literal, Msg: msg}
}

// Parse parses a reaction equation string. The entire input must be
// consumed: trailing characters, a missing "=", or a second "=" all
// fail with a *SyntaxError. Parsing is atomic; there is no partial
// result.
func Parse(input string) (*Equation, error) {
	p := &parser{tokens: Tokenize(input)}
	eq := &Equation{}

	if p.peek().Type != TokenEquals {
		side, err := p.parseSide()
		if err != nil {
			return nil, err
		}
		eq.Substrates = side
	}

	if tok := p.pop(); tok.Type != TokenEquals {
		return nil, p.errorf(tok, "expected '='")
	}

	if p.peek().Type != TokenEOF {
		side, err := p.parseSide()
		if err != nil {
			return nil, err
		}
		eq.Products = side
	}

	if tok := p.pop(); tok.Type != TokenEOF {
		return nil, p.errorf(tok, "unexpected trailing input")
	}

	return eq, nil
}

// parseSide parses one or more participants separated by "+".
func (p *parser) parseSide() ([]Participant, error) {
	var side []Participant
	for {
		part, err := p.parseParticipant()
		if err != nil {
			return nil, err
		}
		side = append(side, part)
		if p.peek().Type != TokenPlus {
			return side, nil
		}
		p.pop()
	}
}

// parseParticipant parses "<coefficient> <compound> '@' <compartment>".
func (p *parser) parseParticipant() (Participant, error) {
	var part Participant

	tok := p.pop()
	switch tok.Type {
	case TokenNumber, TokenExpr:
		part.Coefficient = tok.Literal
	default:
		return part, p.errorf(tok, "expected coefficient")
	}

	tok = p.pop()
	if tok.Type != TokenCompound {
		return part, p.errorf(tok, "expected compound")
	}
	part.Compound = tok.Literal

	tok = p.pop()
	if tok.Type != TokenAt {
		return part, p.errorf(tok, "expected '@'")
	}

	tok = p.pop()
	if tok.Type != TokenCompartment {
		return part, p.errorf(tok, "expected compartment")
	}
	part.Compartment = tok.Literal

	return part, nil
}
