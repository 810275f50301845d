package parser

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/javafmt/pkg/syntax"
)

type (
	parser struct {
		src    string
		tokens []Token
		sig    []int // indexes of the non trivia tokens
		cur    int   // next significant token (index into sig)
		next   int   // next token not yet attached to the tree (index into tokens)
		stack  []*frame
	}

	frame struct {
		offset   int
		children []*syntax.Node
	}
)

// Parse reads Java source from reader and parses it.
//
// Example usage:
//
//	f, err := os.Open("Main.java")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	file, err := parser.Parse(f)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
// Only read and lexer failures are reported as errors. Syntax errors end up as
// syntax.KindError nodes in the returned tree.
func Parse(reader io.Reader) (*syntax.File, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read source")
	}

	return parse("", string(data))
}

// ParseString parses Java source held in memory.
func ParseString(src string) (*syntax.File, error) {
	return parse("", src)
}

// ParseFile reads and parses the Java file at path. The path is recorded on the returned file.
func ParseFile(path string) (*syntax.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return parse(path, string(data))
}

func parse(path, src string) (*syntax.File, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{src: src, tokens: tokens}
	for i, t := range tokens {
		if !t.Kind.IsTrivia() {
			p.sig = append(p.sig, i)
		}
	}

	p.stack = []*frame{{}}
	p.parseCompilationUnit()
	p.flushAll()

	root := syntax.NewElement(syntax.KindFile, 0, p.stack[0].children...)
	file, err := syntax.NewFile(path, src, root)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build syntax tree")
	}

	return file, nil
}

// kind returns the kind of the i-th significant token, or KindNone past the end.
func (p *parser) kind(i int) syntax.Kind {
	if i < 0 || i >= len(p.sig) {
		return syntax.KindNone
	}

	return p.tokens[p.sig[i]].Kind
}

func (p *parser) text(i int) string {
	if i < 0 || i >= len(p.sig) {
		return ""
	}

	r := p.tokens[p.sig[i]].Range

	return p.src[r.Start:r.End]
}

func (p *parser) peek() syntax.Kind { return p.kind(p.cur) }
func (p *parser) peekAt(n int) syntax.Kind { return p.kind(p.cur + n) }
func (p *parser) eof() bool { return p.cur >= len(p.sig) }
func (p *parser) at(k syntax.Kind) bool { return p.peek() == k }
func (p *parser) atIdent(text string) bool { return p.at(syntax.KindIdentifier) && p.text(p.cur) == text }
func (p *parser) top() *frame { return p.stack[len(p.stack)-1] }
func (p *parser) attach(n *syntax.Node) { p.top().children = append(p.top().children, n) }

func (p *parser) atAny(kinds ...syntax.Kind) bool {
	k := p.peek()
	for _, want := range kinds {
		if k == want {
			return true
		}
	}

	return false
}

// adjacent reports whether significant tokens i and i+1 touch without trivia between them.
func (p *parser) adjacent(i int) bool {
	return i+1 < len(p.sig) && p.sig[i+1] == p.sig[i]+1
}

// flush attaches pending trivia up to limit (a token index) to the innermost open node.
func (p *parser) flush(limit int) {
	for ; p.next < limit; p.next++ {
		t := p.tokens[p.next]
		p.attach(syntax.NewToken(t.Kind, roleOfTrivia(t.Kind), t.Range))
	}
}

func (p *parser) flushPending() {
	if p.eof() {
		p.flushAll()
		return
	}

	p.flush(p.sig[p.cur])
}

func (p *parser) flushAll() {
	p.flush(len(p.tokens))
}

func (p *parser) offset() int {
	if p.next < len(p.tokens) {
		return p.tokens[p.next].Range.Start
	}

	return len(p.src)
}

// start opens a node. Pending trivia goes to the enclosing node.
func (p *parser) start() {
	p.flushPending()
	p.stack = append(p.stack, &frame{offset: p.offset()})
}

// startDecl opens a declaration node, pulling the closest preceding doc comment into it.
func (p *parser) startDecl() {
	limit := len(p.tokens)
	if !p.eof() {
		limit = p.sig[p.cur]
	}

	doc := -1
	for i := p.next; i < limit; i++ {
		if p.tokens[i].Kind == syntax.KindDocComment {
			doc = i
		}
	}

	if doc < 0 {
		p.start()
		return
	}

	p.flush(doc)
	p.stack = append(p.stack, &frame{offset: p.offset()})
}

// finish closes the innermost node with the given kind and attaches it to its parent.
func (p *parser) finish(kind syntax.Kind, role syntax.Role) *syntax.Node {
	f := p.top()
	p.stack = p.stack[:len(p.stack)-1]

	n := syntax.NewElement(kind, f.offset, f.children...)
	n.Role = role
	p.attach(n)

	return n
}

// precede reopens the already finished node n, together with everything attached after
// it, as the first children of a new node.
func (p *parser) precede(n *syntax.Node, role syntax.Role) {
	f := p.top()

	idx := len(f.children) - 1
	for idx >= 0 && f.children[idx] != n {
		idx--
	}

	moved := append([]*syntax.Node(nil), f.children[idx:]...)
	f.children = f.children[:idx]
	n.Role = role
	p.stack = append(p.stack, &frame{offset: n.Range.Start, children: moved})
}

// advance attaches the next significant token as a leaf with the given role.
func (p *parser) advance(role syntax.Role) *syntax.Node {
	return p.advanceN(p.peek(), 1, role)
}

// advanceN attaches the next n significant tokens as a single leaf of the given kind.
func (p *parser) advanceN(kind syntax.Kind, n int, role syntax.Role) *syntax.Node {
	if p.eof() {
		return nil
	}

	p.flushPending()

	first := p.tokens[p.sig[p.cur]].Range
	last := p.tokens[p.sig[p.cur+n-1]].Range
	leaf := syntax.NewToken(kind, role, syntax.NewRange(first.Start, last.End))
	p.attach(leaf)

	p.next = p.sig[p.cur+n-1] + 1
	p.cur += n

	return leaf
}

// expect consumes the next token when it has the wanted kind and reports whether it did.
func (p *parser) expect(kind syntax.Kind, role syntax.Role) bool {
	if !p.at(kind) {
		return false
	}

	p.advance(role)

	return true
}

// fusedGt inspects a run of adjacent '>' tokens (optionally followed by '=') at the
// current position and returns the operator it forms with the number of raw tokens.
func (p *parser) fusedGt() (syntax.Kind, int) {
	if !p.at(syntax.KindGt) {
		return syntax.KindNone, 0
	}

	gts := 1
	for gts < 3 && p.adjacent(p.cur+gts-1) && p.kind(p.cur+gts) == syntax.KindGt {
		gts++
	}

	eq := p.adjacent(p.cur+gts-1) && p.kind(p.cur+gts) == syntax.KindEq

	switch {
	case gts == 3 && eq:
		return syntax.KindGtGtGtEq, 4
	case gts == 3:
		return syntax.KindGtGtGt, 3
	case gts == 2 && eq:
		return syntax.KindGtGtEq, 3
	case gts == 2:
		return syntax.KindGtGt, 2
	case eq:
		return syntax.KindGe, 2
	}

	return syntax.KindGt, 1
}

// recover wraps tokens into an error node until one of the stop kinds (left in place),
// a semicolon (consumed) or the end of input. At least one token is consumed.
func (p *parser) recover(stop ...syntax.Kind) *syntax.Node {
	p.start()

	depth := 0

	for first := true; !p.eof(); first = false {
		k := p.peek()

		if !first && depth == 0 && containsKind(stop, k) {
			break
		}

		switch k {
		case syntax.KindLBrace, syntax.KindLParen:
			depth++
		case syntax.KindRBrace, syntax.KindRParen:
			if depth == 0 && !first {
				return p.finish(syntax.KindError, syntax.RoleNone)
			}

			depth = max(depth-1, 0)
		}

		p.advance(syntax.RoleNone)

		if k == syntax.KindSemicolon && depth == 0 {
			break
		}
	}

	return p.finish(syntax.KindError, syntax.RoleNone)
}

func containsKind(kinds []syntax.Kind, k syntax.Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}

	return false
}

func roleOfTrivia(k syntax.Kind) syntax.Role {
	if k == syntax.KindDocComment {
		return syntax.RoleDocComment
	}

	return syntax.RoleNone
}
