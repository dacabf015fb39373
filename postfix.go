package calc

// ToPostfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Numbers keep their relative order, and every
// operator follows its operands. Open parens that are never closed remain in
// the result, where EvalPostfix reports them; close parens without a matching
// open paren are dropped.
func ToPostfix(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	var ops []Token
	for _, tok := range toks {
		if tok.Kind == TokenNum {
			out = append(out, tok)
			continue
		}
		for len(ops) > 0 && pops(tok.Kind, ops[len(ops)-1].Kind) {
			out = append(out, ops[len(ops)-1])
			ops = ops[:len(ops)-1]
		}
		if tok.Kind == TokenClose {
			for len(ops) > 0 {
				op := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if op.Kind == TokenOpen {
					break
				}
				out = append(out, op)
			}
			continue
		}
		ops = append(ops, tok)
	}
	for i := len(ops) - 1; i >= 0; i-- {
		out = append(out, ops[i])
	}
	return out
}

// pops reports whether an incoming token moves the top of the operator stack
// to the output, i.e. whether the incoming operator binds no tighter than top.
// Parens never pop. Right-associative operators do not pop themselves:
// 2^3^2 -> 2 3 2 ^ ^ and neg neg x -> x neg neg.
func pops(incoming, top TokenKind) bool {
	if !incoming.isOp() || !top.isOp() {
		return false
	}
	if incoming == TokenOpen || incoming == TokenClose || top == TokenOpen || top == TokenClose {
		return false
	}
	p, q := incoming.op(), top.op()
	if p.prec != q.prec {
		return p.prec < q.prec
	}
	return !(p.right && incoming == top)
}
