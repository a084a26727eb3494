package animate

// Run executes tokens one after another. Each token starts only after the
// previous token's whole batch has finished, so batches never overlap.
// Run returns immediately for an empty list; pass a slice with Run(list...).
//
// A token that was already executed never completes again, so the chain
// stops at it and later tokens do not run.
func Run(tokens ...*Token) {
	RunThen(nil, tokens...)
}

// RunThen is Run with a completion handler called once after the last token
// finishes. For an empty list onDone is called immediately.
func RunThen(onDone func(), tokens ...*Token) {
	if len(tokens) == 0 {
		if onDone != nil {
			onDone()
		}
		return
	}
	tokens = append([]*Token(nil), tokens...)
	s := newStepper(len(tokens), func(i int, next func()) {
		t := tokens[i]
		if !t.Execute(next) {
			t.core.owner.debugf("chain stalled at token %d of %d", i+1, len(tokens))
		}
	}, onDone)
	s.advance()
}
