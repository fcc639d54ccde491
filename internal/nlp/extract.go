package nlp

import "nlpd/pkg/types"

// meaningfulPOS lists the coarse categories kept in the token pass.
var meaningfulPOS = map[string]struct{}{
	POSNoun:  {},
	POSPropn: {},
	POSAdj:   {},
}

// Extract flattens doc into the served span list: every entity first, in model
// order, then every token that is neither a stop word nor punctuation and is a
// noun, proper noun or adjective. A token inside an entity is listed again
// under its POS label; callers rely on seeing both.
func Extract(doc Document) types.Extraction {
	out := make([]types.Span, 0, len(doc.Entities)+len(doc.Tokens))
	for _, ent := range doc.Entities {
		out = append(out, types.Span{Text: ent.Text, Label: ent.Label})
	}
	for _, tok := range doc.Tokens {
		if !isMeaningful(tok) {
			continue
		}
		out = append(out, types.Span{Text: tok.Text, Label: tok.POS})
	}
	return types.Extraction{Spans: out, Entities: len(doc.Entities)}
}

// Spans is Extract(doc).Spans.
func Spans(doc Document) []types.Span { return Extract(doc).Spans }

func isMeaningful(tok Token) bool {
	if tok.IsStop || tok.IsPunct {
		return false
	}
	_, ok := meaningfulPOS[tok.POS]
	return ok
}
