package nlp

// Coarse part-of-speech categories (Universal Dependencies tag set).
const (
	POSAdj   = "ADJ"
	POSAdp   = "ADP"
	POSAdv   = "ADV"
	POSAux   = "AUX"
	POSCConj = "CCONJ"
	POSDet   = "DET"
	POSIntj  = "INTJ"
	POSNoun  = "NOUN"
	POSNum   = "NUM"
	POSPart  = "PART"
	POSPron  = "PRON"
	POSPropn = "PROPN"
	POSPunct = "PUNCT"
	POSSpace = "SPACE"
	POSSym   = "SYM"
	POSVerb  = "VERB"
	POSX     = "X"
)

// Document is the result of analyzing one text. It is owned by the caller and
// never shared between requests.
type Document struct {
	// Entities in the order produced by the model (left to right).
	Entities []Entity
	// Tokens in input order.
	Tokens []Token
}

// Entity is a recognized named-entity span.
type Entity struct {
	Text  string
	Label string
}

// Token is the smallest unit the model identifies.
type Token struct {
	Text string
	// Tag is the fine-grained tag reported by the model (Penn Treebank).
	Tag string
	// POS is the coarse category derived from Tag.
	POS     string
	IsStop  bool
	IsPunct bool
}
