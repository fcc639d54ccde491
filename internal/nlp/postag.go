package nlp

// pennToUPOS maps Penn Treebank tags (as emitted by the prose tagger) to the
// coarse Universal POS categories.
var pennToUPOS = map[string]string{
	".":     POSPunct,
	",":     POSPunct,
	":":     POSPunct,
	"``":    POSPunct,
	"''":    POSPunct,
	"(":     POSPunct,
	")":     POSPunct,
	"-LRB-": POSPunct,
	"-RRB-": POSPunct,
	"HYPH":  POSPunct,
	"NFP":   POSPunct,
	"$":     POSSym,
	"#":     POSSym,
	"SYM":   POSSym,
	"AFX":   POSAdj,
	"JJ":    POSAdj,
	"JJR":   POSAdj,
	"JJS":   POSAdj,
	"CC":    POSCConj,
	"CD":    POSNum,
	"DT":    POSDet,
	"PDT":   POSDet,
	"WDT":   POSDet,
	"PRP$":  POSPron,
	"WP$":   POSPron,
	"EX":    POSPron,
	"PRP":   POSPron,
	"WP":    POSPron,
	"IN":    POSAdp,
	"RP":    POSAdp,
	"MD":    POSAux,
	"NN":    POSNoun,
	"NNS":   POSNoun,
	"NNP":   POSPropn,
	"NNPS":  POSPropn,
	"POS":   POSPart,
	"TO":    POSPart,
	"RB":    POSAdv,
	"RBR":   POSAdv,
	"RBS":   POSAdv,
	"WRB":   POSAdv,
	"UH":    POSIntj,
	"VB":    POSVerb,
	"VBD":   POSVerb,
	"VBG":   POSVerb,
	"VBN":   POSVerb,
	"VBP":   POSVerb,
	"VBZ":   POSVerb,
	"BES":   POSVerb,
	"HVS":   POSVerb,
	"_SP":   POSSpace,
	"FW":    POSX,
	"LS":    POSX,
	"ADD":   POSX,
	"GW":    POSX,
	"XX":    POSX,
	"NIL":   POSX,
}

// CoarsePOS returns the Universal POS category for a Penn Treebank tag, or X
// when the tag is unknown.
func CoarsePOS(tag string) string {
	if pos, ok := pennToUPOS[tag]; ok {
		return pos
	}
	return POSX
}
