package wikitext

// htmlCharacterEntities maps the named HTML character entities recognized by
// the reference parser's built-in configuration to the rune each one
// designates. The trie is built from this table with AddCaseSensitiveTerm
// (entity names are case sensitive), each key already including the
// trailing ';' the way the reference Configuration::new inserts
// "{name};" verbatim.
//
// This is a small, commonly used subset (including amp, lt, gt, quot and
// apos), not the full HTML5 table of ~2000 names.
var htmlCharacterEntities = map[string]rune{
	"amp;":     '&',
	"lt;":      '<',
	"gt;":      '>',
	"quot;":    '"',
	"apos;":    '\'',
	"nbsp;":    ' ',
	"copy;":    '©',
	"reg;":     '®',
	"trade;":   '™',
	"mdash;":   '—',
	"ndash;":   '–',
	"hellip;":  '…',
	"lsquo;":   '‘',
	"rsquo;":   '’',
	"ldquo;":   '“',
	"rdquo;":   '”',
	"deg;":     '°',
	"plusmn;":  '±',
	"times;":   '×',
	"divide;":  '÷',
	"frac12;":  '½',
	"frac14;":  '¼',
	"frac34;":  '¾',
	"eacute;":  'é',
	"egrave;":  'è',
	"agrave;":  'à',
	"uuml;":    'ü',
	"ouml;":    'ö',
	"auml;":    'ä',
	"szlig;":   'ß',
	"alpha;":   'α',
	"beta;":    'β',
	"gamma;":   'γ',
	"delta;":   'δ',
	"pi;":      'π',
	"omega;":   'ω',
	"infin;":   '∞',
	"larr;":    '←',
	"rarr;":    '→',
	"uarr;":    '↑',
	"darr;":    '↓',
	"sect;":    '§',
	"para;":    '¶',
	"middot;":  '·',
	"bull;":    '•',
	"dagger;":  '†',
	"permil;":  '‰',
	"euro;":    '€',
	"pound;":   '£',
	"yen;":     '¥',
	"cent;":    '¢',
	"shy;":     '­',
	"laquo;":   '«',
	"raquo;":   '»',
}
