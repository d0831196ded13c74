package lexicon

// DefaultVersion is the version stamped on the built-in tables.
const DefaultVersion = "v1.2.0"

// DefaultFile returns a fresh copy of the built-in Spanish tables in file
// form. Callers may modify the copy, e.g. to write a starting point for a
// custom rules file.
func DefaultFile() *File {
	return &File{
		Version:   DefaultVersion,
		Masculine: append([]string(nil), seedMasculine...),
		Feminine:  append([]string(nil), seedFeminine...),
		Compounds: []CompoundFile{
			{First: "jose", Second: "maria", Gender: "masculino"},
			{First: "maria", Second: "jose", Gender: "femenino"},
		},
		Rules: []RuleFile{
			{
				Name:       "feminine-suffix",
				Gender:     "femenino",
				Suffixes:   append([]string(nil), seedFeminineSuffixes...),
				Exceptions: append([]string(nil), seedFeminineExceptions...),
			},
			{
				Name:       "masculine-suffix",
				Gender:     "masculino",
				Suffixes:   append([]string(nil), seedMasculineSuffixes...),
				Exceptions: append([]string(nil), seedMasculineExceptions...),
				Guarded:    []string{"es", "is", "ez"},
				Trusted:    append([]string(nil), seedTrustedMasculine...),
			},
		},
	}
}

var seedMasculine = []string{
	// Single names.
	"aaron", "adrian", "alan", "alberico", "alberto", "alejandro", "alex",
	"alvaro", "anderson", "andres", "angel", "anibal", "anthony", "antonio",
	"armando", "arnold", "arnoldo", "bautista", "benjamin", "borja",
	"brandon", "bryan", "carlos", "cesar", "christopher", "clemente",
	"cristian", "cristiano", "cristobal", "daniel", "david", "diego", "dylan",
	"eduardo", "elias", "eloy", "enrique", "ernesto", "esteban", "fabio",
	"felipe", "fernando", "francisco", "frank", "franklin", "gabriel",
	"gustavo", "harold", "hector", "hugo", "ignacio", "isaac", "isaias",
	"jaime", "jason", "javier", "jesus", "jimmy", "jonas", "jorge", "jose",
	"joshua", "juan", "julio", "keneddy", "kevin", "leonardo", "luca",
	"lucas", "luis", "manuel", "marco", "martin", "mateo", "matias",
	"miguel", "moises", "nathan", "nelson", "nicolas", "nikita", "oscar",
	"osvaldo", "oswaldo", "pablo", "pedro", "rafael", "ramon", "ricardo",
	"roberto", "salvador", "samuel", "santiago", "sebastian", "sergio",
	"tobias", "tomas", "victor", "welcome", "william", "zacarias",

	// Registered compounds.
	"juan jose", "luis daniel", "de jesus",
}

var seedFeminine = []string{
	// Single names.
	"adoracion", "adriana", "alejandra", "alicia", "allison", "amparo", "ana",
	"angela", "angeles", "antonia", "ashley", "aurora", "beatriz", "camila",
	"caridad", "carla", "carmen", "carolina", "catalina", "concepcion",
	"consuelo", "cristina", "daniela", "diana", "dinorah", "dolores",
	"edith", "elena", "elizabeth", "ester", "estefania", "felicitas",
	"fernanda", "gabriela", "gladys", "gloria", "ines", "inmaculada", "irma",
	"isabel", "juliana", "karla", "kimberly", "liliana", "lilian", "lorena",
	"lourdes", "lucia", "luz", "magdalena", "margarita", "maria", "mariana",
	"mariela", "marisol", "martha", "melissa", "mercedes", "miriam",
	"mireya", "monica", "nancy", "nelly", "pamela", "paola", "patricia",
	"paz", "priscila", "purisima", "raquel", "refugio", "rocio", "rosario",
	"samantha", "sandra", "silvia", "sofia", "teresa", "trinidad",
	"valeria", "vanessa", "veronica", "victoria", "xianny", "ximena",
	"xinia", "xochil", "yolanda",

	// Registered compounds.
	"carmen edith", "elisa del rosario", "irma de jesus", "maria carmen",
	"maria de la asuncion", "maria de la caridad", "maria de la concepcion",
	"maria de la esperanza", "maria de la inmaculada", "maria de la luz",
	"maria de la merced", "maria de la paz", "maria de la purisima",
	"maria de la salud", "maria de la visitacion", "maria de los angeles",
	"maria de los dolores", "maria del carmen", "maria isabel",
	"maria rosario",
}

var seedFeminineSuffixes = []string{
	"a", "ia", "ina", "ela", "isa", "ana", "ila", "ita", "ada", "ara", "ona",
	"liz", "luz", "dad", "cion", "sion", "nes", "rah", "ys", "beth", "ith",
	"lian", "liam",
}

// Masculine names that end like feminine ones.
var seedFeminineExceptions = []string{
	"elias", "nicolas", "jonas", "tobias", "isaias", "matias", "andres",
	"zacarias", "luca", "joshua", "bautista", "borja", "nikita", "william",
}

var seedMasculineSuffixes = []string{
	"o", "io", "ito", "ano", "or", "tor", "on", "ron", "an", "en", "el",
	"iel", "uel", "us", "ez", "es", "is", "as", "er", "ar", "al", "il",
	"son", "ton", "vin",
}

// Feminine names that end like masculine ones.
var seedMasculineExceptions = []string{
	"paz", "consuelo", "amparo", "rocio", "trinidad", "carmen", "isabel",
	"dolores", "mercedes", "angeles", "ester", "esther", "raquel", "pilar",
	"belen", "nieves", "abigail", "sharon", "maribel", "anabel", "mabel",
	"iris", "rosario", "refugio",
}

// Masculine names allowed through the guarded es/is/ez endings.
var seedTrustedMasculine = []string{
	"andres", "moises", "ulises", "aristides", "hermes", "arquimedes",
	"luis", "dennis", "travis", "elvis", "otis", "ramses",
}
