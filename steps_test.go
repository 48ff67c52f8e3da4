package porter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stepCase struct {
	input string
	want  string
}

func runStep(t *testing.T, name string, step func([]byte) []byte, tests []stepCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(name+"/"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, string(step([]byte(tt.input))))
		})
	}
}

func TestStep1a(t *testing.T) {
	runStep(t, "1a", step1a, []stepCase{
		{"caresses", "caress"},
		{"ponies", "poni"},
		{"ties", "ti"},
		{"caress", "caress"},
		{"cats", "cat"},
		{"s", ""},
		{"", ""},
	})
}

func TestStep1b(t *testing.T) {
	runStep(t, "1b", step1b, []stepCase{
		{"feed", "feed"},
		{"agreed", "agree"},
		{"plastered", "plaster"},
		{"bled", "bled"},
		{"motoring", "motor"},
		{"sing", "sing"},
		{"conflated", "conflate"},
		{"troubled", "trouble"},
		{"sized", "size"},
		{"hopping", "hop"},
		{"tanning", "tan"},
		{"falling", "fall"},
		{"hissing", "hiss"},
		{"fizzed", "fizz"},
		{"failing", "fail"},
		{"filing", "file"},
		{"be", "be"},
		{"ed", "ed"},
		{"ing", "ing"},
	})
}

func TestStep1bResolve(t *testing.T) {
	runStep(t, "1b-resolve", step1bResolve, []stepCase{
		{"conflat", "conflate"},
		{"troubl", "trouble"},
		{"siz", "size"},
		{"hopp", "hop"},
		{"tann", "tan"},
		{"fall", "fall"},
		{"hiss", "hiss"},
		{"fizz", "fizz"},
		{"fail", "fail"},
		{"fil", "file"},
		{"box", "box"},
		{"ab", "ab"},
		{"i", "i"},
		{"", ""},
	})
}

func TestStep1c(t *testing.T) {
	runStep(t, "1c", step1c, []stepCase{
		{"happy", "happi"},
		{"sky", "sky"},
		{"y", "y"},
		{"", ""},
	})
}

func TestStep2(t *testing.T) {
	runStep(t, "2", step2, []stepCase{
		{"relational", "relate"},
		{"conditional", "condition"},
		{"rational", "rational"},
		{"valenci", "valence"},
		{"hesitanci", "hesitance"},
		{"digitizer", "digitize"},
		{"conformabli", "conformable"},
		{"radicalli", "radical"},
		{"differentli", "different"},
		{"vileli", "vile"},
		{"analogousli", "analogous"},
		{"vietnamization", "vietnamize"},
		{"predication", "predicate"},
		{"operator", "operate"},
		{"feudalism", "feudal"},
		{"decisiveness", "decisive"},
		{"hopefulness", "hopeful"},
		{"callousness", "callous"},
		{"formaliti", "formal"},
		{"sensitiviti", "sensitive"},
		{"sensibiliti", "sensible"},
		{"a", "a"},
		{"", ""},
	})
}

func TestStep3(t *testing.T) {
	runStep(t, "3", step3, []stepCase{
		{"triplicate", "triplic"},
		{"formative", "form"},
		{"formalize", "formal"},
		{"electriciti", "electric"},
		{"electrical", "electric"},
		{"hopeful", "hope"},
		{"goodness", "good"},
		{"ful", "ful"},
	})
}

func TestStep4(t *testing.T) {
	runStep(t, "4", step4, []stepCase{
		{"revival", "reviv"},
		{"allowance", "allow"},
		{"inference", "infer"},
		{"airliner", "airlin"},
		{"gyroscopic", "gyroscop"},
		{"adjustable", "adjust"},
		{"defensible", "defens"},
		{"irritant", "irrit"},
		{"replacement", "replac"},
		{"adjustment", "adjust"},
		{"dependent", "depend"},
		{"adoption", "adopt"},
		{"communion", "communion"},
		{"homologous", "homolog"},
		{"communism", "commun"},
		{"activate", "activ"},
		{"angulariti", "angular"},
		{"effective", "effect"},
		{"bowdlerize", "bowdler"},
		{"ion", "ion"},
	})
}

func TestStep5a(t *testing.T) {
	runStep(t, "5a", step5a, []stepCase{
		{"probate", "probat"},
		{"rate", "rate"},
		{"cease", "ceas"},
		{"trouble", "troubl"},
		{"trocawe", "trocaw"},
		{"bowe", "bow"},
		{"boxe", "box"},
		{"baye", "bay"},
		{"pcace", "pcace"},
		{"e", "e"},
		{"", ""},
	})
}

func TestStep5b(t *testing.T) {
	runStep(t, "5b", step5b, []stepCase{
		{"controll", "control"},
		{"befuddl", "befudd"},
		{"roll", "roll"},
		{"nautil", "nautil"},
		{"ll", "ll"},
		{"l", "l"},
	})
}
