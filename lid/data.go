package lid

import "math"

// turkishLetters are the letters specific to Turkish orthography among
// the two languages scored here. Lowercase only; input is folded.
var turkishLetters = map[rune]bool{
	'ç': true,
	'ğ': true,
	'ı': true,
	'ö': true,
	'ş': true,
	'ü': true,
}

// trigramSize is the number of consecutive runes in a single trigram.
const trigramSize = 3

// trTrigrams is the top-50 character trigram frequency profile for
// Turkish, derived from standard Turkish corpus statistics. Turkish is
// agglutinative, so suffix trigrams dominate: -lar/-ler (plural), -yor
// (present continuous), -rak/-mak, and participial -dığ/-lığ/-ığı.
var trTrigrams = map[string]float64{
	"lar": 0.013200,
	"ler": 0.011500,
	"bir": 0.005100,
	"ile": 0.004900,
	"nda": 0.004800,
	"dan": 0.004600,
	"ını": 0.004400,
	"rin": 0.004300,
	"ara": 0.004200,
	"ini": 0.004100,
	"anı": 0.004000,
	"lan": 0.003900,
	"ind": 0.003800,
	"ala": 0.003700,
	"nin": 0.003600,
	"eri": 0.003500,
	"ili": 0.003400,
	"ası": 0.003300,
	"olu": 0.003200,
	"edi": 0.003100,
	"idi": 0.003000,
	"ınd": 0.002900,
	"arı": 0.002800,
	"alı": 0.002700,
	"dir": 0.002600,
	"sin": 0.002500,
	"yor": 0.002400,
	"ıyo": 0.002300,
	"nde": 0.002200,
	"den": 0.002100,
	"yan": 0.002000,
	"yen": 0.001900,
	"ter": 0.001800,
	"esi": 0.001700,
	"ine": 0.001600,
	"lma": 0.001500,
	"aya": 0.001400,
	"ard": 0.001300,
	"lik": 0.001200,
	"rak": 0.001100,
	"mak": 0.001000,
	"ken": 0.000950,
	"aki": 0.000900,
	"eki": 0.000850,
	"dığ": 0.000800,
	"lığ": 0.000750,
	"ığı": 0.000700,
	"tır": 0.000650,
	"dır": 0.000600,
	"rdi": 0.000550,
}

// enTrigrams is the top-50 word-internal character trigram frequency
// profile for English. Cross-word trigrams common in running-text
// profiles (nth, edt, fth) are excluded because scoring happens on
// single words.
var enTrigrams = map[string]float64{
	"the": 0.016200,
	"ing": 0.011300,
	"ion": 0.008400,
	"tio": 0.007500,
	"ent": 0.006200,
	"ati": 0.005900,
	"and": 0.005600,
	"ter": 0.005100,
	"ate": 0.004700,
	"ers": 0.004500,
	"res": 0.004200,
	"est": 0.004100,
	"ess": 0.003900,
	"ons": 0.003700,
	"all": 0.003500,
	"men": 0.003400,
	"ted": 0.003300,
	"ine": 0.003200,
	"ive": 0.003100,
	"ous": 0.002900,
	"ble": 0.002800,
	"igh": 0.002700,
	"ght": 0.002600,
	"oun": 0.002500,
	"und": 0.002400,
	"ear": 0.002300,
	"out": 0.002200,
	"ore": 0.002100,
	"con": 0.002000,
	"com": 0.001950,
	"pro": 0.001900,
	"per": 0.001850,
	"sta": 0.001800,
	"ran": 0.001750,
	"ies": 0.001700,
	"ful": 0.001650,
	"nes": 0.001600,
	"abl": 0.001550,
	"rea": 0.001500,
	"era": 0.001450,
	"ist": 0.001400,
	"ort": 0.001350,
	"ain": 0.001300,
	"ust": 0.001250,
	"ome": 0.001200,
	"ill": 0.001150,
	"ure": 0.001100,
	"age": 0.001050,
	"anc": 0.001000,
	"enc": 0.000950,
}

// Pre-computed L2 norms for the trigram profile vectors.
var (
	trTrigramNorm = profileNorm(trTrigrams)
	enTrigramNorm = profileNorm(enTrigrams)
)

// profileNorm computes the L2 norm of a frequency profile.
func profileNorm(profile map[string]float64) float64 {
	var sum float64
	for _, v := range profile {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// extractTrigrams builds a relative-frequency map of character trigrams
// from an already folded, letters-only rune sequence.
func extractTrigrams(letters []rune) map[string]float64 {
	counts := make(map[string]float64)
	limit := len(letters) - trigramSize + 1
	for i := 0; i < limit; i++ {
		counts[string(letters[i:i+trigramSize])]++
	}

	total := float64(limit)
	if total <= 0 {
		return counts
	}
	for k := range counts {
		counts[k] /= total
	}
	return counts
}

// trigramCosine computes the cosine similarity between an input trigram
// frequency map and a reference profile, using the pre-computed profile
// L2 norm. Returns a value in [0.0, 1.0].
func trigramCosine(input, profile map[string]float64, profNorm float64) float64 {
	if len(input) == 0 {
		return 0.0
	}

	var dot, normInput float64
	for trigram, inputFreq := range input {
		normInput += inputFreq * inputFreq
		if profileFreq, ok := profile[trigram]; ok {
			dot += inputFreq * profileFreq
		}
	}

	denom := math.Sqrt(normInput) * profNorm
	if denom == 0 {
		return 0.0
	}
	return dot / denom
}
