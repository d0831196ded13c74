package names

import "strings"

// particles are connectives that never carry gender on their own.
var particles = map[string]struct{}{
	"de":  {},
	"del": {},
	"la":  {},
	"los": {},
	"las": {},
}

// IsParticle reports whether tok is a connective particle.
func IsParticle(tok string) bool {
	_, ok := particles[tok]
	return ok
}

// Tokenize splits a normalized name into its significant components,
// dropping particles. Order is preserved: the first token is the primary
// given name and the last one the secondary name. The result is empty when
// the input is blank or made only of particles.
func Tokenize(normalized string) []string {
	fields := strings.Split(normalized, " ")
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "" || IsParticle(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
