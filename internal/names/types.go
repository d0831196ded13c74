// Package names holds the value types shared by the gender classifier and
// its batch collaborators: records, genders, method tags and results.
package names

// Gender is the grammatical gender assigned to a given name.
type Gender string

const (
	Masculine Gender = "masculino"
	Feminine  Gender = "femenino"
	Unknown   Gender = "desconocido"
)

// Valid reports whether g is one of the three known genders.
func (g Gender) Valid() bool {
	switch g {
	case Masculine, Feminine, Unknown:
		return true
	}
	return false
}

// Method records which stage of the cascade produced a result. The tag is
// written verbatim to the metodo_asignacion column and read back by the
// sampler and the evaluator.
type Method string

const (
	MethodDictionaryFull     Method = "dic_completo"
	MethodDictionaryCompound Method = "dic_compuesto_especial"
	MethodDictionaryFirst    Method = "dic_primer_nombre"
	MethodDictionaryLast     Method = "dic_ultimo_nombre"

	MethodSuffixFeminine      Method = "heuristica_terminacion_f"
	MethodSuffixMasculine     Method = "heuristica_terminacion_m"
	MethodSuffixFeminineLast  Method = "heuristica_terminacion_f_ultimo"
	MethodSuffixMasculineLast Method = "heuristica_terminacion_m_ultimo"

	MethodFallbackA   Method = "fallback_primera_a"
	MethodFallbackO   Method = "fallback_primera_o"
	MethodNoClearRule Method = "sin_regla_clara"

	MethodEmpty         Method = "nombre_vacio"
	MethodOnlyParticles Method = "solo_particulas"
)

// Result is the outcome of classifying one name.
type Result struct {
	Gender Gender `json:"gender"`
	Method Method `json:"method"`
}

// Record pairs a raw name with its normalized key. The key is computed once
// in NewRecord and never recomputed.
type Record struct {
	Original   string
	Normalized string
}

// NewRecord normalizes raw and returns the record.
func NewRecord(raw string) Record {
	return Record{Original: raw, Normalized: Normalize(raw)}
}
