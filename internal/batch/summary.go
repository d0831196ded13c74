package batch

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/abhisek/genero/internal/names"
)

// Count is a label with its number of rows.
type Count struct {
	Label string
	N     int
}

// Summary tallies a batch by gender and by method.
type Summary struct {
	Total   int
	Genders map[names.Gender]int
	Methods map[names.Method]int
}

// Summarize counts rows.
func Summarize(rows []Row) Summary {
	s := Summary{
		Total:   len(rows),
		Genders: make(map[names.Gender]int),
		Methods: make(map[names.Method]int),
	}
	for _, r := range rows {
		s.Genders[r.Result.Gender]++
		s.Methods[r.Result.Method]++
	}
	return s
}

// ByGender returns gender counts, largest first.
func (s Summary) ByGender() []Count {
	out := make([]Count, 0, len(s.Genders))
	for g, n := range s.Genders {
		out = append(out, Count{Label: string(g), N: n})
	}
	sortCounts(out)
	return out
}

// ByMethod returns method counts, largest first.
func (s Summary) ByMethod() []Count {
	out := make([]Count, 0, len(s.Methods))
	for m, n := range s.Methods {
		out = append(out, Count{Label: string(m), N: n})
	}
	sortCounts(out)
	return out
}

func sortCounts(c []Count) {
	sort.Slice(c, func(i, j int) bool {
		if c[i].N != c[j].N {
			return c[i].N > c[j].N
		}
		return c[i].Label < c[j].Label
	})
}

// Percent returns n as a percentage of the total.
func (s Summary) Percent(n int) float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(s.Total)
}

// Write prints both tallies as aligned tables.
func (s Summary) Write(w io.Writer) error {
	var b strings.Builder
	section := func(title string, counts []Count) {
		fmt.Fprintf(&b, "%-34s  %8s  %7s\n", title, "Rows", "Share")
		b.WriteString(strings.Repeat("─", 53))
		b.WriteByte('\n')
		for _, c := range counts {
			fmt.Fprintf(&b, "%-34s  %8d  %6.1f%%\n", c.Label, c.N, s.Percent(c.N))
		}
	}
	section("Gender", s.ByGender())
	b.WriteByte('\n')
	section("Method", s.ByMethod())
	fmt.Fprintf(&b, "\nTotal: %d\n", s.Total)

	_, err := io.WriteString(w, b.String())
	return err
}
