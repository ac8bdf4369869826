//go:build ignore

// This program generates zrecord.go. Invoke it as
//
//	go run gen_record.go -output zrecord.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const (
	minFields = 2
	maxFields = 11
)

var words = []string{"", "", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten", "eleven"}

type record struct {
	N      int
	Word   string
	Fields []int
}

func (r record) list(prefix string) string {
	s := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		s[i] = fmt.Sprintf("%s%d", prefix, f)
	}
	return strings.Join(s, ", ")
}

func (r record) TypeParams() string { return r.list("A") }
func (r record) LeftVars() string   { return r.list("a") }
func (r record) RightVars() string  { return r.list("b") }

func (r record) Params() string {
	s := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		s[i] = fmt.Sprintf("c%d Comparer[A%d]", f, f)
	}
	return strings.Join(s, ", ")
}

func (r record) Init() []int { return r.Fields[:len(r.Fields)-1] }
func (r record) Last() int   { return r.Fields[len(r.Fields)-1] }

func main() {
	output := flag.String("output", "zrecord.go", "output file")
	flag.Parse()

	var records []record
	for n := minFields; n <= maxFields; n++ {
		r := record{N: n, Word: words[n]}
		for f := 1; f <= n; f++ {
			r.Fields = append(r.Fields, f)
		}
		records = append(records, r)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, records); err != nil {
		log.Fatalf("execute template: %v", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format output: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatalf("write output: %v", err)
	}
}

var tmpl = template.Must(template.New("records").Parse(`// Code generated by gen_record.go; DO NOT EDIT.

package ordering
{{range .}}
// Record{{.N}} compares values that split decomposes into {{.Word}} fields,
// most significant field first. Later fields are compared only on a tie.
func Record{{.N}}[T, {{.TypeParams}} any](split func(T) ({{.TypeParams}}), {{.Params}}) Comparer[T] {
	return func(a, b T) Comparison {
		{{.LeftVars}} := split(a)
		{{.RightVars}} := split(b)
{{- range .Init}}
		if r := c{{.}}(a{{.}}, b{{.}}); r != Same {
			return r
		}
{{- end}}
		return c{{.Last}}(a{{.Last}}, b{{.Last}})
	}
}
{{end}}`))
