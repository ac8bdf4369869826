package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/zhangzqs/ordering-go"
)

// line is one input line together with its numeric value when parsed with --numeric.
type line struct {
	text string
	num  float64
}

type lineOptions struct {
	numeric   bool
	reverse   bool
	skipEmpty bool
}

func (o *lineOptions) comparer() ordering.Comparer[line] {
	byText := ordering.By(func(l line) string { return l.text })
	c := byText
	if o.numeric {
		c = ordering.By(func(l line) float64 { return l.num }).OrElse(byText)
	}
	if o.reverse {
		c = c.Invert()
	}
	return c
}

// readLines reads r line by line and parses numeric values when requested.
func readLines(r io.Reader, opts *lineOptions) ([]line, error) {
	var texts []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		texts = append(texts, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if opts.skipEmpty {
		texts = lo.Filter(texts, func(s string, _ int) bool { return strings.TrimSpace(s) != "" })
	}

	lines := lo.Map(texts, func(s string, _ int) line { return line{text: s} })
	if !opts.numeric {
		return lines, nil
	}
	for i := range lines {
		n, err := strconv.ParseFloat(strings.TrimSpace(lines[i].text), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: not a number: %q", i+1, lines[i].text)
		}
		lines[i].num = n
	}
	return lines, nil
}

func writeLines(w io.Writer, lines []line) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(l.text); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
