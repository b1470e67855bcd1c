package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
)

type pathJSON struct {
	Length float64  `json:"length"`
	Nodes  []string `json:"nodes"`
}

type resultJSON struct {
	Source string     `json:"source"`
	Target string     `json:"target"`
	Paths  []pathJSON `json:"paths"`
}

// writeText prints a header and one ranked line per path:
//
//	C → H: 2 path(s)
//	#1  5  C -> E -> F -> H
func writeText(w io.Writer, source, target string, lengths []float64, paths [][]string) error {
	bold := color.New(color.Bold).SprintFunc()
	rank := color.New(color.FgCyan).SprintFunc()
	weight := color.New(color.FgGreen).SprintFunc()

	if _, err := fmt.Fprintf(w, "%s → %s: %d path(s)\n", bold(source), bold(target), len(paths)); err != nil {
		return err
	}
	for i, p := range paths {
		_, err := fmt.Fprintf(w, "%s  %s  %s\n",
			rank(fmt.Sprintf("#%d", i+1)),
			weight(fmt.Sprintf("%g", lengths[i])),
			strings.Join(p, " -> "))
		if err != nil {
			return err
		}
	}

	return nil
}

// writeJSON prints the result as one indented JSON document.
func writeJSON(w io.Writer, source, target string, lengths []float64, paths [][]string) error {
	res := resultJSON{Source: source, Target: target, Paths: make([]pathJSON, len(paths))}
	for i, p := range paths {
		res.Paths[i] = pathJSON{Length: lengths[i], Nodes: p}
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)

	return err
}
