// filters.go - Report match filters built from the command line
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/playchess-go/internal/matching"
	"github.com/lgbarn/playchess-go/internal/processing"
)

// buildFilter combines every requested matcher. It returns nil when no
// matching flag is set, in which case every report matches.
func buildFilter() (matching.ReportMatcher, error) {
	filter := matching.NewCompositeMatcher(matching.MatchAll)

	if mm := loadMaterialMatcher(); mm != nil {
		filter.Add(mm)
	}

	pm, err := loadPositionMatcher()
	if err != nil {
		return nil, err
	}
	if pm != nil {
		filter.Add(pm)
	}

	vm, err := loadVariationMatcher()
	if err != nil {
		return nil, err
	}
	if vm != nil {
		filter.Add(vm)
	}

	if filter.Len() == 0 {
		return nil, nil
	}
	return filter, nil
}

// loadMaterialMatcher creates a material matcher if specified.
func loadMaterialMatcher() *matching.MaterialMatcher {
	if *materialMatchExact != "" {
		return matching.NewMaterialMatcher(*materialMatchExact, true)
	}
	if *materialMatch != "" {
		return matching.NewMaterialMatcher(*materialMatch, false)
	}
	return nil
}

// loadPositionMatcher collects -Tf, -fenpattern and -x into one matcher.
func loadPositionMatcher() (*matching.PositionMatcher, error) {
	if *fenFilter == "" && *fenPattern == "" && *positionFile == "" {
		return nil, nil
	}

	matcher := matching.NewPositionMatcher()
	if *fenFilter != "" {
		if err := matcher.AddFEN(*fenFilter, ""); err != nil {
			return nil, fmt.Errorf("parsing FEN filter: %w", err)
		}
	}
	if *fenPattern != "" {
		matcher.AddPattern(*fenPattern, "", *invertPatterns)
	}
	if *positionFile != "" {
		if err := loadPositionFile(matcher, *positionFile); err != nil {
			return nil, fmt.Errorf("loading position file %s: %w", *positionFile, err)
		}
	}
	return matcher, nil
}

// loadPositionFile adds one FEN per line. Text after a ';' labels the
// position; blank lines and # comments are skipped.
func loadPositionFile(matcher *matching.PositionMatcher, filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fen, label, _ := strings.Cut(line, ";")
		if err := matcher.AddFEN(strings.TrimSpace(fen), strings.TrimSpace(label)); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	return scanner.Err()
}

// loadVariationMatcher loads the variation file if specified.
func loadVariationMatcher() (*matching.VariationMatcher, error) {
	if *variationFile == "" {
		return nil, nil
	}

	matcher := matching.NewVariationMatcher()
	if err := matcher.LoadFromFile(*variationFile); err != nil {
		return nil, fmt.Errorf("loading variation file %s: %w", *variationFile, err)
	}
	return matcher, nil
}

// applyFilter reports whether a report should be selected, honouring -n.
func applyFilter(filter matching.ReportMatcher, report *processing.Report, negate bool) bool {
	matched := filter == nil || filter.Match(report)
	if negate {
		return !matched
	}
	return matched
}
