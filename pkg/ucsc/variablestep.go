// Reshaping of UCSC genome browser text exports into browser import tables.

package ucsc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var ErrNoChrom = errors.New("data line before any variableStep chrom=")

// key=value or key="quoted value"
var kvPattern = regexp.MustCompile(`([\w\-.]+)=(?:"(.*?)"|([^\s=]+))`)

// ParseProps reads the key=value list of a track or variableStep line.
func ParseProps(s string) map[string]string {
	props := make(map[string]string)
	for _, m := range kvPattern.FindAllStringSubmatch(s, -1) {
		if m[2] != "" {
			props[m[1]] = m[2]
		} else {
			props[m[1]] = m[3]
		}
	}
	return props
}

// ConvertVariableStep rewrites a variableStep wiggle file as
// "chrom<TAB>.<TAB>position value" rows. Declaration lines are kept as
// comments. Returns the number of data rows written.
func ConvertVariableStep(r io.Reader, w io.Writer) (int, error) {
	sc := bufio.NewScanner(r)
	out := bufio.NewWriter(w)
	chrom := ""
	rows := 0
	lineNum := 0

	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())

		var err error
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "track"):
			_, err = fmt.Fprintf(out, "#%s\n", line)
		case strings.HasPrefix(line, "#"):
			_, err = fmt.Fprintln(out, line)
		case strings.HasPrefix(line, "variableStep"):
			props := ParseProps(strings.TrimPrefix(line, "variableStep"))
			c, ok := props["chrom"]
			if !ok {
				return rows, fmt.Errorf("line %d: variableStep without chrom", lineNum)
			}
			chrom = c
			_, err = fmt.Fprintf(out, "#%s\n", line)
		default:
			if chrom == "" {
				return rows, fmt.Errorf("line %d: %w", lineNum, ErrNoChrom)
			}
			rows++
			_, err = fmt.Fprintf(out, "%s\t.\t%s\n", chrom, line)
		}
		if err != nil {
			return rows, err
		}
	}
	if err := sc.Err(); err != nil {
		return rows, err
	}
	return rows, out.Flush()
}
