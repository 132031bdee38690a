package machines

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

const maxLineSize = 1 << 30

type Line struct {
	Number int
	Fields []string
}

// Section is a keyword line plus the content lines up to the next keyword.
// Fields following the keyword on its own line count as content.
type Section struct {
	Keyword string
	Line    int
	Lines   []Line
}

func (s *Section) Fields() (ret []string) {
	for _, line := range s.Lines {
		ret = append(ret, line.Fields...)
	}
	return
}

// ReadSections splits a description into the named sections, which must all be
// present and appear in the given order. Blank lines are ignored.
func ReadSections(r io.Reader, keywords ...string) ([]*Section, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineSize)

	var sections []*Section
	var current *Section
	number := 0
	for scanner.Scan() {
		number++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if idx := slices.Index(keywords, fields[0]); idx >= 0 {
			switch {
			case idx < len(sections):
				return nil, WithLine(fmt.Errorf("%w: section %s", ErrDuplicateName, fields[0]), number)
			case idx > len(sections):
				return nil, WithLine(fmt.Errorf("%w: %s", ErrMissingSection, keywords[len(sections)]), number)
			}
			current = &Section{
				Keyword: fields[0],
				Line:    number,
			}
			sections = append(sections, current)
			if len(fields) > 1 {
				current.Lines = append(current.Lines, Line{
					Number: number,
					Fields: fields[1:],
				})
			}
			continue
		}

		if current == nil {
			return nil, WithLine(fmt.Errorf("%w: %s", ErrMissingSection, keywords[0]), number)
		}
		current.Lines = append(current.Lines, Line{
			Number: number,
			Fields: fields,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(sections) < len(keywords) {
		return nil, fmt.Errorf("%w: %s", ErrMissingSection, keywords[len(sections)])
	}
	return sections, nil
}
