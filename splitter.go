package dumpsplit

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Section is a named, ordered sequence of raw lines collected between its
// header line and the next recognized header. Sections of the same kind merge
// into one: a second occurrence of a kind's header continues the existing
// section.
type Section struct {
	Kind  Kind
	Lines []string
}

// Sections holds every section detected in a dump, in encounter order.
type Sections struct {
	order []*Section
	index map[string]*Section
}

// Len returns the number of distinct section kinds detected.
func (s *Sections) Len() int { return len(s.order) }

// Get returns the section for the given kind name, or nil when the dump did
// not contain one.
func (s *Sections) Get(name string) *Section { return s.index[name] }

// All iterates over the sections in encounter order.
func (s *Sections) All() iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		for _, sec := range s.order {
			if !yield(sec) {
				return
			}
		}
	}
}

// open returns the section for that kind, creating it on first use.
func (s *Sections) open(k Kind) *Section {
	if sec, ok := s.index[k.Name]; ok {
		return sec
	}
	sec := &Section{Kind: k}
	s.order = append(s.order, sec)
	s.index[k.Name] = sec
	return sec
}

// Split reads the dump from r and groups its lines into sections.
//
// The dump is streamed line by line, so the working set is bounded by the
// accumulated section content, never by the input size. Lines that arrive
// before any recognized header are discarded, and blank lines are skipped
// without closing the current section.
func Split(r io.Reader) (*Sections, error) {
	sections := &Sections{index: make(map[string]*Section)}
	var current *Section

	scanner := bufio.NewScanner(r)
	// Structured sections can carry very long single lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if kind, ok := matchKind(line); ok {
			current = sections.open(kind)
			// A tabular section keeps its header as the column-name line
			// exactly once; a repeated header only reopens the section.
			if kind.Output == Tabular && len(current.Lines) > 0 {
				continue
			}
			current.Lines = append(current.Lines, line)
			continue
		}

		if current == nil {
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read dump: %w", err)
	}
	return sections, nil
}
