package pattern

import "fmt"

// Pattern is an ordered set of parts. The zero value is an empty pattern.
type Pattern struct {
	parts []*Part
}

// AddPart adds an empty part called name.
func (pat *Pattern) AddPart(name string) (*Part, error) {
	if _, err := pat.Part(name); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePart, name)
	}
	p := NewPart(name)
	pat.parts = append(pat.parts, p)
	return p, nil
}

// Part returns the part called name.
func (pat *Pattern) Part(name string) (*Part, error) {
	for _, p := range pat.parts {
		if p.name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPart, name)
}

// Parts returns the parts in the order they were added.
func (pat *Pattern) Parts() []*Part { return pat.parts }

// Err returns the first error recorded by any part.
func (pat *Pattern) Err() error {
	for _, p := range pat.parts {
		if err := p.Err(); err != nil {
			return err
		}
	}
	return nil
}
