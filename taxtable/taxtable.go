// Package taxtable holds the IMT bracket tables used by the simulator.
//
// The tables are static data: a YAML document embedded in the binary and
// parsed once, or an operator supplied file with the same shape.
package taxtable

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"property-simulator/domain"
)

//go:embed imt_2024.yaml
var embeddedTables []byte

var ErrInvalidTable = errors.New("invalid tax table")

// Profile identifies one of the bracket tables.
type Profile string

const (
	PrimaryStandard Profile = "primary_standard"
	PrimaryUnder35  Profile = "primary_under_35"
	Secondary       Profile = "secondary"
)

// Profiles lists every table a Set must carry.
var Profiles = []Profile{PrimaryStandard, PrimaryUnder35, Secondary}

// ProfileFor picks the table for a buyer.
func ProfileFor(purpose domain.PropertyPurpose, isUnder35 bool) Profile {
	if purpose != domain.PrimaryResidence {
		return Secondary
	}
	if isUnder35 {
		return PrimaryUnder35
	}
	return PrimaryStandard
}

// Bracket is a (LowerBound, UpperBound] value range. A nil UpperBound means
// the bracket has no ceiling.
type Bracket struct {
	LowerBound  float64  `yaml:"lower" json:"lowerBound"`
	UpperBound  *float64 `yaml:"upper" json:"upperBound,omitempty"`
	RatePercent float64  `yaml:"rate" json:"ratePercent"`
	Deduction   float64  `yaml:"deduction" json:"deductionAmount"`
	SingleRate  bool     `yaml:"single_rate" json:"singleRate"`
}

func (b Bracket) Contains(value float64) bool {
	return value > b.LowerBound && (b.UpperBound == nil || value <= *b.UpperBound)
}

// Table is an ascending, contiguous list of brackets covering [0, ∞).
type Table []Bracket

// Find returns the bracket holding value. Zero and anything below the first
// lower bound belong to the first bracket; anything past the last finite
// bound belongs to the last one.
func (t Table) Find(value float64) Bracket {
	if value <= t[0].LowerBound {
		return t[0]
	}
	for _, b := range t {
		if b.Contains(value) {
			return b
		}
	}
	return t[len(t)-1]
}

type Set struct {
	Year   int               `yaml:"year" json:"year"`
	Tables map[Profile]Table `yaml:"tables" json:"tables"`
}

func (s *Set) Table(p Profile) Table {
	return s.Tables[p]
}

// Validate checks that every profile is present and that each table
// partitions [0, ∞) without gaps or overlaps.
func (s *Set) Validate() error {
	for _, p := range Profiles {
		t, ok := s.Tables[p]
		if !ok || len(t) == 0 {
			return fmt.Errorf("%w: missing table %q", ErrInvalidTable, p)
		}
		if err := t.validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTable, p, err)
		}
	}
	return nil
}

func (t Table) validate() error {
	if t[0].LowerBound != 0 {
		return fmt.Errorf("first bracket starts at %v, not 0", t[0].LowerBound)
	}
	last := len(t) - 1
	for i, b := range t {
		if b.RatePercent < 0 || b.RatePercent > 100 || math.IsNaN(b.RatePercent) {
			return fmt.Errorf("bracket %d: rate %v out of range", i, b.RatePercent)
		}
		if b.Deduction < 0 {
			return fmt.Errorf("bracket %d: negative deduction", i)
		}
		if b.SingleRate && b.Deduction != 0 {
			return fmt.Errorf("bracket %d: single-rate bracket with deduction", i)
		}
		if b.UpperBound == nil {
			if i != last {
				return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i)
			}
			continue
		}
		if i == last {
			return fmt.Errorf("last bracket must be unbounded")
		}
		if *b.UpperBound <= b.LowerBound {
			return fmt.Errorf("bracket %d: upper %v not above lower %v", i, *b.UpperBound, b.LowerBound)
		}
		if next := t[i+1].LowerBound; next != *b.UpperBound {
			return fmt.Errorf("bracket %d: ends at %v but next starts at %v", i, *b.UpperBound, next)
		}
	}
	return nil
}

// Parse decodes and validates a YAML table document.
func Parse(data []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse tax tables: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tax tables: %w", err)
	}
	return Parse(data)
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
	defaultErr  error
)

// Default returns the embedded tables, parsed on first use.
func Default() (*Set, error) {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = Parse(embeddedTables)
	})
	return defaultSet, defaultErr
}

// MustDefault is Default for callers that treat a broken embedded table as a
// build defect.
func MustDefault() *Set {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}
