package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Section is one named top-level key of the document.
type Section struct {
	Name string
	// List reports whether the section is an ordered list of records.
	List bool

	get    func(*Document) any
	decode func(*Document, []byte) error
	typ    reflect.Type
}

// Get returns the section's current value in d.
func (s Section) Get(d *Document) any { return s.get(d) }

// Apply strictly decodes raw into the section of d, replacing its previous
// value. Unknown fields and trailing data are rejected.
func (s Section) Apply(d *Document, raw []byte) error {
	if err := s.decode(d, raw); err != nil {
		return err
	}
	d.Normalize()
	return nil
}

func section[T any](name string, ptr func(*Document) *T) Section {
	var zero T
	t := reflect.TypeOf(zero)
	return Section{
		Name: name,
		List: t.Kind() == reflect.Slice,
		typ:  t,
		get:  func(d *Document) any { return *ptr(d) },
		decode: func(d *Document, raw []byte) error {
			var v T
			if err := DecodeStrict(raw, &v); err != nil {
				return err
			}
			*ptr(d) = v
			return nil
		},
	}
}

var sections = []Section{
	section("metadata", func(d *Document) *Metadata { return &d.Metadata }),
	section("company", func(d *Document) *Company { return &d.Company }),
	section("socialMedia", func(d *Document) *SocialMedia { return &d.SocialMedia }),
	section("buyButtons", func(d *Document) *[]BuyButton { return &d.BuyButtons }),
	section("mainHeadings", func(d *Document) *MainHeadings { return &d.MainHeadings }),
	section("productFeatures", func(d *Document) *[]ProductFeature { return &d.ProductFeatures }),
	section("testimonials", func(d *Document) *[]Testimonial { return &d.Testimonials }),
	section("detailedTestimonials", func(d *Document) *[]DetailedTestimonial { return &d.DetailedTestimonials }),
	section("targetAudience", func(d *Document) *[]AudienceItem { return &d.TargetAudience }),
	section("howToUse", func(d *Document) *[]HowToUseStep { return &d.HowToUse }),
	section("faq", func(d *Document) *[]FAQ { return &d.FAQ }),
	section("images", func(d *Document) *Images { return &d.Images }),
}

var sectionIndex = func() map[string]Section {
	m := make(map[string]Section, len(sections))
	for _, s := range sections {
		m[s.Name] = s
	}
	return m
}()

// LookupSection returns the section registered under name. lastUpdated and
// version are document fields, not sections.
func LookupSection(name string) (Section, bool) {
	s, ok := sectionIndex[name]
	return s, ok
}

// Sections returns all sections in document order.
func Sections() []Section {
	return append([]Section(nil), sections...)
}

// SectionNames returns the section keys in document order.
func SectionNames() []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.Name
	}
	return out
}

// DecodeStrict unmarshals a single JSON value into v, rejecting unknown
// fields and anything after the value.
func DecodeStrict(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected data after JSON value")
	}
	return nil
}
