package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Document is the page being annotated: plain text lines plus rectangular
// annotation regions in text coordinates.
type Document struct {
	Title       string           `yaml:"title" validate:"required,max=200"`
	Text        string           `yaml:"text"`
	Annotations []*DocAnnotation `yaml:"annotations" validate:"dive"`

	lines []string
}

// DocAnnotation is one annotated region of a Document.
type DocAnnotation struct {
	Key    string `yaml:"id" validate:"required,max=64"`
	Label  string `yaml:"label" validate:"max=80"`
	Body   string `yaml:"body"`
	X      int    `yaml:"x" validate:"min=0"`
	Y      int    `yaml:"y" validate:"min=0"`
	Width  int    `yaml:"width" validate:"required,min=1"`
	Height int    `yaml:"height" validate:"required,min=1"`
}

func (a *DocAnnotation) ID() string {
	return a.Key
}

func (a *DocAnnotation) IsEqual(other Annotation) bool {
	if other == nil {
		return false
	}
	return other.ID() == a.Key
}

// Region is the annotation's rectangle in document coordinates.
func (a *DocAnnotation) Region() Rect {
	return Rect{X: float64(a.X), Y: float64(a.Y), Width: float64(a.Width), Height: float64(a.Height)}
}

func (a *DocAnnotation) DisplayName() string {
	if a.Label != "" {
		return a.Label
	}
	return a.Key
}

func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	doc.lines = strings.Split(strings.TrimRight(doc.Text, "\n"), "\n")
	return &doc, nil
}

// Validate checks struct constraints and that annotation ids are unique.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return formatValidationError(err)
	}
	seen := make(map[string]bool, len(d.Annotations))
	for _, a := range d.Annotations {
		if a == nil {
			return errors.New("annotations: empty entry")
		}
		if seen[a.Key] {
			return fmt.Errorf("annotations: duplicate id %q", a.Key)
		}
		seen[a.Key] = true
	}
	return nil
}

func (d *Document) Lines() []string {
	return d.lines
}

// Size is the extent of text and annotations together.
func (d *Document) Size() (width, height int) {
	height = len(d.lines)
	for _, line := range d.lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	for _, a := range d.Annotations {
		width = max(width, a.X+a.Width+1)
		height = max(height, a.Y+a.Height)
	}
	return width, height
}

func (d *Document) Annotation(id string) *DocAnnotation {
	for _, a := range d.Annotations {
		if a.Key == id {
			return a
		}
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, e.Param())
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, e.Param())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}
	return err
}

const sampleDocumentYAML = `title: Welcome to netcanvas
text: |
  netcanvas links annotations on a page.

  Hover a highlighted region and press the mouse to start an arrow.
  Move onto another region and press again to connect the two.
  Esc cancels a connection in progress.

  +---------------------------------------------+
  |  Outer region                               |
  |                                             |
  |     +----------------+   +---------------+  |
  |     | Nested one     |   | Nested two    |  |
  |     +----------------+   +---------------+  |
  |                                             |
  +---------------------------------------------+

  Scroll with the wheel or j/k; the overlay follows the page.

  Footnote region down here.
annotations:
  - id: intro
    label: Intro
    body: The opening sentence.
    x: 0
    y: 0
    width: 38
    height: 1
  - id: outer
    label: Outer region
    x: 0
    y: 6
    width: 47
    height: 8
  - id: nested-one
    label: Nested one
    x: 6
    y: 9
    width: 18
    height: 3
  - id: nested-two
    label: Nested two
    x: 27
    y: 9
    width: 17
    height: 3
  - id: footnote
    label: Footnote
    x: 0
    y: 17
    width: 26
    height: 1
`

func sampleDocument() *Document {
	doc, err := ParseDocument([]byte(sampleDocumentYAML))
	if err != nil {
		panic(err)
	}
	return doc
}
