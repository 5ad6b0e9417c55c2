package svgpath

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// PathElement is a <path> element of an SVG document.
type PathElement struct {
	ID string
	// Group is the id of the closest enclosing <g>, if any.
	Group string
	D     string
}

// Draw parses and replays the element's path data onto sink.
func (e PathElement) Draw(sink Sink, h DiagnosticHandler) {
	Draw(e.D, sink, h)
}

// Svg holds the path elements of an SVG document in document order.
// Everything that is not a <path> is skipped.
type Svg struct {
	Title string
	Paths []PathElement
}

// group walks a <g> element, adding its paths to the owning Svg.
type group struct {
	id    string
	owner *Svg
}

func pathElement(start xml.StartElement, groupID string) PathElement {
	e := PathElement{Group: groupID}
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			e.ID = attr.Value
		case "d":
			e.D = attr.Value
		}
	}
	return e
}

// walk consumes tokens up to the end of the current element.
func (s *Svg) walk(decoder *xml.Decoder, groupID string) error {
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "g":
				g := &group{owner: s}
				if err = decoder.DecodeElement(g, &tok); err != nil {
					return fmt.Errorf("error decoding group element: %w", err)
				}
				continue
			case "path":
				s.Paths = append(s.Paths, pathElement(tok, groupID))
			case "title":
				if groupID == "" && s.Title == "" {
					var title string
					if err = decoder.DecodeElement(&title, &tok); err != nil {
						return fmt.Errorf("error decoding title: %w", err)
					}
					s.Title = strings.TrimSpace(title)
					continue
				}
			}
			if err = decoder.Skip(); err != nil {
				return err
			}

		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "id" {
			g.id = attr.Value
		}
	}
	return g.owner.walk(decoder, g.id)
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	if start.Name.Local != "svg" {
		return fmt.Errorf("expected <svg> root element, got <%s>", start.Name.Local)
	}
	return s.walk(decoder, "")
}

// ReadSvg decodes an SVG document from r. Documents in a charset other
// than UTF-8 are converted using their XML declaration.
func ReadSvg(r io.Reader) (*Svg, error) {
	var svg Svg
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(&svg); err != nil {
		return nil, fmt.Errorf("ReadSvg: %w", err)
	}
	return &svg, nil
}

// ParseSvg decodes an SVG document held in a string.
func ParseSvg(str string) (*Svg, error) {
	return ReadSvg(strings.NewReader(str))
}

// ReadPathData returns every <path> element of the SVG document in r.
func ReadPathData(r io.Reader) ([]PathElement, error) {
	svg, err := ReadSvg(r)
	if err != nil {
		return nil, err
	}
	return svg.Paths, nil
}
