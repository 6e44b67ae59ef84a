// Package document provides annotation document persistence. A document
// is the finalized scene serialized as JSON with an explicit type tag
// per object, in z-order, including style fields.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"openpen/internal/annotation"
	"openpen/pkg/colorutil"
	"openpen/pkg/geometry"
)

// Version is the current document format version.
const Version = 1

// File represents a saved annotation document (.openpen.json).
type File struct {
	Version  int       `json:"version"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
	Objects  []Record  `json:"objects"`
}

// Record is one serialized annotation object. Type is one of "stroke",
// "polygon", or "text"; the point fields used depend on it.
type Record struct {
	Type      string             `json:"type"`
	ID        string             `json:"id"`
	Color     string             `json:"color"`
	Thickness float64            `json:"thickness"`
	Points    []geometry.Point2D `json:"points,omitempty"`
	Anchor    *geometry.Point2D  `json:"anchor,omitempty"`
	Text      string             `json:"text,omitempty"`
}

// FromObjects builds a document from finalized objects in z-order.
func FromObjects(objects []annotation.Object) (*File, error) {
	now := time.Now().UTC()
	f := &File{
		Version:  Version,
		Created:  now,
		Modified: now,
		Objects:  make([]Record, 0, len(objects)),
	}
	for _, obj := range objects {
		rec, err := encode(obj)
		if err != nil {
			return nil, err
		}
		f.Objects = append(f.Objects, rec)
	}
	return f, nil
}

// Decode reconstructs the document's objects in z-order.
func (f *File) Decode() ([]annotation.Object, error) {
	if f.Version > Version {
		return nil, fmt.Errorf("document version %d is newer than supported version %d",
			f.Version, Version)
	}
	objects := make([]annotation.Object, 0, len(f.Objects))
	for i, rec := range f.Objects {
		obj, err := decode(rec)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// Save writes the finalized objects to path as an indented JSON document.
func Save(path string, objects []annotation.Object) error {
	f, err := FromObjects(objects)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a document from path and reconstructs its objects.
func Load(path string) ([]annotation.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return f.Decode()
}

func encode(obj annotation.Object) (Record, error) {
	style := obj.ObjectStyle()
	rec := Record{
		Type:      string(obj.ObjectKind()),
		ID:        obj.ObjectID(),
		Color:     colorutil.ToHex(style.Color),
		Thickness: style.Thickness,
	}
	switch o := obj.(type) {
	case *annotation.Stroke:
		rec.Points = o.Points()
	case *annotation.Polygon:
		rec.Points = o.Points()
	case *annotation.TextBox:
		anchor := o.Anchor()
		rec.Anchor = &anchor
		rec.Text = o.Text()
	default:
		return Record{}, fmt.Errorf("unsupported object kind %q", obj.ObjectKind())
	}
	return rec, nil
}

func decode(rec Record) (annotation.Object, error) {
	col, err := colorutil.ParseHex(rec.Color)
	if err != nil {
		return nil, err
	}
	style := annotation.Style{Color: col, Thickness: rec.Thickness}

	switch annotation.Kind(rec.Type) {
	case annotation.KindStroke:
		return annotation.RestoreStroke(rec.ID, rec.Points, style)
	case annotation.KindPolygon:
		return annotation.RestorePolygon(rec.ID, rec.Points, style)
	case annotation.KindText:
		if rec.Anchor == nil {
			return nil, fmt.Errorf("text object %q has no anchor", rec.ID)
		}
		return annotation.RestoreTextBox(rec.ID, *rec.Anchor, rec.Text, style)
	default:
		return nil, fmt.Errorf("unknown object type %q", rec.Type)
	}
}
