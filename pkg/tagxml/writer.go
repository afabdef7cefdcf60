package tagxml

import (
	"encoding/xml"
	"io"
)

// Writer streams a report: a header, any number of file objects, then
// the closing root element written by Close.
type Writer struct {
	w   io.Writer
	enc *xml.Encoder
}

func NewWriter(w io.Writer) *Writer {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	return &Writer{
		w:   w,
		enc: enc,
	}
}

func (w *Writer) WriteHeader(hdr ReportHeader) error {
	if _, err := io.WriteString(w.w, xml.Header); err != nil {
		return err
	}

	// the root element stays open until Close, so it is written as a token
	// and the header fields are encoded as its children.
	start := xml.StartElement{
		Name: xml.Name{Local: "tagscan"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmloutputversion"}, Value: hdr.XmlOutput},
		},
	}
	if err := w.enc.EncodeToken(start); err != nil {
		return err
	}

	if err := w.enc.EncodeElement(hdr.Creator, xml.StartElement{Name: xml.Name{Local: "creator"}}); err != nil {
		return err
	}
	return w.enc.EncodeElement(hdr.Source, xml.StartElement{Name: xml.Name{Local: "source"}})
}

func (w *Writer) WriteFileObject(obj FileObject) error {
	return w.enc.Encode(obj)
}

// Close writes the closing root element and flushes the encoder.
func (w *Writer) Close() error {
	if err := w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: "tagscan"}}); err != nil {
		return err
	}
	return w.enc.Flush()
}
