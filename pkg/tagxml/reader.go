package tagxml

import (
	"encoding/xml"
	"io"
)

// ReadFileObjects parses and returns all <fileobject> elements from r.
func ReadFileObjects(r io.Reader) ([]FileObject, error) {
	dec := xml.NewDecoder(r)
	var objects []FileObject

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == "fileobject" {
			var obj FileObject
			if err := dec.DecodeElement(&obj, &start); err != nil {
				return nil, err
			}
			objects = append(objects, obj)
		}
	}
	return objects, nil
}
