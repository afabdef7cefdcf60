package tagxml

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadReport(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteHeader(ReportHeader{
		XmlOutput: XmlOutputVersion,
		Creator: Creator{
			Package: "tagscan",
			Version: "test",
			Env:     GetExecEnv(),
		},
		Source: Source{Inputs: []string{"/music"}},
	}))

	objs := []FileObject{
		{
			Filename: "/music/a.mp3",
			FileSize: 4096,
			V1:       &V1{Version: "1.1", Title: "Title", Track: 3, Genre: 17, GenreName: "Rock"},
			V2: &V2{
				Version: "3.0",
				Size:    257,
				Frames:  []Frame{{ID: "TIT2", Size: 6, Text: "Title"}, {ID: "APIC", Size: 100, Flags: "compressed"}},
			},
		},
		{
			Filename: "/music/b.mp3",
			FileSize: 10,
			Error:    "file too small",
		},
	}
	for _, obj := range objs {
		require.NoError(t, w.WriteFileObject(obj))
	}
	require.NoError(t, w.Close())

	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte(xml.Header)))
	require.Contains(t, buf.String(), `<tagscan xmloutputversion="1.0">`)
	require.Contains(t, buf.String(), "<package>tagscan</package>")

	read, err := ReadFileObjects(&buf)
	require.NoError(t, err)
	require.Len(t, read, 2)

	for i := range read {
		read[i].XMLName = xml.Name{}
	}
	require.Equal(t, objs, read)
}

func TestReadFileObjectsInvalid(t *testing.T) {
	_, err := ReadFileObjects(bytes.NewBufferString("<tagscan><fileobject><filesize>abc</filesize></fileobject></tagscan>"))
	require.Error(t, err)
}
