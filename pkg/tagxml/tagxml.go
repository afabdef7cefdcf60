package tagxml

import (
	"encoding/xml"
	"os"
	"runtime"
	"time"

	"github.com/ostafen/tagscan/pkg/sysinfo"
)

const XmlOutputVersion = "1.0"

// ReportHeader is written once, before the file objects.
type ReportHeader struct {
	XMLName   xml.Name `xml:"tagscan"`
	XmlOutput string   `xml:"xmloutputversion,attr,omitempty"`
	Creator   Creator  `xml:"creator"`
	Source    Source   `xml:"source"`
}

type Creator struct {
	Package string  `xml:"package"`
	Version string  `xml:"version"`
	Env     ExecEnv `xml:"execution_environment"`
}

type ExecEnv struct {
	OS        string `xml:"os_sysname"`
	OSRelease string `xml:"os_release"`
	OSVersion string `xml:"os_version"`
	Arch      string `xml:"arch"`
	Host      string `xml:"host"`
	Start     string `xml:"start_time"`
}

type Source struct {
	Inputs []string `xml:"input"`
}

// FileObject describes the tags found in one file.
type FileObject struct {
	XMLName  xml.Name    `xml:"fileobject"`
	Filename string      `xml:"filename"`
	FileSize int64       `xml:"filesize"`
	Error    string      `xml:"error,omitempty"`
	V1       *V1         `xml:"id3v1,omitempty"`
	V1Ext    *V1Extended `xml:"id3v1_extended,omitempty"`
	V2       *V2         `xml:"id3v2,omitempty"`
}

type V1 struct {
	Version string `xml:"version,attr"`
	Title   string `xml:"title"`
	Artist  string `xml:"artist"`
	Album   string `xml:"album"`
	Year    string `xml:"year"`
	Comment string `xml:"comment"`
	Track   uint8  `xml:"track,omitempty"`
	Genre   uint8  `xml:"genre"`
	// GenreName is the resolved name of Genre.
	GenreName string `xml:"genre_name"`
}

type V1Extended struct {
	Title  string `xml:"title"`
	Artist string `xml:"artist"`
	Album  string `xml:"album"`
	Speed  uint8  `xml:"speed"`
	Genre  string `xml:"genre"`
	Start  string `xml:"start"`
	End    string `xml:"end"`
}

type V2 struct {
	Version           string  `xml:"version,attr"`
	Size              uint32  `xml:"size,attr"`
	Unsynchronised    bool    `xml:"unsynchronised,attr"`
	HasExtendedHeader bool    `xml:"extended_header,attr"`
	Experimental      bool    `xml:"experimental,attr"`
	Error             string  `xml:"error,omitempty"`
	Frames            []Frame `xml:"frame"`
}

type Frame struct {
	ID    string `xml:"id,attr"`
	Size  uint32 `xml:"size,attr"`
	Flags string `xml:"flags,attr,omitempty"`
	Text  string `xml:",chardata"`
}

// GetExecEnv describes the machine running the scan.
func GetExecEnv() ExecEnv {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown_host"
	}

	sys := sysinfo.Stat()

	return ExecEnv{
		OS:        sys.Name,
		OSRelease: sys.Release,
		OSVersion: sys.Version,
		Arch:      runtime.GOARCH,
		Host:      host,
		Start:     time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}
}
