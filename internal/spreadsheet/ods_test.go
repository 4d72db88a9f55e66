package spreadsheet

import (
	"archive/zip"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const odsContentXML = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content
  xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
  xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"
  xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0">
  <office:body>
    <office:spreadsheet>
      <table:table table:name="Sheet1">
        <table:table-row>
          <table:table-cell><text:p>prompt</text:p></table:table-cell>
          <table:table-cell>
            <text:p>Hello <text:span>world</text:span> &amp; friends</text:p>
            <text:p>second line</text:p>
          </table:table-cell>
          <table:table-cell table:number-columns-repeated="1000"/>
        </table:table-row>
        <table:table-row>
          <table:table-cell><text:p>response</text:p></table:table-cell>
          <table:table-cell><text:p>one<text:line-break/>two</text:p></table:table-cell>
        </table:table-row>
      </table:table>
    </office:spreadsheet>
  </office:body>
</office:document-content>`

func writeODS(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.ods")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create ods: %v", err)
	}
	zw := zip.NewWriter(file)
	w, err := zw.Create("content.xml")
	if err != nil {
		t.Fatalf("create content.xml: %v", err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("write content.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestReadODS(t *testing.T) {
	rows, err := ReadODS(writeODS(t, odsContentXML))
	if err != nil {
		t.Fatalf("ReadODS error: %v", err)
	}

	want := [][]string{
		{"prompt", "Hello world & friends\nsecond line"},
		{"response", "one\ntwo"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("unexpected rows:\ngot:  %q\nwant: %q", rows, want)
	}
}

func TestReadODSNoSheets(t *testing.T) {
	empty := `<?xml version="1.0"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0">
  <office:body><office:spreadsheet/></office:body>
</office:document-content>`
	if _, err := ReadODS(writeODS(t, empty)); err == nil {
		t.Fatalf("expected error for spreadsheet without sheets")
	}
}

func TestReadODSMissingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.ods")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create ods: %v", err)
	}
	zw := zip.NewWriter(file)
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	if _, err := ReadODS(path); err == nil {
		t.Fatalf("expected error for missing content.xml")
	}
}
