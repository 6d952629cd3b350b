package certificate

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed templates/certificates.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.New("certificates.html.tmpl").Funcs(template.FuncMap{
	"deref": deref,
	"hours": FormatHours,
}).ParseFS(templateFS, "templates/certificates.html.tmpl"))

// Layout carries the fixed parts of every page.
type Layout struct {
	Title       string
	SchoolName  string
	LogoPath    string
	LogoDataURI template.URL
	Signatories []string
	GeneratedOn string
}

// NewLayout builds a layout, embedding the logo at logoPath when it exists.
func NewLayout(title, schoolName, logoPath string, signatories []string, now time.Time) Layout {
	return Layout{
		Title:       title,
		SchoolName:  schoolName,
		LogoPath:    logoPath,
		LogoDataURI: LoadLogoDataURI(logoPath),
		Signatories: signatories,
		GeneratedOn: now.Format("02/01/2006"),
	}
}

// LoadLogoDataURI reads an image file into a data URI. A missing or
// unreadable file yields an empty URI and the school name is printed instead.
func LoadLogoDataURI(path string) template.URL {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = "image/png"
	}
	return template.URL(fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(raw)))
}

type htmlView struct {
	Layout
	Pages []Page
}

// RenderHTML renders the document as print-paginated markup.
func RenderHTML(doc Document, layout Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, htmlView{Layout: layout, Pages: doc.Pages}); err != nil {
		return nil, fmt.Errorf("render certificate html: %w", err)
	}
	return buf.Bytes(), nil
}
