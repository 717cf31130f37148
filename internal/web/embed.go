// Package web holds the embedded HTML templates of the upload form.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templateFiles embed.FS

const IndexTemplate = "index"

// NewEngine returns a Fiber view engine reading from the embedded templates.
func NewEngine() (*html.Engine, error) {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, err
	}
	return html.NewFileSystem(http.FS(sub), ".html"), nil
}
