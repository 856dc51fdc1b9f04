// Package json renders a check report as a machine-readable document.
package json

import (
	"encoding/json"
	"io"

	"github.com/EricDasha/mc-mod-compat-check/mccompat/presenter/models"
)

type Presenter struct {
	document models.Document
}

func NewPresenter(doc models.Document) *Presenter {
	return &Presenter{document: doc}
}

func (p *Presenter) Present(output io.Writer) error {
	enc := json.NewEncoder(output)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(p.document)
}
