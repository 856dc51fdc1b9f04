// Package presenter renders a check report in the format the user asked
// for.
package presenter

import (
	"io"

	"github.com/EricDasha/mc-mod-compat-check/mccompat/presenter/json"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/presenter/models"
	"github.com/EricDasha/mc-mod-compat-check/mccompat/presenter/table"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer) error
}

// GetPresenter retrieves a Presenter that matches a CLI option.
func GetPresenter(option Option, doc models.Document) Presenter {
	switch option {
	case JSONPresenter:
		return json.NewPresenter(doc)
	case TablePresenter:
		return table.NewPresenter(doc)
	default:
		return nil
	}
}
