package chrono

import (
	"time"

	"github.com/ncruces/go-strftime"
)

type (
	// Formatter renders a time according to a template. The template
	// grammar belongs to the Formatter; DateTime forwards it unchanged
	Formatter interface {
		Format(t time.Time, template string) string
	}

	// StrftimeFormatter reads templates as strftime directives, such as
	// "%Y-%m-%d %H:%M"
	StrftimeFormatter struct{}

	// LayoutFormatter reads templates as Go reference layouts, such as
	// "2006-01-02 15:04"
	LayoutFormatter struct{}
)

func (StrftimeFormatter) Format(t time.Time, template string) string {
	return strftime.Format(template, t)
}

func (LayoutFormatter) Format(t time.Time, layout string) string {
	return t.Format(layout)
}
