package varerr

import (
	"fmt"
	"go/token"
	"log/slog"
	"strings"
)

type Errors struct {
	errs []VarError
}

func (r *Errors) With(err ...VarError) *Errors {
	if r == nil {
		return &Errors{errs: err}
	}
	r.errs = append(r.errs, err...)
	return r
}

func (r *Errors) Merge(err *Errors) *Errors {
	if r == nil {
		return err
	}
	if err == nil || len(err.errs) == 0 {
		return r
	}
	return r.With(err.errs...)
}

func (r *Errors) Errors() []VarError {
	if r == nil {
		return nil
	}
	return r.errs
}

func (r *Errors) HasError() bool {
	if r == nil {
		return false
	}
	return len(r.errs) > 0
}

// Error makes Errors usable as a plain error, one formatted error per line
func (r *Errors) Error() string {
	lines := make([]string, 0, len(r.Errors()))
	for _, e := range r.Errors() {
		lines = append(lines, FormatWithCode(e))
	}
	return strings.Join(lines, "\n")
}

// FormatWithSource renders every error prefixed by its file:line:column in src
func (r *Errors) FormatWithSource(filename, src string) string {
	fset := token.NewFileSet()
	file := fset.AddFile(filename, -1, len(src)+1)
	file.SetLinesForContent([]byte(src))
	sb := strings.Builder{}
	for i, e := range r.Errors() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(FormatAt(e, file))
	}
	return sb.String()
}

func (r *Errors) LogValue() slog.Value {
	var vals []slog.Attr
	for i, v := range r.Errors() {
		vals = append(vals, slog.Attr{
			Key: fmt.Sprint("e", i),
			Value: slog.GroupValue(
				slog.Attr{
					Key:   "msg",
					Value: slog.StringValue(FormatWithCode(v)),
				},
			),
		})
	}
	return slog.GroupValue(vals...)
}
