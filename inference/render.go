package inference

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// View is a Result rendered as the three lists shown to users
type View struct {
	Generated  []string `json:"generated" yaml:"generated"`
	Simplified []string `json:"simplified" yaml:"simplified"`
	Solution   []string `json:"solution" yaml:"solution"`
	Undeclared []string `json:"undeclared,omitempty" yaml:"undeclared,omitempty"`
}

// EmptyView is what is displayed for input that could not be inferred
var EmptyView = View{Generated: []string{}, Simplified: []string{}, Solution: []string{}}

// View renders r. Generated constraints carry their rule when withRules is set
func (r *Result) View(withRules bool) View {
	v := View{
		Generated:  make([]string, 0, len(r.Generated)),
		Simplified: make([]string, 0, len(r.Simplified)),
		Solution:   make([]string, 0, len(r.Solution.Entries)),
	}
	if len(r.Undeclared) > 0 {
		v.Undeclared = r.Undeclared
	}
	for _, c := range r.Generated {
		if withRules {
			v.Generated = append(v.Generated, c.StringWithRule())
		} else {
			v.Generated = append(v.Generated, c.String())
		}
	}
	for _, c := range r.Simplified {
		v.Simplified = append(v.Simplified, c.String())
	}
	for _, e := range r.Solution.Entries {
		v.Solution = append(v.Solution, e.String())
	}
	return v
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
)

// Render formats v; color only affects FormatText
func (v View) Render(format Format, color bool) (string, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("could not render json: %w", err)
		}
		return string(b) + "\n", nil
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("could not render yaml: %w", err)
		}
		return string(b), nil
	case FormatText, "":
		return v.text(color), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func (v View) text(color bool) string {
	style := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	sb := strings.Builder{}
	section := func(title string, lines []string) {
		sb.WriteString(style(headingStyle, "# "+title))
		sb.WriteByte('\n')
		for _, line := range lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	section("generated constraints", v.Generated)
	sb.WriteByte('\n')
	section("simplified constraints", v.Simplified)
	sb.WriteByte('\n')
	section("solution", v.Solution)
	if len(v.Undeclared) > 0 {
		sb.WriteByte('\n')
		sb.WriteString(style(warningStyle, "# undeclared classes: "+strings.Join(v.Undeclared, ", ")))
		sb.WriteByte('\n')
	}
	return sb.String()
}
