package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/renzk/shadingwheel/pkg/wheel"
)

type styles struct {
	title lipgloss.Style
	key   lipgloss.Style
	value lipgloss.Style
	dim   lipgloss.Style
	box   lipgloss.Style
}

var outputStyles = styles{
	title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
	key:   lipgloss.NewStyle().Width(18).Foreground(lipgloss.ANSIColor(4)),
	value: lipgloss.NewStyle().Bold(true),
	dim:   lipgloss.NewStyle().Faint(true),
	box:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// renderConfig formats a configuration for the terminal
func renderConfig(path string, cfg wheel.Config) string {
	s := outputStyles
	rows := [][2]string{
		{"Wheel radius", fmt.Sprintf("%g", cfg.WheelRadius)},
		{"Dead zone radius", fmt.Sprintf("%g", cfg.DeadZoneRadius)},
		{"Activation key", cfg.ActivationKey.String()},
		{"Show dead zone", yesNo(cfg.ShowDeadZone)},
		{"Show label", yesNo(cfg.ShowLabel)},
		{"Show radius", yesNo(cfg.ShowRadius)},
	}
	for _, d := range []wheel.Direction{wheel.Up, wheel.Down, wheel.Left, wheel.Right} {
		rows = append(rows, [2]string{d.String(), cfg.Order.For(d).Label()})
	}

	var b strings.Builder
	b.WriteString(s.title.Render("Shading Wheel"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(s.key.Render(r[0]))
		b.WriteString(s.value.Render(r[1]))
		b.WriteString("\n")
	}
	if path == "" {
		path = "(in memory)"
	}
	b.WriteString(s.dim.Render(path))

	return s.box.Render(b.String())
}

// renderSettings lists stored values as sorted dotted keys
func renderSettings(settings map[string]any) string {
	flat := make(map[string]any)
	flatten("", settings, flat)
	if len(flat) == 0 {
		return outputStyles.dim.Render("(no stored preferences)")
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s = %v", k, flat[k]))
	}
	return strings.Join(lines, "\n")
}

func flatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}
