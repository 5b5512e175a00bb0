package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/legacypay/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	infoTxtColor  = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor  = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor = lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
)

type levelStyle struct {
	icon  string
	color lipgloss.AdaptiveColor
}

var levelStyles = map[log.Level]levelStyle{
	log.ErrorLevel: {"❌", errorTxtColor},
	log.WarnLevel:  {"⚠️", warnTxtColor},
	log.InfoLevel:  {"ℹ️", infoTxtColor},
	log.DebugLevel: {"🐛", debugTxtColor},
}

var keyColors = map[string]lipgloss.AdaptiveColor{
	"error":      errorTxtColor,
	"prefix":     debugTxtColor,
	"time":       debugTxtColor,
	"session_id": infoTxtColor,
	"amount":     infoTxtColor,
	"currency":   infoTxtColor,
	"provider":   infoTxtColor,
}

// setupLogger builds the process logger. Logs go to w, which defaults to
// stderr so stdout only carries checkout output.
func setupLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if cfg == nil {
		cfg = &config.Log{Format: "text"}
	}

	styles := log.DefaultStyles()
	for lvl, st := range levelStyles {
		styles.Levels[lvl] = lipgloss.NewStyle().
			SetString(st.icon).
			Bold(true).
			Padding(0, 1).
			Foreground(st.color)
	}
	for key, color := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(color)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formattersMap := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"text":   log.TextFormatter,
		"logfmt": log.LogfmtFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}
