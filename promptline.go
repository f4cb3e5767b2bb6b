// Package promptline provides small, composable utilities for building
// shell-prompt style status lines: environment and repository queries
// (env), formatting helpers (format), and a styled-writer abstraction
// (styling) with an ANSI-emitting and a plain backend (writers).
//
// The Renderer in this package is a thin convenience tying the pieces
// together; every subpackage is usable on its own.
package promptline

import (
	"io"
	"os"
	"time"

	"github.com/hnimtadd/promptline/env"
	"github.com/hnimtadd/promptline/format"
	"github.com/hnimtadd/promptline/logger"
	"github.com/hnimtadd/promptline/styling"
	"github.com/hnimtadd/promptline/writers"
	"github.com/mattn/go-isatty"
)

// Renderer writes prompt lines through a styled writer backend.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	writer styling.StyledWriter
	logger logger.Logger
}

// Options configure a Renderer.
type Options struct {
	// Output is the stream the prompt is written to. Defaults to
	// os.Stdout.
	Output io.Writer

	// ForceStyle selects the ANSI backend even when Output is not a
	// terminal.
	ForceStyle bool

	Logger logger.Logger
}

// NewRenderer builds a Renderer, picking the ANSI backend when the output
// is a terminal (or ForceStyle is set) and the plain backend otherwise.
func NewRenderer(opts Options) *Renderer {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}

	styled := opts.ForceStyle
	if !styled {
		if file, ok := output.(*os.File); ok {
			styled = isatty.IsTerminal(file.Fd()) ||
				isatty.IsCygwinTerminal(file.Fd())
		}
	}

	var writer styling.StyledWriter
	if styled {
		writer = writers.NewANSIWriter(output)
	} else {
		writer = writers.NewPlainWriter(output)
	}
	return &Renderer{writer: writer, logger: log}
}

// Writer exposes the underlying styled writer for callers composing their
// own segments.
func (r *Renderer) Writer() styling.StyledWriter {
	return r.writer
}

// Info is the state a prompt line is rendered from. Zero pieces are
// skipped.
type Info struct {
	Username string
	Hostname string
	Elevated bool

	// Venv is the active virtualenv or conda environment name.
	Venv string

	// Dir is the display form of the working directory.
	Dir string

	Head       *env.Head
	Status     *env.StatusSummary
	StashCount int

	// LastExitCode is the exit code of the previous command, when known.
	LastExitCode *env.ExitCode

	// LastDuration is how long the previous command ran, when known.
	LastDuration *time.Duration
}

// CollectInfo queries the environment for everything Render can show.
// Absent collaborators are skipped; genuine failures are logged at debug
// level and their piece skipped.
func (r *Renderer) CollectInfo() Info {
	var info Info

	if username, err := env.Username(); err == nil {
		info.Username = username
	} else {
		r.logger.Debug("query username", "error", err)
	}
	if hostname, err := env.Hostname(); err == nil {
		info.Hostname = hostname
	} else {
		r.logger.Debug("query hostname", "error", err)
	}
	if elevated, err := env.IsRootOrElevated(); err == nil {
		info.Elevated = elevated
	} else {
		r.logger.Debug("query access rights", "error", err)
	}

	if venv, ok := env.VenvFromEnv(); ok {
		info.Venv = venv
	} else if conda, ok := env.CondaEnvFromEnv(); ok {
		info.Venv = conda
	}

	if dir, _, err := env.CurrentDirAbbreviatedHome(); err == nil {
		info.Dir = dir
	} else {
		r.logger.Debug("query working directory", "error", err)
	}

	r.collectRepo(&info)
	return info
}

func (r *Renderer) collectRepo(info *Info) {
	dir, err := os.Getwd()
	if err != nil {
		return
	}
	repo, err := env.OpenRepo(dir)
	if err != nil {
		// Not being inside a repository is the common case.
		return
	}
	if head, err := env.QueryHead(repo); err == nil {
		info.Head = head
	} else {
		r.logger.Debug("query repository head", "error", err)
	}
	if status, err := env.QueryStatusSummary(repo); err == nil {
		info.Status = status
	} else {
		r.logger.Debug("query repository status", "error", err)
	}
	if stashes, err := env.QueryStashCount(repo); err == nil {
		info.StashCount = stashes
	} else {
		r.logger.Debug("query stash count", "error", err)
	}
}

var (
	userStyle = styling.StyleChange{Bold: styling.Set(true)}
	rootStyle = styling.StyleChange{
		Bold:       styling.Set(true),
		Foreground: styling.Set(styling.BasicColor(styling.BrightRed)),
	}
	venvStyle = styling.StyleChange{
		Foreground: styling.Set(styling.BasicColor(styling.DarkCyan)),
	}
	dirStyle = styling.StyleChange{
		Foreground: styling.Set(styling.BasicColor(styling.BrightBlue)),
	}
	repoStyle = styling.StyleChange{
		Foreground: styling.Set(styling.BasicColor(styling.DarkYellow)),
	}
	durationStyle = styling.StyleChange{
		Foreground: styling.Set(styling.BasicColor(styling.DarkGray)),
	}
)

// Render writes one prompt line from info and finishes with a full style
// reset. The first write error aborts the render.
func (r *Renderer) Render(info Info) error {
	w := r.writer
	preceded := false

	space := func() error {
		if !preceded {
			return nil
		}
		_, err := io.WriteString(w, " ")
		return err
	}

	if info.Username != "" {
		style := userStyle
		if info.Elevated {
			style = rootStyle
		}
		if err := styling.Writef(w, style, "%s", info.Username); err != nil {
			return err
		}
		if info.Hostname != "" {
			if _, err := io.WriteString(w, "@"+info.Hostname); err != nil {
				return err
			}
		}
		preceded = true
	}

	if info.Venv != "" {
		if err := space(); err != nil {
			return err
		}
		if err := styling.Writef(w, venvStyle, "(%s)", info.Venv); err != nil {
			return err
		}
		preceded = true
	}

	if info.Dir != "" {
		if err := space(); err != nil {
			return err
		}
		if err := styling.Writef(w, dirStyle, "%s", info.Dir); err != nil {
			return err
		}
		preceded = true
	}

	if err := r.renderRepo(info, space, &preceded); err != nil {
		return err
	}

	if info.LastDuration != nil {
		if err := space(); err != nil {
			return err
		}
		if err := styling.WithStyle(w, durationStyle, func() error {
			duration := format.HumanizeDuration(*info.LastDuration)
			return format.WriteSkipHighAndLowZeros(w, duration.TruncatedToMilliseconds())
		}); err != nil {
			return err
		}
		preceded = true
	}

	if info.LastExitCode != nil {
		if err := space(); err != nil {
			return err
		}
		if err := format.WriteExitCodeSymbolWithDefaults(w, *info.LastExitCode, format.OnError); err != nil {
			return err
		}
		preceded = true
	}

	if err := styling.ResetStyle(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (r *Renderer) renderRepo(info Info, space func() error, preceded *bool) error {
	w := r.writer
	if info.Head != nil {
		if err := space(); err != nil {
			return err
		}
		if err := styling.WithStyle(w, repoStyle, func() error {
			return format.WriteHead(w, info.Head)
		}); err != nil {
			return err
		}
		*preceded = true
	}
	if info.Status != nil && info.Status.AnyChanges() {
		if err := space(); err != nil {
			return err
		}
		if err := format.WriteStatusSummary(w, info.Status); err != nil {
			return err
		}
		*preceded = true
	}
	if info.StashCount != 0 {
		if err := space(); err != nil {
			return err
		}
		if err := styling.Writef(w, repoStyle, "⚑%d", info.StashCount); err != nil {
			return err
		}
		*preceded = true
	}
	return nil
}
