package main

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/trialsearch/internal/app"
	"github.com/llehouerou/trialsearch/internal/config"
	"github.com/llehouerou/trialsearch/internal/errmsg"
	"github.com/llehouerou/trialsearch/internal/icons"
	"github.com/llehouerou/trialsearch/internal/navigate"
	"github.com/llehouerou/trialsearch/internal/ui/shell"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	ui := e.cfg.GetUIConfig()
	if layout, _ := cmd.Flags().GetString("layout"); layout != "" {
		ui.Layout = layout
	}
	if printURL, _ := cmd.Flags().GetBool("print"); printURL {
		ui.OpenWith = config.OpenPrint
	}
	query, _ := cmd.Flags().GetString("query")
	icons.Init(ui.Icons)

	sc := e.cfg.GetSearchConfig()
	m := app.New(app.Options{
		Store:           e.store,
		Search:          e.coord,
		Parser:          e.cfg.HighlightParser(),
		Labels:          shell.LabelsFor(ui.Locale),
		BaseURL:         sc.BaseURL,
		Layout:          ui.Layout,
		Breakpoint:      ui.MobileBreakpoint,
		MaxVisible:      ui.MaxVisible,
		DesktopDebounce: sc.DesktopDebounce,
		MobileDebounce:  sc.MobileFetchDebounce,
		Query:           query,
		Logger:          e.logger.Named("app"),
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	fm, ok := final.(app.Model)
	if !ok {
		return nil
	}
	fm.Close()
	c, ok := fm.Committed()
	if !ok {
		return nil
	}

	out := cmd.OutOrStdout()
	if err := opener(ui.OpenWith, out).Open(cmd.Context(), c.URL); err != nil {
		e.logger.Error("open failed", zap.String("url", c.URL), zap.Error(err))
		// Still give the user something to click.
		fmt.Fprintln(out, c.URL)
		return errors.New(errmsg.FormatWith(errmsg.OpOpenURL, c.Target, err))
	}
	return nil
}

func opener(mode string, out io.Writer) navigate.Opener {
	if mode == config.OpenPrint {
		return navigate.WriterOpener{W: out}
	}
	return navigate.BrowserOpener{}
}
