package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/trialsearch/internal/errmsg"
	"github.com/llehouerou/trialsearch/internal/highlight"
	"github.com/llehouerou/trialsearch/internal/navigate"
	"github.com/llehouerou/trialsearch/internal/state"
	"github.com/llehouerou/trialsearch/internal/ui/render"
	"github.com/llehouerou/trialsearch/internal/ui/styles"
)

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Search once and print the matching diseases",
	Long: `query runs a single disease search without the interactive UI and prints
each match with its trial search URL. Matched parts of a name are
highlighted when the output is a terminal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	text := strings.Join(args, " ")
	r := e.coord.Resolve(cmd.Context(), text)
	if r.Status == state.StatusError {
		return errors.New(errmsg.FormatWith(errmsg.OpSearch, text, r.Err))
	}

	base := e.cfg.GetSearchConfig().BaseURL
	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(out, r.Results, e.cfg.HighlightParser(), base)
	}
	return writeText(out, r.Results, e.cfg.HighlightParser(), base)
}

type jsonResult struct {
	Query      string     `json:"query"`
	TotalCount int        `json:"totalCount"`
	Items      []jsonItem `json:"items"`
}

type jsonItem struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

func writeJSON(w io.Writer, rs state.ResultSet, p highlight.Parser, base string) error {
	res := jsonResult{
		Query:      rs.Query,
		TotalCount: rs.TotalCount,
		Items:      make([]jsonItem, 0, len(rs.Items)),
	}
	for _, it := range rs.Items {
		res.Items = append(res.Items, jsonItem{
			Code:  it.Code,
			Name:  it.Target,
			Label: p.Strip(it.Label),
			URL:   navigate.URL(base, it.Target),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(res)
}

// labelWidth caps a printed name; there is no terminal width to go by.
const labelWidth = 60

func writeText(w io.Writer, rs state.ResultSet, p highlight.Parser, base string) error {
	if rs.Empty() {
		_, err := fmt.Fprintf(w, "no diseases match %q\n", rs.Query)
		return err
	}

	s := styles.T().S()
	ls := render.LabelStyles{Plain: s.Base, Match: s.Match}
	if _, err := fmt.Fprintf(w, "%s of %s diseases\n",
		humanize.Comma(int64(len(rs.Items))), humanize.Comma(int64(rs.TotalCount))); err != nil {
		return err
	}
	for _, it := range rs.Items {
		line := fmt.Sprintf("%-6s %s  %s",
			it.Code,
			render.Label(it.Label, p, ls, labelWidth),
			s.Subtle.Render(navigate.URL(base, it.Target)),
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
