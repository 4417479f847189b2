package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coolbeans/lexlink/pkg/analysis"
	"github.com/coolbeans/lexlink/pkg/caselaw"
	"github.com/coolbeans/lexlink/pkg/directory"
	"github.com/coolbeans/lexlink/pkg/resolver"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "lexlink",
		Short: "Legal citation link resolver",
		Long: `Lexlink resolves free-text legal citations into authoritative URLs.

It maps statute citations to the official online text of the law and
case citations to Google Scholar, falling back to legal search or
official homepages when a citation cannot be pinned down. Resolution
always produces a usable link.

Supported citation families:
  - Federal: U.S.C. and C.F.R. (Cornell LII)
  - States: California, New York, Texas, Florida, Illinois deep links,
    plus official homepages for six more states`,
		Version: version,
	}

	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(caselawCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(enrichCmd())
	rootCmd.AddCommand(jurisdictionsCmd())
	rootCmd.AddCommand(attorneysCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [citation]",
		Short: "Resolve a statute citation to a URL",
		Long: `Resolve a free-text statute citation to an authoritative URL.

Examples:
  lexlink resolve "18 U.S.C. § 1001"
  lexlink resolve "California Penal Code Section 187"
  lexlink resolve --format json "720 ILCS 5/12-3"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			resolved := resolver.Resolve(args[0])

			if format == "json" {
				return printJSON(resolved)
			}

			fmt.Printf("Citation:     %s\n", resolved.Title)
			fmt.Printf("URL:          %s\n", resolved.URL)
			fmt.Printf("Jurisdiction: %s\n", resolved.Jurisdiction)
			if resolved.LawCode != "" {
				fmt.Printf("Law code:     %s\n", resolved.LawCode)
			}
			fmt.Printf("Matched rule: %s\n", resolved.MatchedPattern)
			if resolved.IsFallback {
				fmt.Println("Note: no direct match, URL is a fallback link")
			}
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
	return cmd
}

func caselawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caselaw [citation]",
		Short: "Resolve a case citation to a Google Scholar link",
		Long: `Resolve a case citation to a Google Scholar case-law search link.

Examples:
  lexlink caselaw "Rowland v. Christian, 69 Cal. 2d 108 (1968)"
  lexlink caselaw --format json "Brown v. Board of Education, 347 U.S. 483 (1954)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			resolved := caselaw.Resolve(args[0])

			if format == "json" {
				return printJSON(resolved)
			}

			fmt.Printf("Case: %s\n", resolved.Name)
			if resolved.Year != "" {
				fmt.Printf("Year: %s\n", resolved.Year)
			}
			fmt.Printf("URL:  %s\n", resolved.URL)
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
	return cmd
}

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Resolve a file of citations and report the results",
		Long: `Resolve every citation in a file, one citation per line, and
produce a resolution report. Blank lines and lines starting with '#'
are skipped.

Examples:
  lexlink batch --input citations.txt
  lexlink batch --input citations.txt --format markdown
  lexlink batch --input citations.txt --format json --output report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")
			format, _ := cmd.Flags().GetString("format")

			if input == "" {
				return fmt.Errorf("--input flag is required")
			}

			citations, err := readCitationLines(input)
			if err != nil {
				return err
			}
			if len(citations) == 0 {
				return fmt.Errorf("no citations found in %s", input)
			}

			report := resolver.ResolveAll(citations)

			var rendered string
			switch format {
			case "json":
				data, err := report.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to encode report: %w", err)
				}
				rendered = string(data)
			case "markdown":
				rendered = report.ToMarkdown()
			case "text":
				rendered = report.String()
			default:
				return fmt.Errorf("unknown format: %s (want text, json, or markdown)", format)
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(rendered), 0644); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				fmt.Printf("Report written to: %s\n", output)
				fmt.Printf("Resolved %d citations (%.1f%% direct)\n", report.Total, report.DirectRate())
				return nil
			}

			fmt.Print(rendered)
			if !strings.HasSuffix(rendered, "\n") {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "File of citations, one per line")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, markdown")
	return cmd
}

func enrichCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Enrich a model case analysis with resolved links",
		Long: `Parse a model-produced case analysis (JSON, optionally wrapped in a
markdown code fence) and enrich it: every statute and precedent
citation gains a resolved link, laws are capped at four and precedents
at three.

Examples:
  lexlink enrich --input analysis.json
  lexlink enrich --input analysis.json --output enriched.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")

			if input == "" {
				return fmt.Errorf("--input flag is required")
			}

			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("failed to read analysis: %w", err)
			}

			enriched, err := analysis.ParseAndEnrich(string(data))
			if err != nil {
				return err
			}

			encoded, err := json.MarshalIndent(enriched, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode analysis: %w", err)
			}

			if output != "" {
				if err := os.WriteFile(output, append(encoded, '\n'), 0644); err != nil {
					return fmt.Errorf("failed to write analysis: %w", err)
				}
				fmt.Printf("Enriched analysis written to: %s\n", output)
				fmt.Printf("Linked %d laws and %d precedents\n", len(enriched.Laws), len(enriched.Precedents))
				return nil
			}

			fmt.Println(string(encoded))
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "Model analysis response (JSON file)")
	cmd.Flags().StringP("output", "o", "", "Write enriched analysis to a file instead of stdout")
	return cmd
}

func jurisdictionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jurisdictions",
		Short: "List the citation rules in evaluation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := resolver.RuleIDs()
			jurisdictions := resolver.RuleJurisdictions()

			fmt.Printf("Citation rules (%d, evaluated in order):\n", len(ids))
			for i, id := range ids {
				fmt.Printf("  %2d. %-34s %s\n", i+1, id, jurisdictions[i])
			}
			return nil
		},
	}
}

func attorneysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attorneys",
		Short: "Look up attorney listings by state and practice area",
		Long: `Look up curated attorney listings for a state and practice area.

Listings come from public state bar records. When the exact practice
area is not covered, the state's first covered area is shown; when the
state is not covered, the default state's listings serve as reference.

Examples:
  lexlink attorneys --state California --area "Personal Injury"
  lexlink attorneys --state "Los Angeles, CA" --area "Auto Accident"
  lexlink attorneys --list-states`,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, _ := cmd.Flags().GetString("state")
			area, _ := cmd.Flags().GetString("area")
			listStates, _ := cmd.Flags().GetBool("list-states")
			format, _ := cmd.Flags().GetString("format")

			dir, err := directory.Default()
			if err != nil {
				return err
			}

			if listStates {
				fmt.Println("Covered states:")
				for _, name := range dir.States() {
					fmt.Printf("  - %s (%s)\n", titleCase(name), strings.Join(dir.PracticeAreas(name), ", "))
				}
				return nil
			}

			if state == "" || area == "" {
				return fmt.Errorf("--state and --area flags are required (or use --list-states)")
			}

			listings := dir.Lookup(state, area)
			if len(listings) == 0 {
				fmt.Printf("No listings found for %s / %s\n", state, area)
				return nil
			}

			if format == "json" {
				return printJSON(listings)
			}

			fmt.Printf("Attorney listings for %s / %s:\n\n", state, area)
			for _, listing := range listings {
				fmt.Printf("  %s\n", listing.Name)
				fmt.Printf("    Location:   %s\n", listing.Location)
				fmt.Printf("    Bar:        %s\n", listing.BarNumber)
				fmt.Printf("    Experience: %d years\n", listing.YearsExperience)
			}
			fmt.Printf("\n%s. %s.\n", listings[0].Source, listings[0].Disclaimer)
			return nil
		},
	}

	cmd.Flags().StringP("state", "s", "", "State or jurisdiction (e.g. California, \"Los Angeles, CA\")")
	cmd.Flags().StringP("area", "a", "", "Practice area (e.g. \"Personal Injury\")")
	cmd.Flags().Bool("list-states", false, "List covered states and practice areas")
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
	return cmd
}

// readCitationLines reads one citation per line, skipping blanks and
// '#'-prefixed comment lines.
func readCitationLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open citations file: %w", err)
	}
	defer file.Close()

	var citations []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		citations = append(citations, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read citations file: %w", err)
	}
	return citations, nil
}

// titleCase uppercases the first letter of each word for display of the
// directory's lowercase state keys.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
