package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/tax_ledger_app/internal/bankexchange"
	"github.com/SscSPs/tax_ledger_app/internal/core/calendar"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/SscSPs/tax_ledger_app/internal/core/tax"
	"github.com/SscSPs/tax_ledger_app/internal/platform/config"
	"github.com/SscSPs/tax_ledger_app/internal/utils"
	"github.com/SscSPs/tax_ledger_app/internal/utils/textdecode"
	"github.com/shopspring/decimal"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "summary":
		err = runSummary(os.Args[2:])
	case "parse":
		err = runParse(os.Args[2:])
	case "token":
		err = runToken(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("Command failed", slog.String("command", os.Args[1]), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Tax ledger CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  taxctl <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  summary   Compute tax and payment calendar for a statement file")
	fmt.Println("  parse     Print the transactions extracted from a statement file")
	fmt.Println("  token     Issue a bearer token for the API")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'taxctl <command> -h' for more information on a command.")
}

type statementFlags struct {
	file            *string
	inn             *string
	fixedFeeAccount *string
}

func addStatementFlags(fs *flag.FlagSet) statementFlags {
	return statementFlags{
		file:            fs.String("file", "", "Path to a 1CClientBankExchange statement"),
		inn:             fs.String("inn", "", "Own tax id, used to tell income from expense"),
		fixedFeeAccount: fs.String("fixed-fee-account", "", "Account number fragment of the fixed-fee activity"),
	}
}

func (f statementFlags) extract() (bankexchange.Batch, error) {
	if *f.file == "" {
		return bankexchange.Batch{}, fmt.Errorf("-file is required")
	}
	raw, err := os.ReadFile(*f.file)
	if err != nil {
		return bankexchange.Batch{}, fmt.Errorf("failed to read statement: %w", err)
	}
	text, err := textdecode.Decode(raw)
	if err != nil {
		return bankexchange.Batch{}, err
	}
	extractor := bankexchange.NewExtractor(bankexchange.Options{
		OwnINN:                  strings.TrimSpace(*f.inn),
		FixedFeeAccountFragment: strings.TrimSpace(*f.fixedFeeAccount),
	})
	return extractor.ExtractAll(text)
}

func parseRegime(s string) (domain.PrimaryRegime, error) {
	switch strings.ToLower(s) {
	case "flat":
		return domain.RegimeFlatRevenue, nil
	case "income-expense":
		return domain.RegimeRevenueMinusExpense, nil
	case "none":
		return domain.RegimeNone, nil
	}
	return "", fmt.Errorf("unknown regime %q, expected flat, income-expense or none", s)
}

func runSummary(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	stmt := addStatementFlags(fs)
	regimeName := fs.String("regime", "flat", "Primary regime: flat, income-expense or none")
	fixedFee := fs.Bool("fixed-fee", false, "The fixed-fee add-on is active")
	fixedFeeCost := fs.String("fixed-fee-cost", "0", "Yearly cost of the fixed-fee license")
	employees := fs.Bool("employees", false, "The business has employees")
	year := fs.Int("year", 0, "Restrict the summary to one calendar year")
	fs.Parse(args)

	primary, err := parseRegime(*regimeName)
	if err != nil {
		return err
	}
	cost, err := decimal.NewFromString(*fixedFeeCost)
	if err != nil {
		return fmt.Errorf("invalid -fixed-fee-cost: %w", err)
	}
	cfg := domain.RegimeConfig{
		Primary:       primary,
		FixedFeeAddon: *fixedFee,
		HasEmployees:  *employees,
		FixedFeeCost:  cost,
	}
	if *fixedFee {
		cfg.FixedFeeAccountFragment = strings.TrimSpace(*stmt.fixedFeeAccount)
	} else if *stmt.fixedFeeAccount != "" {
		return fmt.Errorf("-fixed-fee-account requires -fixed-fee")
	}

	batch, err := stmt.extract()
	if err != nil {
		return err
	}

	appCfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	schedule := tax.NewSchedule(appCfg.FixedContributions)

	ledger := batch.Transactions
	compute := tax.ComputeYears
	if *year != 0 {
		start := time.Date(*year, time.January, 1, 0, 0, 0, 0, time.UTC)
		ledger = ledger.Between(start, start.AddDate(1, 0, 0))
		compute = tax.Compute
	}
	result, err := compute(ledger, cfg, schedule)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	obligations, err := calendar.Project(batch.Transactions, cfg, schedule, calendar.StatutoryDeadlines(now.Year()), now)
	if err != nil {
		return err
	}

	return printJSON(struct {
		Stats        bankexchange.Stats    `json:"stats"`
		Result       domain.TaxResult      `json:"result"`
		LoadElevated bool                  `json:"loadElevated"`
		Calendar     []calendar.Obligation `json:"calendar"`
	}{
		Stats:        batch.Stats,
		Result:       result,
		LoadElevated: result.LoadRatio.GreaterThan(appCfg.SafeLoadThreshold),
		Calendar:     obligations,
	})
}

func runParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	stmt := addStatementFlags(fs)
	fs.Parse(args)

	batch, err := stmt.extract()
	if err != nil {
		return err
	}
	return printJSON(batch)
}

func runToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	subject := fs.String("user", "", "User ID to put in the token subject")
	ttl := fs.Duration("ttl", 24*time.Hour, "Token lifetime")
	fs.Parse(args)

	if *subject == "" {
		return fmt.Errorf("-user is required")
	}
	appCfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	token, err := utils.GenerateJWT(*subject, appCfg.JWTSecret, *ttl, appCfg.JWTIssuer)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
