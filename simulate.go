package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"property-simulator/domain"
	"property-simulator/money"
	"property-simulator/service"
)

func simulateCmd() *cobra.Command {
	var (
		input   domain.SimulationInput
		mode    string
		purpose string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one simulation and print the result",
		Example: `  simulator simulate --value 200000 --down 20 --years 30 --rate 3.5
  simulator simulate --value 350000 --rate-mode variable --euribor 2.9 --spread 1 --purpose secondary`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input.Loan.RateMode = domain.RateMode(mode)
			input.Profile.PropertyPurpose = domain.PropertyPurpose(purpose)

			tables, err := loadTables()
			if err != nil {
				return err
			}

			result, err := service.NewSimulatorService(tables, cfg.Simulator.ScheduleMonths).Simulate(input)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return printSimulation(cmd.OutOrStdout(), result)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&input.Loan.PropertyValue, "value", 0, "property value in euros")
	f.Float64Var(&input.Loan.DownPaymentPercent, "down", 20, "down payment as a percentage of the value")
	f.IntVar(&input.Loan.LoanTermYears, "years", 30, "loan term in years")
	f.StringVar(&mode, "rate-mode", string(domain.RateFixed), "fixed or variable")
	f.Float64Var(&input.Loan.FixedRatePercent, "rate", 3.5, "annual fixed rate in percent")
	f.Float64Var(&input.Loan.EuriborPercent, "euribor", 0, "Euribor in percent (variable mode)")
	f.Float64Var(&input.Loan.SpreadPercent, "spread", 0, "bank spread in percent (variable mode)")
	f.StringVar(&purpose, "purpose", string(domain.PrimaryResidence), "primary_residence or secondary")
	f.BoolVar(&input.Profile.IsUnder35, "under35", false, "buyer is 35 or younger")
	f.IntVar(&input.ScheduleMonths, "months", 0, "amortization rows to print (default from config)")
	f.BoolVar(&asJSON, "json", false, "print raw JSON")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func printSimulation(out io.Writer, r domain.SimulationResult) error {
	eur := func(v float64) string { return money.FormatEUR(money.Cents(v)) }

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Effective rate\t%.3f%%\n", r.EffectiveRatePercent)
	fmt.Fprintf(tw, "Down payment\t%s\n", eur(r.DownPaymentAmount))
	fmt.Fprintf(tw, "Loan amount\t%s\n", eur(r.Mortgage.LoanAmount))
	fmt.Fprintf(tw, "Monthly payment\t%s\n", eur(r.Mortgage.MonthlyPayment))
	fmt.Fprintf(tw, "Total payment\t%s\n", eur(r.Mortgage.TotalPayment))
	fmt.Fprintf(tw, "Total interest\t%s\n", eur(r.Mortgage.TotalInterest))
	fmt.Fprintf(tw, "IMT\t%s\n", eur(r.Taxes.IMTAmount))
	fmt.Fprintf(tw, "Stamp duty (property)\t%s\n", eur(r.Taxes.StampDutyPropertyAmount))
	fmt.Fprintf(tw, "Stamp duty (mortgage)\t%s\n", eur(r.Taxes.StampDutyMortgageAmount))
	fmt.Fprintf(tw, "Total taxes\t%s\n", eur(r.Taxes.TotalTaxAmount))
	fmt.Fprintf(tw, "Initial investment\t%s\n", eur(r.Taxes.TotalInitialInvestment))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Schedule) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Month\tPayment\tPrincipal\tInterest\tBalance\t")
	for _, row := range r.Schedule {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			row.Month,
			eur(row.PaymentAmount),
			eur(row.PrincipalPortion),
			eur(row.InterestPortion),
			eur(row.RemainingBalance),
		)
	}
	return tw.Flush()
}
