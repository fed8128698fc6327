package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-simulator/domain"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimulateCommand(t *testing.T) {
	out, err := runCLI(t, "simulate", "--value", "300000", "--purpose", "secondary", "--months", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Monthly payment")
	assert.Contains(t, out, "Total taxes")
	assert.Contains(t, out, "€")
}

func TestSimulateCommand_RejectsInvalidInput(t *testing.T) {
	_, err := runCLI(t, "simulate", "--value", "300000", "--years", "0")
	assert.Error(t, err)
}

func TestTablesCommand(t *testing.T) {
	out, err := runCLI(t, "tables")
	require.NoError(t, err)

	assert.Contains(t, out, "primary_under_35")
	assert.Contains(t, out, "year: 2024")
}

func TestPrintSimulation(t *testing.T) {
	var out bytes.Buffer
	err := printSimulation(&out, domain.SimulationResult{
		EffectiveRatePercent: 3.5,
		Schedule: []domain.AmortizationRow{
			{Month: 1, PaymentAmount: 718.47, PrincipalPortion: 251.8, InterestPortion: 466.67, RemainingBalance: 159748.2},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "3.500%")
	assert.Contains(t, out.String(), "Balance")
}
