package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/fatflowers/gemcashier/internal/models"
	"github.com/fatflowers/gemcashier/pkg/types"
)

func TestPrintPayments_Table(t *testing.T) {
	var buf bytes.Buffer
	rows := []*models.Payment{{
		OrderID: "GEM-1", Attempt: 2, Amount: decimal.RequireFromString("1000"), Currency: "LKR",
		Status: types.PaymentStatusPending, CreatedAt: time.Now().Add(-3 * time.Hour),
	}}
	require.NoError(t, printPayments(&buf, rows, false))
	out := buf.String()
	require.Contains(t, out, "ORDER")
	require.Contains(t, out, "GEM-1")
	require.Contains(t, out, "1000.00")
	require.Contains(t, out, "3h0m0s")
}

func TestPrintPayments_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printPayments(&buf, nil, false))
	require.Equal(t, "no stale pending payments\n", buf.String())
}

func TestStalePaymentsCmd_Flags(t *testing.T) {
	cmd := stalePaymentsCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--older-than", "90m", "--limit", "5", "--json"}))
	d, err := cmd.Flags().GetDuration("older-than")
	require.NoError(t, err)
	require.Equal(t, 90*time.Minute, d)
	limit, err := cmd.Flags().GetInt("limit")
	require.NoError(t, err)
	require.Equal(t, 5, limit)
}
