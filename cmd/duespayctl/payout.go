package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/piresc/duespay/internal/pkg/circuitbreaker"
	"github.com/piresc/duespay/internal/pkg/database"
	"github.com/piresc/duespay/internal/pkg/korapay"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/pkg/money"
	nsqpkg "github.com/piresc/duespay/internal/pkg/nsq"
	"github.com/piresc/duespay/services/payments/gateway"
	"github.com/piresc/duespay/services/payments/repository"
	"github.com/piresc/duespay/services/payments/usecase"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func payoutCmd() *cobra.Command {
	var (
		req    models.ManualPayoutRequest
		amount string
	)

	cmd := &cobra.Command{
		Use:   "payout",
		Short: "Re-run the payout for a verified transaction",
		Long: `Sends (or with --dry-run, prints) the payout for a verified transaction.
Without --ref the most recent verified transaction is used. The payout reference
defaults to the deterministic <ref>-OUT, so repeating a successful payout is
reported as a duplicate rather than paid twice.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if amount != "" {
				parsed, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("invalid --amount %q: %w", amount, err)
				}
				req.Amount = &parsed
			}

			configs, appLogger, err := loadConfig()
			if err != nil {
				return err
			}
			defer appLogger.Close()

			postgresClient, err := database.NewPostgresClient(configs.Database)
			if err != nil {
				return fmt.Errorf("connect to PostgreSQL: %w", err)
			}
			defer postgresClient.Close()

			// Deferred hall payouts need the queue; without it they fail loudly
			var publisher nsqpkg.Publisher
			if producer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress); err != nil {
				logger.Warn("NSQ unavailable, deferred payouts cannot be queued", logger.Err(err))
			} else {
				defer producer.Stop()
				publisher = producer
			}

			breaker := circuitbreaker.New(circuitbreaker.DefaultConfig("korapay"))
			eventGW := gateway.NewEventGW(publisher)
			paymentUC := usecase.NewPaymentUC(configs,
				repository.NewPaymentRepository(configs, postgresClient.GetDB()),
				korapay.NewClient(configs, breaker),
				eventGW, eventGW)

			result, err := paymentUC.ManualPayout(cmd.Context(), req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&req.Reference, "ref", "", "Transaction reference (default: latest verified)")
	cmd.Flags().Int64Var(&req.AssociationID, "association", 0, "Restrict the latest-verified lookup to one association")
	cmd.Flags().StringVar(&amount, "amount", "", "Override the payout amount (rounded to 2dp)")
	cmd.Flags().StringVar(&req.PayoutReference, "payout-ref", "", "Override the payout reference")
	cmd.Flags().BoolVar(&req.Unique, "unique", false, "Use a fresh MANUAL-<id>-<unix> reference")
	cmd.Flags().BoolVar(&req.DryRun, "dry-run", false, "Print the payload without sending it")

	return cmd
}

func payoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payouts",
		Short: "Inspect payout attempts",
	}
	cmd.AddCommand(pendingPayoutsCmd())
	return cmd
}

func pendingPayoutsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List transactions whose latest payout attempt failed",
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, appLogger, err := loadConfig()
			if err != nil {
				return err
			}
			defer appLogger.Close()

			postgresClient, err := database.NewPostgresClient(configs.Database)
			if err != nil {
				return fmt.Errorf("connect to PostgreSQL: %w", err)
			}
			defer postgresClient.Close()

			repo := repository.NewPaymentRepository(configs, postgresClient.GetDB())
			payouts, err := repo.ListPendingPayouts(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(payouts) == 0 {
				fmt.Println("No pending payouts")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TRANSACTION\tPAYOUT REF\tAMOUNT\tFAILED AT\tERROR")
			for _, p := range payouts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					p.TransactionReference,
					p.Reference,
					money.Format2DP(p.Amount),
					p.CreatedAt.Format("2006-01-02 15:04:05"),
					p.Error)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum rows")
	return cmd
}
