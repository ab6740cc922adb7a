package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/TopiaNetwork/gascost/chain"
	"github.com/TopiaNetwork/gascost/configuration"
	"github.com/TopiaNetwork/gascost/crowdsale"
	"github.com/TopiaNetwork/gascost/gascost"
	tplog "github.com/TopiaNetwork/gascost/log"
)

const (
	gasCostFuncName = "gascost"
	gasCostCmdDes   = "Report gas costs and drive a development chain for crowdsale tests."
)

type rootOptions struct {
	cfgFile  string
	endpoint string
}

func (o *rootOptions) load() (*configuration.Configuration, tplog.Logger, error) {
	config, err := configuration.Load(o.cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if o.endpoint != "" {
		config.ChainConfig.Endpoint = o.endpoint
	}

	log, err := tplog.CreateLoggerFromConfig(config.LogConfig)
	if err != nil {
		return nil, nil, err
	}

	return config, log, nil
}

func (o *rootOptions) dial(ctx context.Context) (*configuration.Configuration, tplog.Logger, *chain.RPCChain, error) {
	config, log, err := o.load()
	if err != nil {
		return nil, nil, nil, err
	}

	rc, err := chain.DialRPCChain(ctx, config.ChainConfig, log)
	if err != nil {
		log.Close()
		return nil, nil, nil, err
	}

	return config, log, rc, nil
}

func printReport(cmd *cobra.Command, report gascost.CostReport, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), report.String())
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	return enc.Encode(report)
}

func estimateCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "estimate <gas|json>",
		Short: "Estimates the fiat cost of a gas amount.",
		Long: `Estimates the fiat cost of a gas amount given as a number,
a receipt object {"receipt":{"gasUsed":N}}, or a deployment {"transactionHash":"0x.."}.
Deployments are looked up on the configured chain.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			src, err := gascost.ParseGasSource([]byte(args[0]))
			if err != nil {
				return err
			}

			config, log, err := opts.load()
			if err != nil {
				return err
			}
			defer log.Close()

			estimator, err := gascost.NewEstimator(config.GasCostConfig)
			if err != nil {
				return err
			}

			var querier chain.ReceiptQuerier
			if _, ok := src.(gascost.Deployment); ok {
				rc, err := chain.DialRPCChain(cmd.Context(), config.ChainConfig, log)
				if err != nil {
					return err
				}
				defer rc.Close()
				querier = rc
			}

			report, err := estimator.EstimateFromReceipt(cmd.Context(), src, querier)
			if err != nil {
				return err
			}
			log.Debugf("estimated %s", src)

			return printReport(cmd, report, asJSON)
		},
	}
	c.Flags().BoolVarP(&asJSON, "json", "", false, "print the report as JSON")

	return c
}

func receiptCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "receipt <txhash>",
		Short: "Estimates the cost of a mined transaction.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			hashBytes, err := hexutil.Decode(args[0])
			if err != nil || len(hashBytes) != common.HashLength {
				return fmt.Errorf("invalid transaction hash %q", args[0])
			}

			config, log, rc, err := opts.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer log.Close()
			defer rc.Close()

			estimator, err := gascost.NewEstimator(config.GasCostConfig)
			if err != nil {
				return err
			}
			report, err := estimator.EstimateFromReceipt(cmd.Context(), gascost.Deployment{TxHash: common.BytesToHash(hashBytes)}, rc)
			if err != nil {
				return err
			}

			return printReport(cmd, report, asJSON)
		},
	}
	c.Flags().BoolVarP(&asJSON, "json", "", false, "print the report as JSON")

	return c
}

func advanceCmd(opts *rootOptions) *cobra.Command {
	var (
		toBlock uint64
		seconds uint64
	)

	c := &cobra.Command{
		Use:   "advance [count]",
		Short: "Mines empty blocks on a development chain, optionally moving its clock forward.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && toBlock == 0 && seconds == 0 {
				return fmt.Errorf("a block count, --to or --seconds is required")
			}
			cmd.SilenceUsage = true

			_, log, rc, err := opts.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer log.Close()
			defer rc.Close()

			if seconds > 0 {
				if err = rc.IncreaseTime(cmd.Context(), time.Duration(seconds)*time.Second); err != nil {
					return err
				}
				log.Infof("chain time moved forward %ds", seconds)
			}

			if len(args) == 1 {
				count, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid block count %q: %w", args[0], err)
				}
				if err = rc.AdvanceBlocks(cmd.Context(), count); err != nil {
					return err
				}
			} else if toBlock > 0 {
				if err = chain.AdvanceToBlock(cmd.Context(), rc, toBlock); err != nil {
					return err
				}
			}

			head, err := rc.BlockNumber(cmd.Context())
			if err != nil {
				return err
			}
			log.Infof("chain head at block %d", head)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), head)

			return err
		},
	}
	c.Flags().Uint64VarP(&toBlock, "to", "", 0, "advance until the head reaches this block")
	c.Flags().Uint64VarP(&seconds, "seconds", "", 0, "move chain time forward before mining (evm_increaseTime)")

	return c
}

func crowdsaleCmd(opts *rootOptions) *cobra.Command {
	verify := &cobra.Command{
		Use:   "verify",
		Short: "Verifies the ICO parameters of the deployed crowdsale.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			config, log, rc, err := opts.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer log.Close()
			defer rc.Close()

			if err = crowdsale.Check(cmd.Context(), rc.Client(), config.CrowdsaleConfig, log); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "crowdsale parameters ok")

			return err
		},
	}

	c := &cobra.Command{
		Use:   "crowdsale",
		Short: "Operate on the deployed crowdsale: verify.",
	}
	c.AddCommand(verify)

	return c
}

func GasCostCmd() *cobra.Command {
	opts := &rootOptions{}

	c := &cobra.Command{
		Use:   gasCostFuncName,
		Short: gasCostCmdDes,
		Long:  gasCostCmdDes,
	}

	flags := c.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&opts.endpoint, "endpoint", "", "", "chain JSON-RPC endpoint, overrides the configuration")

	c.AddCommand(estimateCmd(opts), receiptCmd(opts), advanceCmd(opts), crowdsaleCmd(opts))

	return c
}
