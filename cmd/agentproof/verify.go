package main

import (
	"fmt"
	"os"

	"github.com/agentproof/agentproof/application"
	"github.com/agentproof/agentproof/kv/leveldbkv"
	"github.com/agentproof/agentproof/proof"
	"github.com/agentproof/agentproof/sinks"
	"github.com/spf13/cobra"
)

var (
	verifyConfigPath string
	verifySessionID  string
)

func newVerifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a proof chain persisted in the durable store.",
		Long: `Verify a proof chain persisted in the durable store.

Loads every record for --session from the store named in the config
file's store_path, in insertion order, and runs verify_chain against
the public key named in the config.`,
		Run: runVerify,
	}
	cmd.Flags().StringVar(&verifyConfigPath, "config", "agentproof.toml", "path to the configuration file")
	cmd.Flags().StringVar(&verifySessionID, "session", "", "session id to verify (required)")
	return cmd
}

func runVerify(cmd *cobra.Command, args []string) {
	if verifySessionID == "" {
		fail(fmt.Errorf("--session is required"))
	}

	conf := application.DefaultConfig()
	if err := conf.Load(verifyConfigPath, "toml"); err != nil {
		fail(fmt.Errorf("load config: %w", err))
	}

	_, pubPath := conf.ResolveKeyPaths()
	pubHex, err := os.ReadFile(pubPath)
	if err != nil {
		fail(fmt.Errorf("read public key %s: %w", pubPath, err))
	}
	pub, err := proof.DecodePublicKeyHex(string(pubHex))
	if err != nil {
		fail(fmt.Errorf("decode public key: %w", err))
	}

	store, err := sinks.NewStoreSink(leveldbkv.OpenDB(conf.ResolveStorePath()))
	if err != nil {
		fail(fmt.Errorf("open store: %w", err))
	}
	recs, err := store.Records(verifySessionID)
	if err != nil {
		fail(fmt.Errorf("read records: %w", err))
	}
	if len(recs) == 0 {
		fail(fmt.Errorf("no records found for session %q", verifySessionID))
	}

	proofs := make([]proof.Proof, len(recs))
	for i, rec := range recs {
		proofs[i] = rec.Proof
	}

	result := proof.VerifyChain(proofs, pub)
	if result.OK {
		fmt.Printf("verify_chain: ok (%d transitions)\n", len(proofs))
		return
	}
	fmt.Printf("verify_chain: FAILED at index %d: %s\n", *result.FailedAt, result.Reason)
	os.Exit(1)
}
