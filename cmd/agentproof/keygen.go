package main

import (
	"fmt"

	"github.com/agentproof/agentproof/proof"
	"github.com/agentproof/agentproof/utils"
	"github.com/spf13/cobra"
)

var (
	keygenPrivatePath string
	keygenPublicPath  string
)

func newKeygenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA key pair for signing transition proofs.",
		Long: `Generate an RSA key pair for signing transition proofs.

Keys are written hex-encoded: the private key in PKCS8 DER form, the
public key in PKIX DER form, matching the hex-at-module-boundaries
contract the proof engine uses.`,
		Run: runKeygen,
	}
	cmd.Flags().StringVar(&keygenPrivatePath, "private", "agent.key", "path to write the hex-encoded private key")
	cmd.Flags().StringVar(&keygenPublicPath, "public", "agent.pub", "path to write the hex-encoded public key")
	return cmd
}

func runKeygen(cmd *cobra.Command, args []string) {
	key, err := proof.GenerateKey()
	if err != nil {
		fail(fmt.Errorf("generate key: %w", err))
	}

	privHex, err := proof.EncodePrivateKeyHex(key)
	if err != nil {
		fail(fmt.Errorf("encode private key: %w", err))
	}
	pubHex, err := proof.EncodePublicKeyHex(&key.PublicKey)
	if err != nil {
		fail(fmt.Errorf("encode public key: %w", err))
	}

	if err := utils.WriteFile(keygenPrivatePath, []byte(privHex), 0600); err != nil {
		fail(fmt.Errorf("write private key: %w", err))
	}
	if err := utils.WriteFile(keygenPublicPath, []byte(pubHex), 0644); err != nil {
		fail(fmt.Errorf("write public key: %w", err))
	}

	fmt.Println("wrote", keygenPrivatePath, "and", keygenPublicPath)
}
