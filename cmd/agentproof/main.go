// Command agentproof is a demo and operator CLI for the verifiable
// transition log engine: it generates agent key material, scaffolds a
// configuration file, runs a scripted transition sequence against the
// reference lifecycle policy, and verifies a saved proof log.
package main

import (
	"fmt"
	"os"

	"github.com/agentproof/agentproof/cli"
)

func main() {
	root := cli.NewRootCommand(
		"agentproof",
		"Demo and operator CLI for the verifiable transition log engine",
		"agentproof generates agent keys, runs a scripted transition sequence, and verifies proof chains.",
	)

	initCmd := cli.NewInitCommand("agentproof", runInit)
	initCmd.Flags().StringVar(&initConfigPath, "config", "agentproof.toml", "path to write the configuration file")

	demoCmd := cli.NewRunCommand("agentproof", runDemo)
	demoCmd.Use = "demo"
	demoCmd.Flags().StringVar(&demoConfigPath, "config", "agentproof.toml", "path to the configuration file")
	demoCmd.Flags().StringVar(&demoStorePath, "store", "", "durable store path; empty uses an in-memory store")

	root.AddCommand(
		cli.NewVersionCommand("agentproof"),
		initCmd,
		newKeygenCommand(),
		demoCmd,
		newVerifyCommand(),
	)

	cli.ExecuteRoot(root)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "agentproof:", err)
	os.Exit(1)
}
