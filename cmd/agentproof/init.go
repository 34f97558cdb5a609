package main

import (
	"fmt"

	"github.com/agentproof/agentproof/application"
	"github.com/spf13/cobra"
)

var initConfigPath string

func runInit(cmd *cobra.Command, args []string) {
	conf := application.DefaultConfig()
	conf.Path = initConfigPath
	conf.Encoding = "toml"

	if err := conf.Save(); err != nil {
		fail(err)
	}
	fmt.Println("wrote", initConfigPath)
}
