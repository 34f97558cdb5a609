package main

import (
	"crypto/rsa"
	"fmt"
	"os"

	"github.com/agentproof/agentproof/application"
	"github.com/agentproof/agentproof/kv/leveldbkv"
	"github.com/agentproof/agentproof/kv/memkv"
	"github.com/agentproof/agentproof/policy"
	"github.com/agentproof/agentproof/proof"
	"github.com/agentproof/agentproof/sinks"
	"github.com/agentproof/agentproof/statemachine"
	"github.com/agentproof/agentproof/utils/binutils"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	demoConfigPath string
	demoStorePath  string
)

type scriptStep struct {
	to     policy.AgentState
	action string
	params any
}

var demoScript = []scriptStep{
	{policy.Init, "bootstrap", map[string]any{"runtime": "agentproof-demo"}},
	{policy.GoalParse, "parse_goal", map[string]any{"goal": "summarize the weekly report"}},
	{policy.Planning, "draft_plan", map[string]any{"steps": 3}},
	{policy.Executing, "run_step", map[string]any{"step": 1}},
	{policy.Validating, "check_output", map[string]any{"step": 1}},
	{policy.Reporting, "write_report", nil},
	{policy.Completed, "finish", nil},
	{policy.Terminated, "shutdown", nil},
}

func runDemo(cmd *cobra.Command, args []string) {
	conf := application.DefaultConfig()
	if _, err := os.Stat(demoConfigPath); err == nil {
		if err := conf.Load(demoConfigPath, "toml"); err != nil {
			fail(fmt.Errorf("load config: %w", err))
		}
	} else {
		conf.Path = demoConfigPath
	}

	key := demoKey(conf)

	zlog := binutils.NewLogger(conf.Logger)
	loggerSink := sinks.NewLoggerSink(zlog)

	storeSink, err := newDemoStoreSink()
	if err != nil {
		fail(fmt.Errorf("open store: %w", err))
	}

	sessionID := uuid.NewString()
	m, err := statemachine.New(
		conf.AgentID, sessionID, key,
		policy.AgentStates, policy.Lifecycle(), policy.Idle,
		loggerSink, storeSink,
	)
	if err != nil {
		fail(fmt.Errorf("construct machine: %w", err))
	}

	for _, step := range demoScript {
		if _, err := m.Transition(step.to, step.action, step.params); err != nil {
			fail(fmt.Errorf("transition to %v: %w", step.to, err))
		}
	}

	fmt.Println(m.Logs())
	fmt.Println()

	result := proof.VerifyChain(m.Log(), m.PublicKey())
	if result.OK {
		fmt.Println("verify_chain: ok")
	} else {
		fmt.Printf("verify_chain: FAILED at index %d: %s\n", *result.FailedAt, result.Reason)
	}
}

func demoKey(conf *application.Config) *rsa.PrivateKey {
	privPath, _ := conf.ResolveKeyPaths()
	if raw, err := os.ReadFile(privPath); err == nil {
		key, err := proof.DecodePrivateKeyHex(string(raw))
		if err != nil {
			fail(fmt.Errorf("decode private key %s: %w", privPath, err))
		}
		return key
	}

	key, err := proof.GenerateKey()
	if err != nil {
		fail(fmt.Errorf("generate ephemeral key: %w", err))
	}
	fmt.Fprintf(os.Stderr, "no private key at %s; using an ephemeral key for this run\n", privPath)
	return key
}

func newDemoStoreSink() (*sinks.StoreSink, error) {
	if demoStorePath == "" {
		return sinks.NewStoreSink(memkv.New())
	}
	return sinks.NewStoreSink(leveldbkv.OpenDB(demoStorePath))
}
