// Copyright 2026 The go-misc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command slack-notify sends one message to a Slack incoming webhook.
//
//	slack-notify "backup finished"
//	slack-notify --url https://hooks.slack.com/services/... "backup finished"
//
// Without --url the webhook is read from the environment variable named by
// --env-var (SLACK_WEBHOOK_URL by default).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledona/go-misc/logging"
	"github.com/ledona/go-misc/slack"
)

func main() {
	var (
		url    string
		envVar string
	)

	cmd := &cobra.Command{
		Use:          "slack-notify [flags] message",
		Short:        "Send a message to a Slack incoming webhook",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.SetLogger(cmd.Context(), logging.NewText(os.Stderr, logging.Warning))
			client, err := newClient(ctx, url, envVar)
			if err != nil {
				return err
			}
			if !slack.Enabled() {
				return fmt.Errorf("no webhook configured, set --url or $%s", envVar)
			}
			return client.Post(ctx, &slack.Message{Text: args[0]})
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "webhook URL (overrides the environment variable)")
	cmd.Flags().StringVar(&envVar, "env-var", "SLACK_WEBHOOK_URL",
		"environment variable holding the webhook URL")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newClient(ctx context.Context, url, envVar string) (*slack.Client, error) {
	if url != "" {
		return slack.New(url)
	}
	return slack.FromEnv(ctx, envVar)
}
