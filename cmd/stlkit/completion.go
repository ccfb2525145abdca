package main

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for stlkit.

To load completions:

Bash:

  $ source <(stlkit completion bash)

  To load completions for each session, execute once:
  Linux:
    $ stlkit completion bash > /etc/bash_completion.d/stlkit
  macOS:
    $ stlkit completion bash > /usr/local/etc/bash_completion.d/stlkit

Zsh:

  If shell completion is not already enabled in your environment,
  you will need to enable it. You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  To load completions for each session, execute once:
  $ stlkit completion zsh > "${fpath[1]}/_stlkit"

  You will need to start a new shell for this setup to take effect.

Fish:

  $ stlkit completion fish | source

  To load completions for each session, execute once:
  $ stlkit completion fish > ~/.config/fish/completions/stlkit.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		default:
			return rootCmd.GenFishCompletion(out, true)
		}
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(completionCmd)
}
