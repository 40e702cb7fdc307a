package cmd

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for bee.

To load completions:

Bash:
  $ source <(bee completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ bee completion bash > /etc/bash_completion.d/bee
  # macOS:
  $ bee completion bash > $(brew --prefix)/etc/bash_completion.d/bee

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ bee completion zsh > "${fpath[1]}/_bee"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ bee completion fish | source

  # To load completions for each session, execute once:
  $ bee completion fish > ~/.config/fish/completions/bee.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		}
		return nil
	},
}

// completion needs no config; skip the root's .env loading.
func init() {
	completionCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return nil }
}
