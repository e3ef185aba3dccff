package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for panelize. Completion covers the
cache and completion subcommands and every flag of the root command, and
suggests .svg files for INPUT.

To load completions:

Bash:
  $ source <(panelize completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ panelize completion bash > /etc/bash_completion.d/panelize
  # macOS:
  $ panelize completion bash > $(brew --prefix)/etc/bash_completion.d/panelize

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ panelize completion zsh > "${fpath[1]}/_panelize"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ panelize completion fish | source

  # To load completions for each session, execute once:
  $ panelize completion fish > ~/.config/fish/completions/panelize.fish

PowerShell:
  PS> panelize completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> panelize completion powershell > panelize.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(stdout, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(stdout)
			}
			return nil
		},
	}

	return cmd
}
